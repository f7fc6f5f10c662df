package usage

import (
	"math"
	"testing"
	"time"

	"github.com/ykhadiri/alkimiya/internal/db"
	"github.com/ykhadiri/alkimiya/internal/genai"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestCreateAndList(t *testing.T) {
	store := newTestStore(t)

	records := []*Record{
		{Provider: "google", Model: "gemini-2.5-flash", Op: genai.OpDetails, InputTokens: 120, OutputTokens: 800, CostUSD: 0.002, Duration: 1800},
		{Provider: "google", Model: "gemini-2.5-flash-preview-tts", Op: genai.OpSpeech, Characters: 42, Duration: 900},
		{Provider: "google", Model: "gemini-2.5-flash", Op: genai.OpMix, Failed: true},
	}
	for _, r := range records {
		if err := store.Create(r); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if r.ID == "" {
			t.Error("Create must assign an ID")
		}
	}

	got, err := store.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("List returned %d records, want 3", len(got))
	}
	if !got[0].Failed || got[0].Op != genai.OpMix {
		t.Errorf("newest record = %+v, want the failed mix", got[0])
	}

	if got, err := store.List(1); err != nil || len(got) != 1 {
		t.Errorf("List(1) = %d records, err %v", len(got), err)
	}
}

func TestSummarize(t *testing.T) {
	store := newTestStore(t)
	if err := store.Create(&Record{Provider: "google", Model: "gemini-2.5-flash", Op: genai.OpDetails, InputTokens: 100, OutputTokens: 200, CostUSD: 0.01}); err != nil {
		t.Fatal(err)
	}
	if err := store.Create(&Record{Provider: "google", Model: "gemini-2.5-flash-preview-tts", Op: genai.OpSpeech, Characters: 50, CostUSD: 0.0005, Failed: true}); err != nil {
		t.Fatal(err)
	}

	sum, err := store.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Calls != 2 || sum.Failed != 1 {
		t.Errorf("calls = %d, failed = %d", sum.Calls, sum.Failed)
	}
	if sum.InputTokens != 100 || sum.OutputTokens != 200 || sum.Characters != 50 {
		t.Errorf("token totals = %+v", sum)
	}
	if math.Abs(sum.CostUSD-0.0105) > 1e-9 {
		t.Errorf("cost = %v, want 0.0105", sum.CostUSD)
	}
}

func TestRecorderPersistsGatewayUsage(t *testing.T) {
	store := newTestStore(t)
	record := store.Recorder()

	record(genai.Usage{
		Provider:     "google",
		Model:        "gemini-2.5-flash",
		Op:           genai.OpDetails,
		InputTokens:  1_000_000,
		OutputTokens: 1_000_000,
		Duration:     2 * time.Second,
	})

	got, err := store.List(1)
	if err != nil || len(got) != 1 {
		t.Fatalf("List = %d records, err %v", len(got), err)
	}
	r := got[0]
	if r.Duration != 2000 {
		t.Errorf("duration = %dms, want 2000", r.Duration)
	}
	// 1M input at $0.30 plus 1M output at $2.50.
	if math.Abs(r.CostUSD-2.80) > 1e-9 {
		t.Errorf("cost = %v, want 2.80", r.CostUSD)
	}
}

func TestEstimateCost(t *testing.T) {
	if got := EstimateCost("unknown-model", 100, 100, 0); got != 0 {
		t.Errorf("unknown model cost = %v, want 0", got)
	}
	// Speech models price by characters.
	if got := EstimateCost("gemini-2.5-flash-preview-tts", 0, 0, 1_000_000); math.Abs(got-10.00) > 1e-9 {
		t.Errorf("tts cost = %v, want 10.00", got)
	}
}
