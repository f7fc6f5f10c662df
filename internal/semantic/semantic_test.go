package semantic

import (
	"context"
	"math"
	"testing"

	"github.com/ykhadiri/alkimiya/internal/elements"
)

// bucketEmbedder produces deterministic vectors from byte histograms, so
// identical texts embed identically and the index can be exercised
// without a network.
type bucketEmbedder struct{}

func (bucketEmbedder) Name() string    { return "bucket" }
func (bucketEmbedder) Dimensions() int { return 32 }

func (bucketEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, 32)
		for _, b := range []byte(text) {
			vec[int(b)%32]++
		}
		var norm float64
		for _, v := range vec {
			norm += float64(v) * float64(v)
		}
		if norm > 0 {
			n := float32(math.Sqrt(norm))
			for j := range vec {
				vec[j] /= n
			}
		}
		out[i] = vec
	}
	return out, nil
}

func TestSearchFindsExactContent(t *testing.T) {
	catalog := elements.NewCatalog()
	idx, err := NewIndex(context.Background(), catalog, bucketEmbedder{})
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	fe, _ := catalog.ByNumber(26)
	matches, err := idx.Search(context.Background(), docContent(fe), 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("no matches")
	}
	if matches[0].Element.Number != 26 {
		t.Errorf("top match = %s, want Fe", matches[0].Element.Symbol)
	}
	if matches[0].Similarity < 0.99 {
		t.Errorf("exact content similarity = %v", matches[0].Similarity)
	}
}

func TestSearchLimitClampsToCollection(t *testing.T) {
	catalog := elements.NewCatalog()
	idx, err := NewIndex(context.Background(), catalog, bucketEmbedder{})
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	matches, err := idx.Search(context.Background(), "métal", catalog.Len()+50)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != catalog.Len() {
		t.Errorf("matches = %d, want %d", len(matches), catalog.Len())
	}
}

func TestToChromemFunc(t *testing.T) {
	fn := ToChromemFunc(bucketEmbedder{})
	vec, err := fn(context.Background(), "hydrogène")
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	if len(vec) != 32 {
		t.Errorf("dimensions = %d, want 32", len(vec))
	}
}
