package explorer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/genai"
)

func newTestServer(gen genai.Generator) (*httptest.Server, *Session, *Mixer) {
	catalog := elements.NewCatalog()
	session := NewSession(catalog, gen, silentPlayer())
	mixer := NewMixer(gen, session.Selection())
	r := chi.NewRouter()
	RegisterRoutes(r, session, mixer, catalog)
	return httptest.NewServer(r), session, mixer
}

func do(t *testing.T, method, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestOpenAndCloseElementRoutes(t *testing.T) {
	srv, _, _ := newTestServer(&stubGen{details: testDetails, speech: []byte{1, 2}})
	defer srv.Close()

	resp := do(t, http.MethodPut, srv.URL+"/api/session/view/26")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("open status = %d", resp.StatusCode)
	}
	var el elements.Element
	if err := json.NewDecoder(resp.Body).Decode(&el); err != nil {
		t.Fatal(err)
	}
	if el.Symbol != "Fe" {
		t.Errorf("symbol = %q, want Fe", el.Symbol)
	}

	if resp := do(t, http.MethodPut, srv.URL+"/api/session/view/999"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown element status = %d, want 404", resp.StatusCode)
	}
	if resp := do(t, http.MethodDelete, srv.URL+"/api/session/view"); resp.StatusCode != http.StatusNoContent {
		t.Errorf("close status = %d, want 204", resp.StatusCode)
	}
}

func TestDetailsRouteErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		gen  genai.Generator
		want int
	}{
		{"missing key", &stubGen{detailsErr: fmt.Errorf("google: %w", genai.ErrMissingAPIKey)}, http.StatusServiceUnavailable},
		{"upstream failure", &stubGen{detailsErr: &genai.UpstreamError{Provider: "google", Op: genai.OpDetails, Reason: "http status 500"}}, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _, _ := newTestServer(tc.gen)
			defer srv.Close()

			do(t, http.MethodPut, srv.URL+"/api/session/view/1")
			resp := do(t, http.MethodPost, srv.URL+"/api/session/details")
			if resp.StatusCode != tc.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestDetailsRouteWithoutOpenElement(t *testing.T) {
	srv, _, _ := newTestServer(&stubGen{details: testDetails})
	defer srv.Close()

	if resp := do(t, http.MethodPost, srv.URL+"/api/session/details"); resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want 409", resp.StatusCode)
	}
}

func TestMixRouteValidation(t *testing.T) {
	srv, _, _ := newTestServer(&stubGen{combine: &genai.Compound{Success: true, Formula: "H2O", NameFr: "Eau", NameAr: "ماء", DescriptionFr: "d", DescriptionAr: "d", State: "Liquid"}})
	defer srv.Close()

	// Mixing an empty lab is a local conflict.
	if resp := do(t, http.MethodPost, srv.URL+"/api/mix"); resp.StatusCode != http.StatusConflict {
		t.Errorf("empty lab status = %d, want 409", resp.StatusCode)
	}

	do(t, http.MethodPut, srv.URL+"/api/session/lab/1")
	do(t, http.MethodPut, srv.URL+"/api/session/lab/8")
	resp := do(t, http.MethodPost, srv.URL+"/api/mix")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("mix status = %d", resp.StatusCode)
	}
	var compound genai.Compound
	if err := json.NewDecoder(resp.Body).Decode(&compound); err != nil {
		t.Fatal(err)
	}
	if compound.Formula != "H2O" {
		t.Errorf("formula = %q", compound.Formula)
	}

	// The result survives until reset.
	if resp := do(t, http.MethodGet, srv.URL+"/api/mix"); resp.StatusCode != http.StatusOK {
		t.Errorf("result status = %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodPost, srv.URL+"/api/mix/reset"); resp.StatusCode != http.StatusNoContent {
		t.Errorf("reset status = %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodGet, srv.URL+"/api/mix"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("result after reset status = %d, want 404", resp.StatusCode)
	}
}

func TestSessionStateRoute(t *testing.T) {
	srv, _, _ := newTestServer(&stubGen{})
	defer srv.Close()

	do(t, http.MethodPut, srv.URL+"/api/session/view/1")
	do(t, http.MethodPut, srv.URL+"/api/session/lab/1")
	do(t, http.MethodPut, srv.URL+"/api/session/lab/8")

	resp := do(t, http.MethodGet, srv.URL+"/api/session")
	var state sessionState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatal(err)
	}
	if state.Viewing == nil || state.Viewing.Number != 1 {
		t.Errorf("viewing = %+v", state.Viewing)
	}
	if len(state.Lab) != 2 {
		t.Errorf("lab size = %d, want 2", len(state.Lab))
	}
	if state.MixInFlight {
		t.Error("no mix should be in flight")
	}
}
