package input

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/polyroots/internal/errors"
)

func TestParse_Sample(t *testing.T) {
	t.Parallel()

	f, err := os.Open(filepath.Join("testdata", "sample.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if doc.N != 4 || doc.K != 3 {
		t.Errorf("N, K = %d, %d; want 4, 3", doc.N, doc.K)
	}
	wantIDs := []string{"1", "2", "3", "6"}
	if len(doc.Entries) != len(wantIDs) {
		t.Fatalf("got %d entries, want %d", len(doc.Entries), len(wantIDs))
	}
	for i, id := range wantIDs {
		if doc.Entries[i].ID != id {
			t.Errorf("entry %d ID = %q, want %q", i, doc.Entries[i].ID, id)
		}
	}
	if e := doc.Entries[1]; e.Base != 2 || e.Digits != "111" {
		t.Errorf("entry 2 = %+v, want base 2 digits 111", e)
	}
	if w := doc.Warnings(); len(w) != 0 {
		t.Errorf("Warnings() = %v, want none", w)
	}
}

func TestParse_IDOrdering(t *testing.T) {
	t.Parallel()

	doc, err := Parse(strings.NewReader(`{
		"keys": {"n": 5, "k": 1},
		"b":  {"base": "10", "value": "1"},
		"10": {"base": "10", "value": "10"},
		"2":  {"base": "10", "value": "2"},
		"a":  {"base": "10", "value": "3"},
		"1":  {"base": "10", "value": "4"}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1", "2", "10", "a", "b"}
	for i, id := range want {
		if doc.Entries[i].ID != id {
			t.Fatalf("order = %v, want %v", ids(doc), want)
		}
	}
}

func ids(doc Document) []string {
	out := make([]string, len(doc.Entries))
	for i, e := range doc.Entries {
		out[i] = e.ID
	}
	return out
}

func TestParse_Warnings(t *testing.T) {
	t.Parallel()

	doc, err := Parse(strings.NewReader(`{"keys": {"n": 3, "k": 4}, "1": {"base": "10", "value": "4"}}`))
	if err != nil {
		t.Fatal(err)
	}
	w := doc.Warnings()
	if len(w) != 2 {
		t.Fatalf("Warnings() = %v, want 2 warnings", w)
	}
	if w[0] != "keys.n = 3 but 1 roots were supplied" {
		t.Errorf("unexpected warning %q", w[0])
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  error
	}{
		{"not json", `{"keys":`, nil},
		{"missing keys", `{"1": {"base": "10", "value": "4"}}`, nil},
		{"missing k", `{"keys": {"n": 1}}`, nil},
		{"negative k", `{"keys": {"n": 1, "k": -1}}`, nil},
		{"entry not an object", `{"keys": {"n": 1, "k": 1}, "1": "4"}`, nil},
		{"missing value", `{"keys": {"n": 1, "k": 1}, "1": {"base": "10"}}`, nil},
		{"non-decimal base", `{"keys": {"n": 1, "k": 1}, "1": {"base": "x", "value": "4"}}`, apperrors.ErrInvalidDigit},
		{"huge base", `{"keys": {"n": 1, "k": 1}, "1": {"base": "99999999999999999999", "value": "4"}}`, apperrors.ErrArithmeticOverflow},
		{"base beyond int32", `{"keys": {"n": 1, "k": 1}, "1": {"base": "4294967296", "value": "4"}}`, apperrors.ErrArithmeticOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Parse should fail")
			}
			if !apperrors.IsInputError(err) {
				t.Errorf("IsInputError(%v) = false", err)
			}
			if tt.kind != nil && !errors.Is(err, tt.kind) {
				t.Errorf("error = %v, want kind %v", err, tt.kind)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join("testdata", "sample.json")
	doc, err := Load(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if doc.Source != path || len(doc.Entries) != 4 {
		t.Errorf("Load = %+v", doc)
	}

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"), nil)
	if err == nil || !strings.Contains(err.Error(), "failed to open input") {
		t.Errorf("missing file error = %v", err)
	}
}

func TestLoad_HTTP(t *testing.T) {
	t.Parallel()

	body, err := os.ReadFile(filepath.Join("testdata", "sample.json"))
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/input.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	doc, err := Load(context.Background(), srv.URL+"/input.json", srv.Client())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if doc.K != 3 || len(doc.Entries) != 4 {
		t.Errorf("Load = %+v", doc)
	}

	if _, err := Load(context.Background(), srv.URL+"/missing.json", srv.Client()); err == nil ||
		!strings.Contains(err.Error(), "404") {
		t.Errorf("404 error = %v", err)
	}
}

func TestLoad_HTTPCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, srv.URL, srv.Client())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load error = %v, want context.Canceled", err)
	}
}
