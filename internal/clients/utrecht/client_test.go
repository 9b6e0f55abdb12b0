package utrecht

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const catalogueJSON = `{
	"data": [
		{
			"id": "afvalbakken",
			"attributes": {
				"dct:title": "Afvalbakken in de openbare ruimte",
				"dct:description": "Locaties van afvalbakken in Utrecht",
				"dcat:keyword": ["afval", "openbare ruimte"]
			}
		},
		{
			"id": "parkeergarages",
			"attributes": {
				"dct:title": "Parkeergarages",
				"dct:description": "Bezetting van parkeergarages",
				"dcat:keyword": ["parkeren", "verkeer"]
			}
		},
		{
			"id": "bomen",
			"attributes": {
				"dct:title": "Bomenregister",
				"dct:description": "Alle gemeentelijke bomen"
			}
		}
	],
	"meta": {"total": 3}
}`

func newCatalogueServer(t *testing.T) (*httptest.Server, *string) {
	t.Helper()
	var capturedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/datasets":
			w.Write([]byte(catalogueJSON))
		case "/datasets/afvalbakken":
			w.Write([]byte(`{"data": {"id": "afvalbakken", "attributes": {"dct:title": "Afvalbakken in de openbare ruimte"}}}`))
		case "/datasets/afvalbakken/distributions":
			w.Write([]byte(`{"data": [{"id": "dist-1", "attributes": {"dct:title": "CSV export", "dct:format": "text/csv"}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "not found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &capturedPath
}

func TestListDatasets_ParsesResponse(t *testing.T) {
	srv, capturedPath := newCatalogueServer(t)

	client := NewClient(WithBaseURL(srv.URL))
	datasets, total, err := client.ListDatasets(context.Background())
	if err != nil {
		t.Fatalf("ListDatasets failed: %v", err)
	}

	if *capturedPath != "/datasets" {
		t.Errorf("expected path /datasets, got %s", *capturedPath)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(datasets) != 3 {
		t.Fatalf("expected 3 datasets, got %d", len(datasets))
	}
	if datasets[0].ID() != "afvalbakken" {
		t.Errorf("expected first id afvalbakken, got %s", datasets[0].ID())
	}
	title := datasets[0].Attributes().AttrString("title")
	if title != "Afvalbakken in de openbare ruimte" {
		t.Errorf("unexpected title %q", title)
	}
}

func TestListDatasets_TotalFallsBackToLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"id": "a"}, {"id": "b"}]}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, total, err := client.ListDatasets(context.Background())
	if err != nil {
		t.Fatalf("ListDatasets failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total 2 when meta absent, got %d", total)
	}
}

func TestSearchDatasets_FiltersOnAllFields(t *testing.T) {
	srv, _ := newCatalogueServer(t)
	client := NewClient(WithBaseURL(srv.URL))

	tests := []struct {
		query    string
		expected []string
	}{
		{"afval", []string{"afvalbakken"}},          // title + keyword
		{"bezetting", []string{"parkeergarages"}},   // description
		{"verkeer", []string{"parkeergarages"}},     // keyword only
		{"bomen", []string{"bomen"}},                // id + title
		{"PARKEER", []string{"parkeergarages"}},     // case-insensitive
		{"niets-hiervan", nil},                      // no match
		{"", []string{"afvalbakken", "parkeergarages", "bomen"}}, // empty query returns all
	}

	for _, tt := range tests {
		results, err := client.SearchDatasets(context.Background(), tt.query, 0)
		if err != nil {
			t.Fatalf("SearchDatasets(%q) failed: %v", tt.query, err)
		}
		if len(results) != len(tt.expected) {
			t.Errorf("query %q: expected %d results, got %d", tt.query, len(tt.expected), len(results))
			continue
		}
		for i, want := range tt.expected {
			if results[i].ID() != want {
				t.Errorf("query %q: expected result %d to be %s, got %s", tt.query, i, want, results[i].ID())
			}
		}
	}
}

func TestSearchDatasets_AppliesLimit(t *testing.T) {
	srv, _ := newCatalogueServer(t)
	client := NewClient(WithBaseURL(srv.URL))

	results, err := client.SearchDatasets(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("SearchDatasets failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results with limit, got %d", len(results))
	}
}

func TestGetDataset_UnwrapsDataEnvelope(t *testing.T) {
	srv, capturedPath := newCatalogueServer(t)
	client := NewClient(WithBaseURL(srv.URL))

	record, err := client.GetDataset(context.Background(), "afvalbakken")
	if err != nil {
		t.Fatalf("GetDataset failed: %v", err)
	}
	if *capturedPath != "/datasets/afvalbakken" {
		t.Errorf("expected path /datasets/afvalbakken, got %s", *capturedPath)
	}
	if record.ID() != "afvalbakken" {
		t.Errorf("expected id afvalbakken after unwrap, got %s", record.ID())
	}
}

func TestGetDataset_NotFound(t *testing.T) {
	srv, _ := newCatalogueServer(t)
	client := NewClient(WithBaseURL(srv.URL))

	_, err := client.GetDataset(context.Background(), "bestaat-niet")
	if err == nil {
		t.Fatal("expected error for missing dataset")
	}
}

func TestGetDistributions_ParsesList(t *testing.T) {
	srv, capturedPath := newCatalogueServer(t)
	client := NewClient(WithBaseURL(srv.URL))

	dists, err := client.GetDistributions(context.Background(), "afvalbakken")
	if err != nil {
		t.Fatalf("GetDistributions failed: %v", err)
	}
	if *capturedPath != "/datasets/afvalbakken/distributions" {
		t.Errorf("expected distributions path, got %s", *capturedPath)
	}
	if len(dists) != 1 {
		t.Fatalf("expected 1 distribution, got %d", len(dists))
	}
	format := dists[0].Attributes().AttrString("format")
	if format != "text/csv" {
		t.Errorf("expected format text/csv, got %s", format)
	}
}

func TestFetchRaw_SendsHeaders(t *testing.T) {
	var capturedAccept, capturedAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAccept = r.Header.Get("Accept")
		capturedAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithUserAgent("test-agent/2.0"))
	if _, err := client.FetchRaw(context.Background(), "datasets"); err != nil {
		t.Fatalf("FetchRaw failed: %v", err)
	}
	if capturedAccept != "application/json" {
		t.Errorf("expected Accept application/json, got %s", capturedAccept)
	}
	if capturedAgent != "test-agent/2.0" {
		t.Errorf("expected custom user agent, got %s", capturedAgent)
	}
}

func TestFetchRaw_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.FetchRaw(context.Background(), "/datasets")
	if err == nil {
		t.Fatal("expected error on server error")
	}
}

func TestFetchRaw_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithTimeout(100*time.Millisecond))
	_, err := client.FetchRaw(context.Background(), "/datasets")
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestFetchRaw_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.FetchRaw(ctx, "/datasets")
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestListDatasets_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, _, err := client.ListDatasets(context.Background())
	if err == nil {
		t.Fatal("expected error on invalid JSON")
	}
}
