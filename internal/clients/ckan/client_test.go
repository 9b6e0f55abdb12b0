package ckan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/interfaces"
)

func newActionServer(t *testing.T, responses map[string]string) (*Client, *url.Values, *string) {
	t.Helper()
	var capturedAction string
	var capturedParams url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAction = r.URL.Path
		capturedParams = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		if body, ok := responses[r.URL.Path]; ok {
			w.Write([]byte(body))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "error": {"message": "Not found", "__type": "Not Found Error"}}`))
	}))
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL)), &capturedParams, &capturedAction
}

func TestSearchDatasets_BuildsQuery(t *testing.T) {
	client, params, action := newActionServer(t, map[string]string{
		"/package_search": `{"success": true, "result": {"count": 1, "results": [{"name": "utrecht-afval", "title": "Afval Utrecht"}]}}`,
	})

	result, err := client.SearchDatasets(context.Background(), interfaces.CKANSearchOptions{
		Query:        "afval",
		Organization: "gemeente-utrecht",
		Tags:         []string{"milieu", "afval"},
		Rows:         25,
		Start:        50,
	})
	if err != nil {
		t.Fatalf("SearchDatasets failed: %v", err)
	}

	if *action != "/package_search" {
		t.Errorf("expected action package_search, got %s", *action)
	}
	if got := params.Get("q"); got != "afval" {
		t.Errorf("expected q=afval, got %s", got)
	}
	wantFQ := `organization:"gemeente-utrecht" AND tags:"milieu" AND tags:"afval"`
	if got := params.Get("fq"); got != wantFQ {
		t.Errorf("expected fq %q, got %q", wantFQ, got)
	}
	if got := params.Get("rows"); got != "25" {
		t.Errorf("expected rows=25, got %s", got)
	}
	if got := params.Get("start"); got != "50" {
		t.Errorf("expected start=50, got %s", got)
	}
	if got := params.Get("sort"); got != "score desc, metadata_modified desc" {
		t.Errorf("unexpected sort %q", got)
	}
	if result.Count != 1 {
		t.Errorf("expected count 1, got %d", result.Count)
	}
	if len(result.Results) != 1 || result.Results[0].Name != "utrecht-afval" {
		t.Errorf("unexpected results: %+v", result.Results)
	}
}

func TestSearchDatasets_Defaults(t *testing.T) {
	client, params, _ := newActionServer(t, map[string]string{
		"/package_search": `{"success": true, "result": {"count": 0, "results": []}}`,
	})

	if _, err := client.SearchDatasets(context.Background(), interfaces.CKANSearchOptions{}); err != nil {
		t.Fatalf("SearchDatasets failed: %v", err)
	}

	if got := params.Get("q"); got != "*:*" {
		t.Errorf("expected match-all query, got %s", got)
	}
	if got := params.Get("rows"); got != "10" {
		t.Errorf("expected default rows 10, got %s", got)
	}
	if params.Has("fq") {
		t.Errorf("expected no fq, got %q", params.Get("fq"))
	}
	if params.Has("start") {
		t.Errorf("expected no start, got %q", params.Get("start"))
	}
}

func TestSearchDatasets_CapsRows(t *testing.T) {
	client, params, _ := newActionServer(t, map[string]string{
		"/package_search": `{"success": true, "result": {"count": 0, "results": []}}`,
	})

	if _, err := client.SearchDatasets(context.Background(), interfaces.CKANSearchOptions{Rows: 5000}); err != nil {
		t.Fatalf("SearchDatasets failed: %v", err)
	}
	if got := params.Get("rows"); got != "1000" {
		t.Errorf("expected rows capped at 1000, got %s", got)
	}
}

func TestGetDataset_ParsesPackageShow(t *testing.T) {
	client, params, _ := newActionServer(t, map[string]string{
		"/package_show": `{"success": true, "result": {
			"name": "utrecht-bomen",
			"title": "Bomenregister Utrecht",
			"license_title": "CC-0 (1.0)",
			"organization": {"name": "gemeente-utrecht", "title": "Gemeente Utrecht"},
			"tags": [{"name": "bomen", "display_name": "Bomen"}],
			"resources": [{"id": "r1", "name": "bomen.csv", "format": "CSV", "url": "https://example.nl/bomen.csv"}]
		}}`,
	})

	dataset, err := client.GetDataset(context.Background(), "utrecht-bomen")
	if err != nil {
		t.Fatalf("GetDataset failed: %v", err)
	}
	if got := params.Get("id"); got != "utrecht-bomen" {
		t.Errorf("expected id param utrecht-bomen, got %s", got)
	}
	if dataset.DisplayTitle() != "Bomenregister Utrecht" {
		t.Errorf("unexpected title %q", dataset.DisplayTitle())
	}
	if dataset.Organization == nil || dataset.Organization.Name != "gemeente-utrecht" {
		t.Errorf("unexpected organization: %+v", dataset.Organization)
	}
	if len(dataset.Resources) != 1 || dataset.Resources[0].Format != "CSV" {
		t.Errorf("unexpected resources: %+v", dataset.Resources)
	}
}

func TestGetDataset_CKANError(t *testing.T) {
	client, _, _ := newActionServer(t, map[string]string{})

	_, err := client.GetDataset(context.Background(), "bestaat-niet")
	if err == nil {
		t.Fatal("expected error for missing dataset")
	}
}

func TestListOrganizations_NamesOnly(t *testing.T) {
	client, params, _ := newActionServer(t, map[string]string{
		"/organization_list": `{"success": true, "result": ["cbs", "gemeente-utrecht", "rivm"]}`,
	})

	orgs, err := client.ListOrganizations(context.Background(), false)
	if err != nil {
		t.Fatalf("ListOrganizations failed: %v", err)
	}
	if params.Has("all_fields") {
		t.Errorf("expected no all_fields param, got %q", params.Get("all_fields"))
	}
	if len(orgs) != 3 {
		t.Fatalf("expected 3 organizations, got %d", len(orgs))
	}
	if orgs[1].Name != "gemeente-utrecht" {
		t.Errorf("expected gemeente-utrecht, got %s", orgs[1].Name)
	}
}

func TestListOrganizations_AllFields(t *testing.T) {
	client, params, _ := newActionServer(t, map[string]string{
		"/organization_list": `{"success": true, "result": [
			{"name": "gemeente-utrecht", "title": "Gemeente Utrecht", "package_count": 120}
		]}`,
	})

	orgs, err := client.ListOrganizations(context.Background(), true)
	if err != nil {
		t.Fatalf("ListOrganizations failed: %v", err)
	}
	if got := params.Get("all_fields"); got != "true" {
		t.Errorf("expected all_fields=true, got %s", got)
	}
	if len(orgs) != 1 || orgs[0].PackageCount != 120 {
		t.Errorf("unexpected organizations: %+v", orgs)
	}
}

func TestGetOrganization_IncludeDatasets(t *testing.T) {
	client, params, _ := newActionServer(t, map[string]string{
		"/organization_show": `{"success": true, "result": {
			"name": "gemeente-utrecht",
			"title": "Gemeente Utrecht",
			"package_count": 2,
			"packages": [{"name": "afval"}, {"name": "bomen"}]
		}}`,
	})

	org, err := client.GetOrganization(context.Background(), "gemeente-utrecht", true)
	if err != nil {
		t.Fatalf("GetOrganization failed: %v", err)
	}
	if got := params.Get("include_datasets"); got != "true" {
		t.Errorf("expected include_datasets=true, got %s", got)
	}
	if len(org.Packages) != 2 {
		t.Errorf("expected 2 packages, got %d", len(org.Packages))
	}
	if org.DisplayTitle() != "Gemeente Utrecht" {
		t.Errorf("unexpected title %q", org.DisplayTitle())
	}
}

func TestListTags(t *testing.T) {
	client, params, _ := newActionServer(t, map[string]string{
		"/tag_list": `{"success": true, "result": [
			{"name": "milieu", "display_name": "Milieu"},
			{"name": "verkeer", "display_name": "Verkeer"}
		]}`,
	})

	tags, err := client.ListTags(context.Background())
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if got := params.Get("all_fields"); got != "true" {
		t.Errorf("expected all_fields=true, got %s", got)
	}
	if len(tags) != 2 || tags[0].Label() != "Milieu" {
		t.Errorf("unexpected tags: %+v", tags)
	}
}

func TestSearchByLicense(t *testing.T) {
	client, params, action := newActionServer(t, map[string]string{
		"/package_search": `{"success": true, "result": {"count": 4, "results": []}}`,
	})

	result, err := client.SearchByLicense(context.Background(), "cc-zero", 20)
	if err != nil {
		t.Fatalf("SearchByLicense failed: %v", err)
	}
	if *action != "/package_search" {
		t.Errorf("expected package_search, got %s", *action)
	}
	if got := params.Get("fq"); got != `license_id:"cc-zero"` {
		t.Errorf("unexpected fq %q", got)
	}
	if got := params.Get("rows"); got != "20" {
		t.Errorf("expected rows=20, got %s", got)
	}
	if got := params.Get("sort"); got != "metadata_modified desc" {
		t.Errorf("unexpected sort %q", got)
	}
	if result.Count != 4 {
		t.Errorf("expected count 4, got %d", result.Count)
	}
}

func TestPopularDatasets(t *testing.T) {
	client, params, action := newActionServer(t, map[string]string{
		"/package_search": `{"success": true, "result": {"count": 2, "results": [
			{"name": "utrecht-afval", "title": "Afval Utrecht"},
			{"name": "utrecht-bomen", "title": "Bomenregister Utrecht"}
		]}}`,
	})

	datasets, err := client.PopularDatasets(context.Background(), 2)
	if err != nil {
		t.Fatalf("PopularDatasets failed: %v", err)
	}
	if *action != "/package_search" {
		t.Errorf("expected package_search, got %s", *action)
	}
	if got := params.Get("q"); got != "*:*" {
		t.Errorf("expected match-all query, got %s", got)
	}
	if got := params.Get("rows"); got != "2" {
		t.Errorf("expected rows=2, got %s", got)
	}
	if len(datasets) != 2 || datasets[0].Name != "utrecht-afval" {
		t.Errorf("unexpected datasets: %+v", datasets)
	}
}

func TestPopularDatasets_Error(t *testing.T) {
	client, _, _ := newActionServer(t, map[string]string{})

	if _, err := client.PopularDatasets(context.Background(), 5); err == nil {
		t.Fatal("expected error when search fails")
	}
}

func TestAction_UnsuccessfulEnvelope(t *testing.T) {
	client, _, _ := newActionServer(t, map[string]string{
		"/package_search": `{"success": false, "error": {"message": "Invalid query", "__type": "Search Query Error"}}`,
	})

	_, err := client.SearchDatasets(context.Background(), interfaces.CKANSearchOptions{Query: "[invalid"})
	if err == nil {
		t.Fatal("expected error for unsuccessful envelope")
	}
}

func TestAction_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.ListTags(context.Background())
	if err == nil {
		t.Fatal("expected error on invalid JSON")
	}
}

func TestPortalURLs(t *testing.T) {
	client := NewClient()

	if got := client.DatasetURL("utrecht-bomen"); got != "https://data.overheid.nl/data/dataset/utrecht-bomen" {
		t.Errorf("unexpected dataset URL %s", got)
	}
	if got := client.ResourceURL("utrecht-bomen", "r1"); got != "https://data.overheid.nl/data/dataset/utrecht-bomen/resource/r1" {
		t.Errorf("unexpected resource URL %s", got)
	}

	custom := NewClient(WithPortalURL("https://portal.example/"))
	if got := custom.DatasetURL("x"); got != "https://portal.example/data/dataset/x" {
		t.Errorf("unexpected custom portal URL %s", got)
	}
}
