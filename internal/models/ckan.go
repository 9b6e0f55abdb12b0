package models

// CKANDataset is a dataset (package) as returned by the data.overheid.nl
// CKAN API. Only the fields the tools render are mapped.
type CKANDataset struct {
	Name             string            `json:"name"`
	Title            string            `json:"title"`
	Notes            string            `json:"notes"`
	LicenseTitle     string            `json:"license_title"`
	MetadataCreated  string            `json:"metadata_created"`
	MetadataModified string            `json:"metadata_modified"`
	Organization     *CKANOrganization `json:"organization,omitempty"`
	Tags             []CKANTag         `json:"tags,omitempty"`
	Resources        []CKANResource    `json:"resources,omitempty"`
}

// DisplayTitle returns the title, falling back to the name.
func (d *CKANDataset) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

// CKANTag is a keyword attached to a CKAN dataset.
type CKANTag struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Label returns the display name, falling back to the raw name.
func (t CKANTag) Label() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Name
}

// CKANResource is a downloadable file attached to a CKAN dataset.
type CKANResource struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Format string `json:"format"`
	URL    string `json:"url"`
}

// CKANOrganization is a government organization on data.overheid.nl.
type CKANOrganization struct {
	Name         string        `json:"name"`
	Title        string        `json:"title"`
	DisplayName  string        `json:"display_name"`
	Description  string        `json:"description"`
	ImageURL     string        `json:"image_url"`
	PackageCount int           `json:"package_count"`
	Packages     []CKANDataset `json:"packages,omitempty"`
}

// DisplayTitle returns the best available human-readable name.
func (o *CKANOrganization) DisplayTitle() string {
	if o.Title != "" {
		return o.Title
	}
	if o.DisplayName != "" {
		return o.DisplayName
	}
	return o.Name
}

// CKANSearchResult is the package_search response: total hit count plus the
// current page of results and optional facets.
type CKANSearchResult struct {
	Count   int            `json:"count"`
	Results []CKANDataset  `json:"results"`
	Facets  map[string]any `json:"facets,omitempty"`
}
