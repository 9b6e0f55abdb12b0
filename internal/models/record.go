// Package models defines the data types shared across clients, the Woo
// connector, and the MCP tool handlers.
package models

// Record is a loosely-typed dataset or distribution as returned by the
// Utrecht Open Data API. The API mixes DCAT namespace prefixes (dct:, dcat:,
// foaf:) with bare keys, so field access goes through Attr rather than a
// fixed schema. Records are treated as read-only snapshots.
type Record map[string]any

// Attr resolves a metadata field with namespace support. It tries
// "dct:"+key, "dcat:"+key, "foaf:"+key and finally the bare key, returning
// the first value that is present. Presence, not truthiness, decides the
// match: an empty string stored under "dct:title" shadows a bare "title".
func (r Record) Attr(key string) (any, bool) {
	for _, prefix := range []string{"dct:", "dcat:", "foaf:", ""} {
		if v, ok := r[prefix+key]; ok {
			return v, true
		}
	}
	return nil, false
}

// AttrString resolves a field and returns it as a string, or "" when the
// field is absent or not a string.
func (r Record) AttrString(key string) string {
	v, ok := r.Attr(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// AttrStrings resolves a field holding a list of strings. JSON decoding
// yields []any, so both []string and []any element types are accepted.
func (r Record) AttrStrings(key string) []string {
	v, ok := r.Attr(key)
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// ID returns the record identifier, or "" when absent.
func (r Record) ID() string {
	s, _ := r["id"].(string)
	return s
}

// Attributes returns the nested "attributes" mapping, or the record itself
// when the API returned a flat object.
func (r Record) Attributes() Record {
	if attrs, ok := r["attributes"].(map[string]any); ok {
		return Record(attrs)
	}
	return r
}

// DatasetList is the envelope of the Utrecht /datasets endpoint.
type DatasetList struct {
	Data []Record    `json:"data"`
	Meta DatasetMeta `json:"meta"`
}

// DatasetMeta carries collection metadata for a dataset listing.
type DatasetMeta struct {
	Total int `json:"total"`
}

// UnwrapData unwraps a single-object {"data": {...}} envelope. Some
// endpoints return the dataset bare, so a record without a "data" mapping
// is returned unchanged.
func UnwrapData(r Record) Record {
	if inner, ok := r["data"].(map[string]any); ok {
		return Record(inner)
	}
	return r
}
