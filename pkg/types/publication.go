// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SyncedPublication is a publication record fetched from an external
// academic index by the sync helper and written to the site data file.
type SyncedPublication struct {
	// Title is the work title ("Untitled" when the index has none).
	Title string `json:"title" yaml:"title"`

	// Authors is the author list as one string, with the site owner's
	// name highlighted in bold Markdown.
	Authors string `json:"authors" yaml:"authors"`

	// Year is the publication year, or "Unknown".
	Year Year `json:"year" yaml:"year"`

	// Journal is the venue followed by volume(issue) and pages when known
	// (e.g. "Transactions in GIS, 29(2), e70019").
	Journal string `json:"journal" yaml:"journal"`

	// Link is the landing page or DOI URL.
	Link string `json:"link" yaml:"link"`

	// Source identifies the backend that produced the record
	// (e.g. "openalex", "semantic_scholar").
	Source string `json:"-" yaml:"-"`

	// ExternalID is the backend's identifier for the work.
	ExternalID string `json:"-" yaml:"-"`
}
