package deeplink

// Values holds the data extracted from a URL by a template.
type Values struct {
	// Path values, keyed by the names given to the template's path parts.
	Path map[string]Value `json:"path"`

	// Query values, keyed by the names of the template's query parameters.
	// Optional parameters that were absent or did not parse have no entry.
	Query map[string]Value `json:"query"`

	// Fragment is the text after '#', as it appeared in the URL. Empty when
	// the URL has none.
	Fragment string `json:"fragment,omitempty"`
}
