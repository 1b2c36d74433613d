package types

// Filter represents query parameters for filtering and pagination.
// A zero Limit means "no limit": aggregate consumers read the full
// record set and recompute from scratch.
type Filter struct {
	Search string            `json:"search,omitempty"`
	Sort   map[string]string `json:"sort,omitempty"`
	Filter map[string]string `json:"filter,omitempty"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// Pagination represents pagination metadata.
type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}
