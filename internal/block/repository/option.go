package repository

// CreateBlockOptions holds parameters for inserting a new manual block.
type CreateBlockOptions struct {
	BlockDate string
	IsAllDay  bool
	StartTime string
	EndTime   string
	Reason    string
}

// GetOneBlockOptions holds filter parameters for fetching a single block.
type GetOneBlockOptions struct {
	ID string
}

// ListBlocksOptions holds filter parameters for listing blocks. Empty
// fields list everything; the store is unpaginated at this scale.
type ListBlocksOptions struct {
	FromDate string // inclusive, YYYY-MM-DD
	ToDate   string // inclusive, YYYY-MM-DD
}

// UpdateBlockOptions holds parameters for updating an existing block.
type UpdateBlockOptions struct {
	ID        string
	BlockDate string
	IsAllDay  bool
	StartTime string
	EndTime   string
	Reason    string
}
