package block

import "mobile-recovery-booking/internal/model"

// --- UseCase Inputs ---

type CreateBlockInput struct {
	BlockDate string // YYYY-MM-DD
	IsAllDay  bool
	StartTime string // HH:MM, required when IsAllDay is false
	EndTime   string // HH:MM, required when IsAllDay is false
	Reason    string
}

// ListBlocksInput filters are optional; zero values list every block.
// The store is small enough that no pagination is needed.
type ListBlocksInput struct {
	FromDate string // YYYY-MM-DD inclusive
	ToDate   string // YYYY-MM-DD inclusive
}

type UpdateBlockInput struct {
	ID        string
	BlockDate string
	IsAllDay  bool
	StartTime string
	EndTime   string
	Reason    string
}

// --- UseCase Outputs ---

type CreateBlockOutput struct {
	Block model.ManualBlock
}

type ListBlocksOutput struct {
	Blocks []model.ManualBlock
	Total  int
}

type DetailBlockOutput struct {
	Block model.ManualBlock
}

type UpdateBlockOutput struct {
	Block model.ManualBlock
}
