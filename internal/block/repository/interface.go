package repository

import (
	"context"

	"mobile-recovery-booking/internal/model"
)

// Repository is the composed interface for the manual block store.
type Repository interface {
	BlockRepository
}

// BlockRepository defines all data access methods for ManualBlock records.
type BlockRepository interface {
	CreateBlock(ctx context.Context, opt CreateBlockOptions) (model.ManualBlock, error)
	GetOneBlock(ctx context.Context, opt GetOneBlockOptions) (model.ManualBlock, error)
	ListBlocks(ctx context.Context, opt ListBlocksOptions) ([]model.ManualBlock, error)
	UpdateBlock(ctx context.Context, opt UpdateBlockOptions) (model.ManualBlock, error)
	DeleteBlock(ctx context.Context, id string) error
}
