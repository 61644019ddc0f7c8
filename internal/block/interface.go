package block

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Manual block CRUD
	Create(ctx context.Context, input CreateBlockInput) (CreateBlockOutput, error)
	List(ctx context.Context, input ListBlocksInput) (ListBlocksOutput, error)
	Detail(ctx context.Context, id string) (DetailBlockOutput, error)
	Update(ctx context.Context, input UpdateBlockInput) (UpdateBlockOutput, error)
	Delete(ctx context.Context, id string) error
}
