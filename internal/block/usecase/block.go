package usecase

import (
	"context"
	"time"

	"mobile-recovery-booking/internal/block"
	"mobile-recovery-booking/internal/block/repository"
	"mobile-recovery-booking/internal/model"
	"mobile-recovery-booking/pkg/slotgrid"
)

// Create validates and stores a new manual block.
func (uc *implUseCase) Create(ctx context.Context, input block.CreateBlockInput) (block.CreateBlockOutput, error) {
	if err := validateBlockFields(input.BlockDate, input.IsAllDay, input.StartTime, input.EndTime); err != nil {
		return block.CreateBlockOutput{}, err
	}

	created, err := uc.repo.CreateBlock(ctx, repository.CreateBlockOptions{
		BlockDate: input.BlockDate,
		IsAllDay:  input.IsAllDay,
		StartTime: normalizedTimes(input.IsAllDay, input.StartTime),
		EndTime:   normalizedTimes(input.IsAllDay, input.EndTime),
		Reason:    input.Reason,
	})
	if err != nil {
		uc.l.Errorf(ctx, "block.usecase.Create: %v", err)
		return block.CreateBlockOutput{}, err
	}

	return block.CreateBlockOutput{Block: created}, nil
}

// List returns blocks, optionally restricted to an inclusive date range.
func (uc *implUseCase) List(ctx context.Context, input block.ListBlocksInput) (block.ListBlocksOutput, error) {
	for _, d := range []string{input.FromDate, input.ToDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(model.DateKeyFormat, d); err != nil {
			return block.ListBlocksOutput{}, block.ErrInvalidBlockDate
		}
	}

	blocks, err := uc.repo.ListBlocks(ctx, repository.ListBlocksOptions{
		FromDate: input.FromDate,
		ToDate:   input.ToDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "block.usecase.List: %v", err)
		return block.ListBlocksOutput{}, err
	}

	return block.ListBlocksOutput{Blocks: blocks, Total: len(blocks)}, nil
}

// Detail returns a single block by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (block.DetailBlockOutput, error) {
	found, err := uc.repo.GetOneBlock(ctx, repository.GetOneBlockOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "block.usecase.Detail: %v", err)
		return block.DetailBlockOutput{}, err
	}
	if found.ID == "" {
		return block.DetailBlockOutput{}, block.ErrBlockNotFound
	}
	return block.DetailBlockOutput{Block: found}, nil
}

// Update validates and replaces an existing block's fields.
func (uc *implUseCase) Update(ctx context.Context, input block.UpdateBlockInput) (block.UpdateBlockOutput, error) {
	if err := validateBlockFields(input.BlockDate, input.IsAllDay, input.StartTime, input.EndTime); err != nil {
		return block.UpdateBlockOutput{}, err
	}

	updated, err := uc.repo.UpdateBlock(ctx, repository.UpdateBlockOptions{
		ID:        input.ID,
		BlockDate: input.BlockDate,
		IsAllDay:  input.IsAllDay,
		StartTime: normalizedTimes(input.IsAllDay, input.StartTime),
		EndTime:   normalizedTimes(input.IsAllDay, input.EndTime),
		Reason:    input.Reason,
	})
	if err != nil {
		uc.l.Errorf(ctx, "block.usecase.Update: %v", err)
		return block.UpdateBlockOutput{}, err
	}
	if updated.ID == "" {
		return block.UpdateBlockOutput{}, block.ErrBlockNotFound
	}

	return block.UpdateBlockOutput{Block: updated}, nil
}

// Delete removes a block by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.GetOneBlock(ctx, repository.GetOneBlockOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "block.usecase.Delete: %v", err)
		return err
	}
	if found.ID == "" {
		return block.ErrBlockNotFound
	}

	if err := uc.repo.DeleteBlock(ctx, id); err != nil {
		uc.l.Errorf(ctx, "block.usecase.Delete: %v", err)
		return err
	}
	return nil
}

// validateBlockFields enforces the ManualBlock invariants: a valid calendar
// date, and for partial blocks a well-formed HH:MM window with start < end.
func validateBlockFields(blockDate string, isAllDay bool, startTime, endTime string) error {
	if _, err := time.Parse(model.DateKeyFormat, blockDate); err != nil {
		return block.ErrInvalidBlockDate
	}
	if isAllDay {
		return nil
	}

	if startTime == "" || endTime == "" {
		return block.ErrMissingTimeWindow
	}
	startMin, err := slotgrid.ToMinutes(startTime)
	if err != nil {
		return block.ErrInvalidTimeOfDay
	}
	endMin, err := slotgrid.ToMinutes(endTime)
	if err != nil {
		return block.ErrInvalidTimeOfDay
	}
	if startMin >= endMin {
		return block.ErrInvalidTimeWindow
	}
	return nil
}

// normalizedTimes blanks time fields on all-day blocks so the store never
// carries a stale window alongside is_all_day.
func normalizedTimes(isAllDay bool, t string) string {
	if isAllDay {
		return ""
	}
	return t
}
