package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	repo "mobile-recovery-booking/internal/block/repository"
	"mobile-recovery-booking/internal/model"
)

// blockRow scans a manual_blocks row; start/end times are NULL for
// all-day blocks.
type blockRow struct {
	ID        string
	BlockDate time.Time
	IsAllDay  bool
	StartTime sql.NullString
	EndTime   sql.NullString
	Reason    sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (row blockRow) toModel() model.ManualBlock {
	return model.ManualBlock{
		ID:        row.ID,
		BlockDate: row.BlockDate.Format(model.DateKeyFormat),
		IsAllDay:  row.IsAllDay,
		StartTime: row.StartTime.String,
		EndTime:   row.EndTime.String,
		Reason:    row.Reason.String,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateBlock inserts a new manual block row and returns the created entity.
func (r *implRepository) CreateBlock(ctx context.Context, opt repo.CreateBlockOptions) (model.ManualBlock, error) {
	const query = `
		INSERT INTO manual_blocks (id, block_date, is_all_day, start_time, end_time, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, block_date, is_all_day, start_time, end_time, reason, created_at, updated_at`

	var row blockRow
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.BlockDate, opt.IsAllDay, nullable(opt.StartTime), nullable(opt.EndTime), nullable(opt.Reason),
	).Scan(
		&row.ID, &row.BlockDate, &row.IsAllDay, &row.StartTime, &row.EndTime, &row.Reason, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBlock"), err)
		return model.ManualBlock{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOneBlock retrieves a single block by the provided filters.
// Returns zero-value ManualBlock (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneBlock(ctx context.Context, opt repo.GetOneBlockOptions) (model.ManualBlock, error) {
	const baseQuery = `SELECT id, block_date, is_all_day, start_time, end_time, reason, created_at, updated_at FROM manual_blocks`
	query := fmt.Sprintf("%s WHERE id = $1 LIMIT 1", baseQuery)

	var row blockRow
	err := r.db.QueryRowContext(ctx, query, opt.ID).Scan(
		&row.ID, &row.BlockDate, &row.IsAllDay, &row.StartTime, &row.EndTime, &row.Reason, &row.CreatedAt, &row.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.ManualBlock{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBlock"), err)
		return model.ManualBlock{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListBlocks returns every block matching the optional date-range filter.
// No pagination: the operator-managed store stays small.
func (r *implRepository) ListBlocks(ctx context.Context, opt repo.ListBlocksOptions) ([]model.ManualBlock, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, block_date, is_all_day, start_time, end_time, reason, created_at, updated_at FROM manual_blocks %s`,
		mods,
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBlocks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var blocks []model.ManualBlock
	for rows.Next() {
		var row blockRow
		if err := rows.Scan(&row.ID, &row.BlockDate, &row.IsAllDay, &row.StartTime, &row.EndTime, &row.Reason, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		blocks = append(blocks, row.toModel())
	}
	return blocks, nil
}

// UpdateBlock updates a block by ID and returns the updated entity.
func (r *implRepository) UpdateBlock(ctx context.Context, opt repo.UpdateBlockOptions) (model.ManualBlock, error) {
	const query = `
		UPDATE manual_blocks
		SET block_date = $1, is_all_day = $2, start_time = $3, end_time = $4, reason = $5, updated_at = $6
		WHERE id = $7
		RETURNING id, block_date, is_all_day, start_time, end_time, reason, created_at, updated_at`

	var row blockRow
	err := r.db.QueryRowContext(ctx, query,
		opt.BlockDate, opt.IsAllDay, nullable(opt.StartTime), nullable(opt.EndTime), nullable(opt.Reason), time.Now(), opt.ID,
	).Scan(
		&row.ID, &row.BlockDate, &row.IsAllDay, &row.StartTime, &row.EndTime, &row.Reason, &row.CreatedAt, &row.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.ManualBlock{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBlock"), err)
		return model.ManualBlock{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteBlock removes a block by ID.
func (r *implRepository) DeleteBlock(ctx context.Context, id string) error {
	const query = `DELETE FROM manual_blocks WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteBlock"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
