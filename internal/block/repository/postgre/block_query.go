package postgre

import (
	"fmt"
	"strings"

	repo "mobile-recovery-booking/internal/block/repository"
)

// buildListQuery builds the WHERE + ORDER clause for ListBlocks.
// Both range bounds are inclusive and optional.
func (r *implRepository) buildListQuery(opt repo.ListBlocksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.FromDate != "" {
		conditions = append(conditions, fmt.Sprintf("block_date >= $%d", idx))
		args = append(args, opt.FromDate)
		idx++
	}
	if opt.ToDate != "" {
		conditions = append(conditions, fmt.Sprintf("block_date <= $%d", idx))
		args = append(args, opt.ToDate)
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY block_date ASC, start_time ASC NULLS FIRST")

	return strings.Join(parts, " "), args
}
