package postgre

import (
	"database/sql"
	"fmt"

	"mobile-recovery-booking/internal/block/repository"
	"mobile-recovery-booking/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Postgres-backed manual block repository.
func New(db *sql.DB, l log.Logger) *implRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}

// dsn tags log lines with the repository method for grepping.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("block.repository.postgre.%s", method)
}
