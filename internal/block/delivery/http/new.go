package http

import (
	"mobile-recovery-booking/internal/block"
	"mobile-recovery-booking/pkg/log"
)

// Handler is the public interface for the manual block HTTP delivery layer.
type Handler interface {
	Create(c interface{})
	List(c interface{})
	Detail(c interface{})
	Update(c interface{})
	Delete(c interface{})
}

type handler struct {
	l  log.Logger
	uc block.UseCase
}

// New creates a new HTTP handler for the manual block domain.
func New(l log.Logger, uc block.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
