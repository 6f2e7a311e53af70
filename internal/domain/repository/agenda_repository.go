package repository

import (
	"context"

	"github.com/Jinzyy/project-eza-sub000/internal/domain/agenda"
)

// AgendaRepository define el puerto de persistencia de live tracking.
type AgendaRepository interface {
	Create(ctx context.Context, record *agenda.Record) error
	Update(ctx context.Context, record *agenda.Record) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*agenda.Record, error)
	// List devuelve una página ordenada por fecha descendente y el total.
	List(ctx context.Context, limit, offset int) ([]*agenda.Record, int, error)
	// Delete devuelve domain.ErrNotFound si no había registro.
	Delete(ctx context.Context, id int64) error
}
