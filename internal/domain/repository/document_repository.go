package repository

import (
	"context"

	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// DocumentQuery página solicitada de una colección LOV con su filtro de activos.
type DocumentQuery struct {
	Type     entity.DocumentType
	Page     int
	PageSize int
	Filter   entity.DocumentFilter
}

// DocumentPage resultado paginado de una colección LOV.
type DocumentPage struct {
	Items []entity.DocumentSummary
	Total int
}

// DocumentRepository puerto de lectura de las cinco colecciones LOV.
// Lo implementan PostgreSQL y el cliente REST del colaborador.
type DocumentRepository interface {
	ListDocuments(ctx context.Context, q DocumentQuery) (*DocumentPage, error)
}
