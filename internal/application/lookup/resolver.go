package lookup

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Reference resultado de resolver un id contra la caché.
type Reference struct {
	Number           string
	CounterpartyName string
	Found            bool
}

// Placeholder valor mostrado cuando el id no está en la colección cargada.
var Placeholder = Reference{Number: "-", CounterpartyName: "-"}

// Resolve busca id dentro de snap[t].Items. Un fallo devuelve Placeholder, nunca error.
func Resolve(t entity.DocumentType, id int64, snap Snapshot) Reference {
	for _, item := range snap[t].Items {
		if item.ID == id {
			return Reference{Number: item.Number, CounterpartyName: item.CounterpartyName, Found: true}
		}
	}
	return Placeholder
}

// FetchResult página obtenida y si llegó a escribirse en la caché.
type FetchResult struct {
	Page    Page
	Applied bool
}

// Resolver dueño de la caché LOV; carga páginas desde DocumentRepository.
type Resolver struct {
	source  repository.DocumentRepository
	cache   *Cache
	log     zerolog.Logger
	timeout time.Duration
}

// NewResolver construye el resolver con una caché vacía.
func NewResolver(source repository.DocumentRepository, log zerolog.Logger) *Resolver {
	return &Resolver{source: source, cache: NewCache(), log: log}
}

// SetFetchTimeout limita la duración de cada carga de página (0 = sin límite).
func (r *Resolver) SetFetchTimeout(d time.Duration) { r.timeout = d }

// Cache expone la caché para suscripciones y snapshots.
func (r *Resolver) Cache() *Cache { return r.cache }

// FetchPage carga una página de t con el filtro de activos del tipo y reemplaza solo la
// entrada de ese tipo. Si mientras tanto se pidió otra página del mismo tipo, la respuesta
// se descarta (Applied = false). Con error la caché no cambia.
func (r *Resolver) FetchPage(ctx context.Context, t entity.DocumentType, page, pageSize int) (*FetchResult, error) {
	if !t.Valid() {
		return nil, domain.ErrUnknownDocumentType
	}
	page, pageSize = normalizePage(page, pageSize)

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	ticket := r.cache.Begin(t)
	res, err := r.source.ListDocuments(ctx, repository.DocumentQuery{
		Type:     t,
		Page:     page,
		PageSize: pageSize,
		Filter:   entity.ActiveFilter(t),
	})
	if err != nil {
		return nil, fmt.Errorf("lookup %s página %d: %w", t, page, err)
	}

	items := res.Items
	if items == nil {
		items = []entity.DocumentSummary{}
	}
	p := Page{Items: items, Page: page, PageSize: pageSize, Total: res.Total}
	applied := r.cache.Commit(t, ticket, p)
	if !applied {
		r.log.Debug().
			Str("doc_type", t.String()).
			Int("page", page).
			Msg("respuesta LOV obsoleta descartada")
	}
	return &FetchResult{Page: p, Applied: applied}, nil
}

// Resolve resuelve id contra el estado actual de la caché.
func (r *Resolver) Resolve(t entity.DocumentType, id int64) Reference {
	return Resolve(t, id, r.cache.Snapshot())
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
