package agenda_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	domagenda "github.com/Jinzyy/project-eza-sub000/internal/domain/agenda"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
)

var errRemote = errors.New("colaborador no disponible")

// memAgendaRepo repositorio en memoria; updateErr simula un fallo del sistema de registro.
type memAgendaRepo struct {
	mu        sync.Mutex
	records   map[int64]domagenda.Record
	nextID    int64
	updateErr error
	updates   int
}

func newMemAgendaRepo(records ...domagenda.Record) *memAgendaRepo {
	r := &memAgendaRepo{records: make(map[int64]domagenda.Record)}
	for _, rec := range records {
		r.records[rec.ID] = rec
		if rec.ID > r.nextID {
			r.nextID = rec.ID
		}
	}
	return r
}

func (r *memAgendaRepo) Create(_ context.Context, record *domagenda.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	record.ID = r.nextID
	r.records[record.ID] = *record
	return nil
}

func (r *memAgendaRepo) Update(_ context.Context, record *domagenda.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.records[record.ID]; !ok {
		return domain.ErrNotFound
	}
	r.updates++
	r.records[record.ID] = *record
	return nil
}

func (r *memAgendaRepo) GetByID(_ context.Context, id int64) (*domagenda.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *memAgendaRepo) List(_ context.Context, limit, offset int) ([]*domagenda.Record, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := []*domagenda.Record{}
	for i := offset; i < len(ids) && i < offset+limit; i++ {
		rec := r.records[ids[i]]
		out = append(out, &rec)
	}
	return out, len(ids), nil
}

func (r *memAgendaRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

// docSource fuente LOV en memoria; las colecciones pueden cambiar entre llamadas.
type docSource struct {
	mu    sync.Mutex
	items map[entity.DocumentType][]entity.DocumentSummary
	err   error
	calls map[entity.DocumentType]int
}

func newDocSource() *docSource {
	return &docSource{
		items: make(map[entity.DocumentType][]entity.DocumentSummary),
		calls: make(map[entity.DocumentType]int),
	}
}

func (s *docSource) set(t entity.DocumentType, items ...entity.DocumentSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[t] = items
}

func (s *docSource) callsFor(t entity.DocumentType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[t]
}

func (s *docSource) ListDocuments(_ context.Context, q repository.DocumentQuery) (*repository.DocumentPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[q.Type]++
	if s.err != nil {
		return nil, s.err
	}
	items := append([]entity.DocumentSummary(nil), s.items[q.Type]...)
	return &repository.DocumentPage{Items: items, Total: len(items)}, nil
}

var (
	_ repository.AgendaRepository   = (*memAgendaRepo)(nil)
	_ repository.DocumentRepository = (*docSource)(nil)
)

func ptr(v int64) *int64 { return &v }

func doc(id int64, number string) entity.DocumentSummary {
	return entity.DocumentSummary{ID: id, Number: number, CounterpartyName: "CV Samudra"}
}
