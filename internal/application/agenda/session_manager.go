package agenda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
	"github.com/Jinzyy/project-eza-sub000/internal/application/lookup"
	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	domagenda "github.com/Jinzyy/project-eza-sub000/internal/domain/agenda"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// DefaultSessionTTL vida de una sesión de edición abandonada.
const DefaultSessionTTL = 30 * time.Minute

// SessionManager mantiene las sesiones de edición abiertas y las concilia cuando
// cambia una colección LOV de la que dependen.
type SessionManager struct {
	mu          sync.Mutex
	sessions    map[string]*EditSession
	agenda      *AgendaUseCase
	resolver    *lookup.Resolver
	pageSize    int
	ttl         time.Duration
	now         func() time.Time
	log         zerolog.Logger
	unsubscribe func()
}

// NewSessionManager se suscribe a la caché del resolver. Llamar Close al terminar.
func NewSessionManager(agenda *AgendaUseCase, resolver *lookup.Resolver, pageSize int, ttl time.Duration, log zerolog.Logger) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	m := &SessionManager{
		sessions: make(map[string]*EditSession),
		agenda:   agenda,
		resolver: resolver,
		pageSize: pageSize,
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
	m.unsubscribe = resolver.Cache().Subscribe(m.onCacheChange)
	return m
}

// Close cancela la suscripción a la caché.
func (m *SessionManager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Open abre una sesión de edición para el registro recordID. Las colecciones requeridas
// que aún estén vacías se cargan (página 1) en paralelo; un fallo de carga deja la
// sesión pendiente y no impide abrirla.
func (m *SessionManager) Open(ctx context.Context, recordID int64) (*dto.EditFormResponse, error) {
	record, err := m.agenda.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}

	session := NewEditSession(uuid.NewString(), *record, m.now())
	m.mu.Lock()
	m.sweepLocked()
	m.sessions[session.ID()] = session
	m.mu.Unlock()

	m.prefetch(ctx, session.Required())

	res := session.Reconcile(m.resolver.Cache().Snapshot())
	m.log.Debug().
		Str("session_id", session.ID()).
		Int64("record_id", recordID).
		Str("result", res.String()).
		Msg("sesión de edición abierta")
	return session.ToResponse(), nil
}

func (m *SessionManager) prefetch(ctx context.Context, required []entity.DocumentType) {
	snap := m.resolver.Cache().Snapshot()
	g, gctx := errgroup.WithContext(ctx)
	for _, t := range required {
		if snap[t].Ready() {
			continue
		}
		g.Go(func() error {
			_, err := m.resolver.FetchPage(gctx, t, 1, m.pageSize)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		m.log.Warn().Err(err).Msg("precarga de colecciones LOV fallida")
	}
}

// Get devuelve el estado actual del formulario.
func (m *SessionManager) Get(id string) (*dto.EditFormResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	return s.ToResponse(), nil
}

// SwitchDomain reinicia el formulario al dominio indicado.
func (m *SessionManager) SwitchDomain(id, domainName string) (*dto.EditFormResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	d, err := domagenda.ParseDomain(domainName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := s.SwitchDomain(d); err != nil {
		return nil, err
	}
	return s.ToResponse(), nil
}

// SelectDocument asigna un documento de la LOV al formulario.
func (m *SessionManager) SelectDocument(id string, in dto.SelectDocumentRequest) (*dto.EditFormResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	t, err := entity.ParseDocumentType(in.Type)
	if err != nil {
		return nil, err
	}
	if err := s.SelectDocument(t, in.ID, m.resolver.Cache().Snapshot()); err != nil {
		return nil, err
	}
	return s.ToResponse(), nil
}

// ApplyFields modifica los campos libres del formulario.
func (m *SessionManager) ApplyFields(id string, in dto.EditFieldsRequest) (*dto.EditFormResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	if err := s.ApplyFields(in); err != nil {
		return nil, err
	}
	return s.ToResponse(), nil
}

// Cancel cierra la sesión y la olvida.
func (m *SessionManager) Cancel(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return domain.ErrNotFound
	}
	s.Cancel()
	m.log.Debug().Str("session_id", id).Msg("sesión de edición cancelada")
	return nil
}

// Submit envía el payload completo de update. Si falla, el formulario queda intacto
// y se devuelve la causa; si tiene éxito, la sesión se cierra.
func (m *SessionManager) Submit(ctx context.Context, id string) (*dto.AgendaResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	recordID, req, err := s.UpdateRequest()
	if err != nil {
		return nil, err
	}
	resp, err := m.agenda.Update(ctx, recordID, req)
	if err != nil {
		return nil, err
	}

	s.close()
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return resp, nil
}

// Len número de sesiones abiertas.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *SessionManager) session(id string) (*EditSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// onCacheChange concilia solo las sesiones pendientes que dependen de t.
func (m *SessionManager) onCacheChange(t entity.DocumentType) {
	m.mu.Lock()
	var affected []*EditSession
	for _, s := range m.sessions {
		if s.Requires(t) {
			affected = append(affected, s)
		}
	}
	m.mu.Unlock()
	if len(affected) == 0 {
		return
	}

	snap := m.resolver.Cache().Snapshot()
	for _, s := range affected {
		if res := s.Reconcile(snap); res == ReconcileResolved {
			m.log.Debug().
				Str("session_id", s.ID()).
				Str("doc_type", t.String()).
				Msg("sesión de edición conciliada")
		}
	}
}

func (m *SessionManager) sweepLocked() {
	now := m.now()
	for id, s := range m.sessions {
		if s.expired(now, m.ttl) {
			s.Cancel()
			delete(m.sessions, id)
		}
	}
}
