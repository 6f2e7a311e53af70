package agenda

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
	"github.com/Jinzyy/project-eza-sub000/internal/application/lookup"
	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	domagenda "github.com/Jinzyy/project-eza-sub000/internal/domain/agenda"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// ReconcileResult resultado de un intento de conciliación.
type ReconcileResult int

const (
	ReconcilePending ReconcileResult = iota
	ReconcileResolved
	ReconcileAlreadyResolved
	ReconcileCancelled
)

func (r ReconcileResult) String() string {
	switch r {
	case ReconcilePending:
		return "pending"
	case ReconcileResolved:
		return "resolved"
	case ReconcileAlreadyResolved:
		return "already_resolved"
	case ReconcileCancelled:
		return "cancelled"
	}
	return "unknown"
}

type resolution int

const (
	resolutionPending resolution = iota
	resolutionResolved
	resolutionDropped
)

var resolutionNames = map[resolution]string{
	resolutionPending:  "pending",
	resolutionResolved: "resolved",
	resolutionDropped:  "dropped",
}

// EditForm copia del estado del formulario de edición.
type EditForm struct {
	Record  domagenda.Record
	Numbers map[entity.DocumentType]string
}

// EditSession formulario de edición de un registro existente. Los números de documento
// quedan en blanco hasta que todas las colecciones requeridas estén cargadas; entonces
// se resuelven una sola vez.
type EditSession struct {
	mu       sync.Mutex
	id       string
	record   domagenda.Record
	numbers  map[entity.DocumentType]string
	required []entity.DocumentType
	state    resolution
	closed   bool
	openedAt time.Time
}

// NewEditSession abre la sesión sobre una copia de record.
func NewEditSession(id string, record domagenda.Record, openedAt time.Time) *EditSession {
	s := &EditSession{
		id:       id,
		record:   record,
		numbers:  make(map[entity.DocumentType]string),
		openedAt: openedAt,
	}
	if record.Refs != nil {
		for t := range record.Refs.Referenced() {
			s.required = append(s.required, t)
		}
		sort.Slice(s.required, func(i, j int) bool { return s.required[i] < s.required[j] })
	}
	return s
}

// ID identificador de la sesión.
func (s *EditSession) ID() string { return s.id }

// RecordID id del registro editado.
func (s *EditSession) RecordID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.ID
}

// Required tipos cuya colección debe estar cargada para conciliar.
func (s *EditSession) Required() []entity.DocumentType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.DocumentType, len(s.required))
	copy(out, s.required)
	return out
}

// Requires indica si la conciliación pendiente depende de la colección t.
func (s *EditSession) Requires(t entity.DocumentType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state != resolutionPending {
		return false
	}
	for _, r := range s.required {
		if r == t {
			return true
		}
	}
	return false
}

// Reconcile intenta resolver los números contra snap. Mientras falte alguna colección
// requerida no hace nada; tras resolver, las llamadas siguientes no reescriben nada.
// Solo escribe los campos de número; el resto del formulario no se toca.
func (s *EditSession) Reconcile(snap lookup.Snapshot) ReconcileResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.state == resolutionDropped {
		return ReconcileCancelled
	}
	if s.state == resolutionResolved {
		return ReconcileAlreadyResolved
	}
	if !snap.Ready(s.required...) {
		return ReconcilePending
	}

	referenced := s.record.Refs.Referenced()
	for _, t := range s.required {
		id, ok := referenced[t]
		if !ok {
			continue
		}
		s.numbers[t] = lookup.Resolve(t, id, snap).Number
	}
	s.state = resolutionResolved
	return ReconcileResolved
}

// Cancel cierra la sesión; una conciliación pendiente se descarta en silencio.
func (s *EditSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.state == resolutionPending {
		s.state = resolutionDropped
	}
}

// SwitchDomain reinicio duro del formulario: referencias y números en blanco, estado Created.
// Una conciliación pendiente se descarta.
func (s *EditSession) SwitchDomain(d domagenda.Domain) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSessionClosed
	}
	if err := s.record.SwitchDomain(d); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	s.numbers = make(map[entity.DocumentType]string)
	s.required = nil
	if s.state == resolutionPending {
		s.state = resolutionDropped
	}
	return nil
}

// SelectDocument asigna el documento id de tipo t elegido en la LOV y muestra su número.
func (s *EditSession) SelectDocument(t entity.DocumentType, id int64, snap lookup.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSessionClosed
	}
	refs, err := domagenda.WithRef(s.record.Refs, t, id)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	s.record.Refs = refs
	s.numbers[t] = lookup.Resolve(t, id, snap).Number
	return nil
}

// ApplyFields aplica los campos libres no nulos. Una etiqueta de estado desconocida
// no modifica nada.
func (s *EditSession) ApplyFields(in dto.EditFieldsRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSessionClosed
	}
	status := s.record.Status
	if in.Status != nil {
		parsed, err := domagenda.ParseStatusLabel(*in.Status)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		status = parsed
	}
	if err := s.record.SetStatus(status); err != nil {
		return err
	}
	if in.Timestamp != nil {
		s.record.Timestamp = *in.Timestamp
	}
	if in.VehicleNumber != nil {
		s.record.VehicleNumber = *in.VehicleNumber
	}
	if in.DriverName != nil {
		s.record.DriverName = *in.DriverName
	}
	if in.CustomerID != nil {
		v := *in.CustomerID
		s.record.CustomerID = &v
	}
	if in.Note != nil {
		s.record.Note = *in.Note
	}
	return nil
}

// Form devuelve una copia del formulario.
func (s *EditSession) Form() EditForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	numbers := make(map[entity.DocumentType]string, len(s.numbers))
	for t, n := range s.numbers {
		numbers[t] = n
	}
	return EditForm{Record: s.record, Numbers: numbers}
}

// UpdateRequest construye el payload completo de update con el estado actual.
func (s *EditSession) UpdateRequest() (int64, dto.AgendaRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, dto.AgendaRequest{}, domain.ErrSessionClosed
	}
	return s.record.ID, ToAgendaRequest(&s.record), nil
}

// ToResponse estado del formulario para el wire.
func (s *EditSession) ToResponse() *dto.EditFormResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &dto.EditFormResponse{
		AgendaResponse:      *ToAgendaResponse(&s.record),
		SessionID:           s.id,
		State:               resolutionNames[s.state],
		SalesOrderNumber:    s.numbers[entity.DocSalesOrder],
		DeliveryOrderNumber: s.numbers[entity.DocDeliveryOrder],
		InvoiceNumber:       s.numbers[entity.DocInvoice],
		GoodsReceiptNumber:  s.numbers[entity.DocGoodsReceipt],
		PurchaseNoteNumber:  s.numbers[entity.DocPurchaseNote],
	}
}

func (s *EditSession) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *EditSession) expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(s.openedAt) > ttl
}
