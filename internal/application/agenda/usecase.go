// Package agenda contiene los casos de uso de live tracking: CRUD contra el sistema
// de registro y la sesión de edición con conciliación diferida de números de documento.
package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	domagenda "github.com/Jinzyy/project-eza-sub000/internal/domain/agenda"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
)

// AgendaUseCase casos de uso CRUD de live tracking.
type AgendaUseCase struct {
	repo repository.AgendaRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewAgendaUseCase construye el caso de uso.
func NewAgendaUseCase(repo repository.AgendaRepository, log zerolog.Logger) *AgendaUseCase {
	return &AgendaUseCase{repo: repo, log: log, now: time.Now}
}

// Create valida el payload completo y persiste un registro nuevo.
func (uc *AgendaUseCase) Create(ctx context.Context, in dto.AgendaRequest) (*dto.AgendaResponse, error) {
	record, err := RecordFromRequest(in)
	if err != nil {
		return nil, err
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = uc.now()
	}
	if err := uc.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("crear agenda: %w", err)
	}
	return ToAgendaResponse(record), nil
}

// Update reemplaza el registro id con el payload completo (incluida la etiqueta de estado).
func (uc *AgendaUseCase) Update(ctx context.Context, id int64, in dto.AgendaRequest) (*dto.AgendaResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener agenda: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	record, err := RecordFromRequest(in)
	if err != nil {
		return nil, err
	}
	record.ID = id
	if record.Timestamp.IsZero() {
		record.Timestamp = existing.Timestamp
	}
	if err := uc.repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("actualizar agenda: %w", err)
	}
	return ToAgendaResponse(record), nil
}

// Get obtiene un registro; domain.ErrNotFound si no existe.
func (uc *AgendaUseCase) Get(ctx context.Context, id int64) (*domagenda.Record, error) {
	record, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener agenda: %w", err)
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

// List lista registros paginados (page empieza en 1).
func (uc *AgendaUseCase) List(ctx context.Context, page, limit int) (*dto.AgendaListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	list, total, err := uc.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("listar agenda: %w", err)
	}
	items := make([]dto.AgendaResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *ToAgendaResponse(r))
	}
	return &dto.AgendaListResponse{Items: items, Page: page, Limit: limit, Total: total}, nil
}

// Delete elimina sin condiciones (la confirmación es responsabilidad del llamador) y
// devuelve la lista releída del sistema de registro, no una eliminación local.
func (uc *AgendaUseCase) Delete(ctx context.Context, id int64, page, limit int) (*dto.AgendaListResponse, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("eliminar agenda: %w", err)
	}
	uc.log.Info().Int64("record_id", id).Msg("agenda eliminada")
	return uc.List(ctx, page, limit)
}

// RecordFromRequest convierte el payload plano en registro de dominio.
// Una referencia fuera del dominio o una etiqueta de estado desconocida es ErrInvalidInput.
func RecordFromRequest(in dto.AgendaRequest) (*domagenda.Record, error) {
	d, err := domagenda.ParseDomain(in.Domain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	refs, err := domagenda.RefsFromFlat(d, domagenda.FlatRefs{
		SalesOrderID:    in.SalesOrderID,
		DeliveryOrderID: in.DeliveryOrderID,
		InvoiceID:       in.InvoiceID,
		GoodsReceiptID:  in.GoodsReceiptID,
		PurchaseNoteID:  in.PurchaseNoteID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	status := domagenda.StatusCreated
	if in.Status != "" {
		status, err = domagenda.ParseStatusLabel(in.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	record := &domagenda.Record{
		Timestamp:     in.Timestamp,
		VehicleNumber: in.VehicleNumber,
		DriverName:    in.DriverName,
		CustomerID:    in.CustomerID,
		Note:          in.Note,
		Status:        status,
		Refs:          refs,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// ToAgendaResponse aplana el registro para el wire.
func ToAgendaResponse(r *domagenda.Record) *dto.AgendaResponse {
	if r == nil {
		return nil
	}
	flat := domagenda.Flatten(r.Refs)
	return &dto.AgendaResponse{
		ID:              r.ID,
		Domain:          string(r.Domain()),
		Timestamp:       r.Timestamp,
		VehicleNumber:   r.VehicleNumber,
		DriverName:      r.DriverName,
		CustomerID:      r.CustomerID,
		Note:            r.Note,
		Status:          r.Status.Label(),
		StatusIndex:     int(r.Status),
		SalesOrderID:    flat.SalesOrderID,
		DeliveryOrderID: flat.DeliveryOrderID,
		InvoiceID:       flat.InvoiceID,
		GoodsReceiptID:  flat.GoodsReceiptID,
		PurchaseNoteID:  flat.PurchaseNoteID,
	}
}

// ToAgendaRequest construye el payload completo de update desde un registro.
func ToAgendaRequest(r *domagenda.Record) dto.AgendaRequest {
	flat := domagenda.Flatten(r.Refs)
	return dto.AgendaRequest{
		Domain:          string(r.Domain()),
		Timestamp:       r.Timestamp,
		VehicleNumber:   r.VehicleNumber,
		DriverName:      r.DriverName,
		CustomerID:      r.CustomerID,
		Note:            r.Note,
		Status:          r.Status.Label(),
		SalesOrderID:    flat.SalesOrderID,
		DeliveryOrderID: flat.DeliveryOrderID,
		InvoiceID:       flat.InvoiceID,
		GoodsReceiptID:  flat.GoodsReceiptID,
		PurchaseNoteID:  flat.PurchaseNoteID,
	}
}
