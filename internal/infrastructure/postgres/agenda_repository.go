package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/agenda"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
)

var _ repository.AgendaRepository = (*AgendaRepo)(nil)

const agendaColumns = `id, timestamp, vehicle_number, driver_name, customer_id, note, status, domain,
	sales_order_id, delivery_order_id, invoice_id, goods_receipt_id, purchase_note_id`

// AgendaRepo persistencia de live_tracking. Las referencias se guardan en cinco
// columnas anulables; las del dominio inactivo quedan siempre en NULL.
type AgendaRepo struct {
	q Querier
}

// NewAgendaRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAgendaRepository(q Querier) *AgendaRepo {
	return &AgendaRepo{q: q}
}

// Create persiste un registro nuevo y asigna record.ID.
func (r *AgendaRepo) Create(ctx context.Context, record *agenda.Record) error {
	flat := agenda.Flatten(record.Refs)
	query := `
		INSERT INTO live_tracking (timestamp, vehicle_number, driver_name, customer_id, note, status, domain,
			sales_order_id, delivery_order_id, invoice_id, goods_receipt_id, purchase_note_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		record.Timestamp, record.VehicleNumber, record.DriverName, record.CustomerID, record.Note,
		int16(record.Status), string(record.Domain()),
		flat.SalesOrderID, flat.DeliveryOrderID, flat.InvoiceID, flat.GoodsReceiptID, flat.PurchaseNoteID,
	).Scan(&record.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: customer inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert live_tracking: %w", err)
	}
	return nil
}

// Update reemplaza todas las columnas del registro.
func (r *AgendaRepo) Update(ctx context.Context, record *agenda.Record) error {
	flat := agenda.Flatten(record.Refs)
	query := `
		UPDATE live_tracking SET timestamp = $2, vehicle_number = $3, driver_name = $4, customer_id = $5,
			note = $6, status = $7, domain = $8, sales_order_id = $9, delivery_order_id = $10,
			invoice_id = $11, goods_receipt_id = $12, purchase_note_id = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		record.ID, record.Timestamp, record.VehicleNumber, record.DriverName, record.CustomerID, record.Note,
		int16(record.Status), string(record.Domain()),
		flat.SalesOrderID, flat.DeliveryOrderID, flat.InvoiceID, flat.GoodsReceiptID, flat.PurchaseNoteID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: customer inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update live_tracking: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un registro por ID (nil, nil si no existe).
func (r *AgendaRepo) GetByID(ctx context.Context, id int64) (*agenda.Record, error) {
	query := `SELECT ` + agendaColumns + ` FROM live_tracking WHERE id = $1`
	record, err := scanAgenda(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get live_tracking: %w", err)
	}
	return record, nil
}

// List lista registros por fecha descendente con paginación y devuelve el total.
func (r *AgendaRepo) List(ctx context.Context, limit, offset int) ([]*agenda.Record, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM live_tracking`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count live_tracking: %w", err)
	}
	query := `SELECT ` + agendaColumns + ` FROM live_tracking ORDER BY timestamp DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list live_tracking: %w", err)
	}
	defer rows.Close()
	list := make([]*agenda.Record, 0, limit)
	for rows.Next() {
		record, err := scanAgenda(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan live_tracking: %w", err)
		}
		list = append(list, record)
	}
	return list, total, rows.Err()
}

// Delete elimina el registro; domain.ErrNotFound si no existía.
func (r *AgendaRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM live_tracking WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete live_tracking: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAgenda(row pgx.Row) (*agenda.Record, error) {
	var (
		rec        agenda.Record
		status     int16
		domainName string
		flat       agenda.FlatRefs
	)
	err := row.Scan(
		&rec.ID, &rec.Timestamp, &rec.VehicleNumber, &rec.DriverName, &rec.CustomerID, &rec.Note,
		&status, &domainName,
		&flat.SalesOrderID, &flat.DeliveryOrderID, &flat.InvoiceID, &flat.GoodsReceiptID, &flat.PurchaseNoteID,
	)
	if err != nil {
		return nil, err
	}
	d, err := agenda.ParseDomain(domainName)
	if err != nil {
		return nil, err
	}
	refs, err := agenda.RefsFromFlat(d, flat)
	if err != nil {
		return nil, fmt.Errorf("live_tracking %d: %w", rec.ID, err)
	}
	rec.Refs = refs
	if err := rec.SetStatus(agenda.Status(status)); err != nil {
		return nil, err
	}
	return &rec, nil
}
