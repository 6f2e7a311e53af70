package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
)

var _ repository.GoodsReceiptRepository = (*GoodsReceiptRepo)(nil)

// GoodsReceiptRepo persistencia de penerimaan barang (cabecera, líneas por ikan y palets).
type GoodsReceiptRepo struct {
	q Querier
}

// NewGoodsReceiptRepository construye el adaptador. Pasar tx para que cabecera y líneas sean atómicas.
func NewGoodsReceiptRepository(q Querier) *GoodsReceiptRepo {
	return &GoodsReceiptRepo{q: q}
}

// Create inserta la cabecera y envía líneas y palets en un único batch.
func (r *GoodsReceiptRepo) Create(ctx context.Context, receipt *entity.GoodsReceipt) error {
	query := `
		INSERT INTO penerimaan_barang (number, date, gudang_id, kapal_id, transport_method, is_grp, is_done)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		receipt.Number, receipt.Date, receipt.WarehouseID, receipt.VesselID,
		receipt.TransportMethod, receipt.IsGRP, receipt.Done,
	).Scan(&receipt.ID, &receipt.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número %s ya existe", domain.ErrConflict, receipt.Number)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: kapal o gudang inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert penerimaan_barang: %w", err)
	}

	batch := &pgx.Batch{}
	for i, l := range receipt.Lines {
		batch.Queue(`
			INSERT INTO penerimaan_barang_ikan (penerimaan_barang_id, position, ikan_id, gross, shrinkage)
			VALUES ($1, $2, $3, $4, $5)`,
			receipt.ID, i, l.FishID, l.Gross, l.Shrinkage)
	}
	for i, p := range receipt.PalletLines {
		batch.Queue(`
			INSERT INTO penerimaan_barang_pallet (penerimaan_barang_id, position, ikan_id, pallet_id, net, freezer_id)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, 0))`,
			receipt.ID, i, p.FishID, p.PalletID, p.Net, p.FreezerID)
	}
	if batch.Len() == 0 {
		return nil
	}
	results := r.q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: ikan inexistente", domain.ErrInvalidInput)
			}
			return fmt.Errorf("insert líneas penerimaan_barang: %w", err)
		}
	}
	return results.Close()
}

// GetByID obtiene la recepción con sus líneas (nil, nil si no existe o está borrada).
func (r *GoodsReceiptRepo) GetByID(ctx context.Context, id int64) (*entity.GoodsReceipt, error) {
	query := `
		SELECT id, number, date, gudang_id, kapal_id, transport_method, is_grp, is_done, created_at
		FROM penerimaan_barang WHERE id = $1 AND NOT is_deleted`
	var g entity.GoodsReceipt
	err := r.q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.Number, &g.Date, &g.WarehouseID, &g.VesselID, &g.TransportMethod, &g.IsGRP, &g.Done, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get penerimaan_barang: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT l.ikan_id, COALESCE(i.name, ''), l.gross, l.shrinkage
		FROM penerimaan_barang_ikan l LEFT JOIN ikan i ON i.id = l.ikan_id
		WHERE l.penerimaan_barang_id = $1 ORDER BY l.position`, id)
	if err != nil {
		return nil, fmt.Errorf("list penerimaan_barang_ikan: %w", err)
	}
	g.Lines, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.FishReceiptLine, error) {
		var l entity.FishReceiptLine
		err := row.Scan(&l.FishID, &l.FishName, &l.Gross, &l.Shrinkage)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan penerimaan_barang_ikan: %w", err)
	}

	rows, err = r.q.Query(ctx, `
		SELECT ikan_id, pallet_id, net, COALESCE(freezer_id, 0)
		FROM penerimaan_barang_pallet WHERE penerimaan_barang_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("list penerimaan_barang_pallet: %w", err)
	}
	g.PalletLines, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.ReceiptPallet, error) {
		var p entity.ReceiptPallet
		err := row.Scan(&p.FishID, &p.PalletID, &p.Net, &p.FreezerID)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan penerimaan_barang_pallet: %w", err)
	}
	return &g, nil
}

// NextSequence incrementa y devuelve el correlativo del día (fila bloqueada hasta el commit).
func (r *GoodsReceiptRepo) NextSequence(ctx context.Context, day time.Time) (int, error) {
	query := `
		INSERT INTO penerimaan_barang_sequence (day, last) VALUES ($1, 1)
		ON CONFLICT (day) DO UPDATE SET last = penerimaan_barang_sequence.last + 1
		RETURNING last`
	y, m, d := day.Date()
	var seq int
	if err := r.q.QueryRow(ctx, query, time.Date(y, m, d, 0, 0, 0, 0, time.UTC)).Scan(&seq); err != nil {
		return 0, fmt.Errorf("sequence penerimaan_barang: %w", err)
	}
	return seq, nil
}

// MarkDone marca la recepción como cerrada; domain.ErrNotFound si no existe.
func (r *GoodsReceiptRepo) MarkDone(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE penerimaan_barang SET is_done = TRUE WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return fmt.Errorf("update penerimaan_barang: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
