package repository

import (
	"context"
	"time"

	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// GoodsReceiptRepository define el puerto de persistencia de penerimaan barang.
type GoodsReceiptRepository interface {
	// Create persiste cabecera, líneas por pescado y asignaciones de palet; asigna receipt.ID.
	Create(ctx context.Context, receipt *entity.GoodsReceipt) error
	// GetByID devuelve la recepción completa con líneas (nil, nil si no existe).
	GetByID(ctx context.Context, id int64) (*entity.GoodsReceipt, error)
	// NextSequence devuelve el siguiente correlativo del día para numerar recepciones.
	NextSequence(ctx context.Context, day time.Time) (int, error)
	// MarkDone marca la recepción como cerrada.
	MarkDone(ctx context.Context, id int64) error
}
