package receiving

import (
	"context"

	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD con el repositorio de recepciones
// atado a esa tx. Numeración y alta de la recepción son atómicas.
type TxRunner interface {
	RunReceiving(ctx context.Context, fn func(receipts repository.GoodsReceiptRepository) error) error
}
