package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de transporte admitidos en una descarga.
const (
	TransportTruck = "truck"
	TransportBoat  = "boat"
)

// FishReceiptLine línea de recepción agregada por tipo de pescado.
// Gross es el peso neto de tara (kg); Shrinkage el susut atribuido a la descarga.
// Un valor inválido (NULL) cuenta como 0 en las sumas.
type FishReceiptLine struct {
	FishID    int64
	FishName  string
	Gross     decimal.NullDecimal
	Shrinkage decimal.NullDecimal
}

// ReceiptPallet asignación de un palet a un pescado dentro de la recepción.
type ReceiptPallet struct {
	FishID    int64
	PalletID  int64
	Net       decimal.Decimal
	FreezerID int64
}

// GoodsReceipt representa la cabecera de una penerimaan barang (recepción de mercancía).
// Una vez Done = true se considera cerrada.
type GoodsReceipt struct {
	ID              int64
	Number          string
	Date            time.Time
	WarehouseID     int64
	VesselID        int64
	TransportMethod string
	IsGRP           bool
	Done            bool
	Lines           []FishReceiptLine
	PalletLines     []ReceiptPallet
	CreatedAt       time.Time
}
