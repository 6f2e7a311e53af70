package receiving

import (
	"github.com/shopspring/decimal"

	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// TareResolver resuelve la tara fija de un palet/contenedor.
type TareResolver interface {
	Lookup(palletID int64) (decimal.Decimal, bool)
}

// TareTable tabla de taras por id de palet, construida desde la lista de referencia.
type TareTable map[int64]decimal.Decimal

// NewTareTable construye la tabla. Un id repetido conserva la última tara.
func NewTareTable(pallets []entity.Pallet) TareTable {
	t := make(TareTable, len(pallets))
	for _, p := range pallets {
		t[p.ID] = p.Tare
	}
	return t
}

// Lookup devuelve la tara y si el palet es conocido.
func (t TareTable) Lookup(palletID int64) (decimal.Decimal, bool) {
	tare, ok := t[palletID]
	return tare, ok
}

// Tare devuelve la tara del palet; los desconocidos resuelven a 0 (política de tara cero).
func Tare(r TareResolver, palletID int64) decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}
	tare, ok := r.Lookup(palletID)
	if !ok {
		return decimal.Zero
	}
	return tare
}
