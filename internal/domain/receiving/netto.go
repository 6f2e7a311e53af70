// Package receiving contiene la lógica de conciliación de la recepción de pescado:
// netto corregido por tara, susut y agregación por tipo de pescado.
package receiving

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ComputeNetto netto = bruto − tara cuando el bruto es un número.
// El resultado puede ser negativo (no se recorta). Sin bruto el netto queda sin valor,
// distinto de cero, para no ocultar una captura incompleta.
func ComputeNetto(gross decimal.NullDecimal, tare decimal.Decimal) decimal.NullDecimal {
	if !gross.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(gross.Decimal.Sub(tare))
}

// ParseWeight interpreta el texto del formulario. Vacío o mal formado → sin valor.
// Acepta coma decimal ("12,5").
func ParseWeight(raw string) decimal.NullDecimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.NullDecimal{}
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// PalletLine línea de descarga en modo palet. Tare y Net son derivados: se recalculan
// cada vez que cambia el bruto o el palet.
type PalletLine struct {
	PalletID  int64
	FishID    int64
	FreezerID int64
	Gross     decimal.NullDecimal
	Tare      decimal.Decimal
	Net       decimal.NullDecimal
}

// SetGross cambia el bruto desde texto y recalcula el netto.
func (l *PalletLine) SetGross(raw string) {
	l.Gross = ParseWeight(raw)
	l.Net = ComputeNetto(l.Gross, l.Tare)
}

// SetPallet cambia el palet, resuelve su tara y recalcula el netto.
// Devuelve false si el palet no tiene tara conocida (se usó 0).
func (l *PalletLine) SetPallet(palletID int64, tares TareResolver) bool {
	l.PalletID = palletID
	known := false
	if tares != nil {
		_, known = tares.Lookup(palletID)
	}
	l.Tare = Tare(tares, palletID)
	l.Net = ComputeNetto(l.Gross, l.Tare)
	return known
}
