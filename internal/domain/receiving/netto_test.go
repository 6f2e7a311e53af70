package receiving_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/receiving"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func some(s string) decimal.NullDecimal { return decimal.NewNullDecimal(dec(s)) }

func TestComputeNetto_BrutoMenosTara(t *testing.T) {
	cases := []struct {
		gross, tare, want string
	}{
		{"100", "12.5", "87.5"},
		{"0", "0", "0"},
		{"10", "25", "-15"}, // negativo: se expone tal cual
		{"1500.75", "30.25", "1470.5"},
	}
	for _, tc := range cases {
		got := receiving.ComputeNetto(some(tc.gross), dec(tc.tare))
		assert.True(t, got.Valid, "bruto %s debe producir netto", tc.gross)
		assert.True(t, got.Decimal.Equal(dec(tc.want)), "netto(%s,%s) = %s, esperado %s", tc.gross, tc.tare, got.Decimal, tc.want)
	}
}

func TestComputeNetto_SinBrutoQuedaSinValor(t *testing.T) {
	got := receiving.ComputeNetto(decimal.NullDecimal{}, dec("12"))
	assert.False(t, got.Valid, "sin bruto el netto no debe ser 0 sino sin valor")
}

func TestParseWeight(t *testing.T) {
	assert.True(t, receiving.ParseWeight("12.5").Decimal.Equal(dec("12.5")))
	assert.True(t, receiving.ParseWeight(" 12,5 ").Decimal.Equal(dec("12.5")))
	assert.False(t, receiving.ParseWeight("").Valid)
	assert.False(t, receiving.ParseWeight("   ").Valid)
	assert.False(t, receiving.ParseWeight("abc").Valid)
	assert.False(t, receiving.ParseWeight("1,234.5").Valid)
}

func TestPalletLine_RecalculaAlCambiarBrutoOPalet(t *testing.T) {
	tares := receiving.NewTareTable([]entity.Pallet{
		{ID: 1, Code: "PL-01", Tare: dec("20")},
		{ID: 2, Code: "PL-02", Tare: dec("35")},
	})
	var line receiving.PalletLine

	known := line.SetPallet(1, tares)
	assert.True(t, known)
	assert.False(t, line.Net.Valid, "sin bruto todavía no hay netto")

	line.SetGross("500")
	assert.True(t, line.Net.Decimal.Equal(dec("480")))

	line.SetPallet(2, tares)
	assert.True(t, line.Tare.Equal(dec("35")))
	assert.True(t, line.Net.Decimal.Equal(dec("465")))

	known = line.SetPallet(99, tares)
	assert.False(t, known, "palet desconocido se reporta")
	assert.True(t, line.Tare.IsZero(), "palet desconocido resuelve a tara 0")
	assert.True(t, line.Net.Decimal.Equal(dec("500")))

	line.SetGross("")
	assert.False(t, line.Net.Valid)
}

func TestTare_DesconocidoEsCero(t *testing.T) {
	tares := receiving.NewTareTable([]entity.Pallet{{ID: 5, Tare: dec("18")}})
	assert.True(t, receiving.Tare(tares, 5).Equal(dec("18")))
	assert.True(t, receiving.Tare(tares, 6).IsZero())
	assert.True(t, receiving.Tare(nil, 5).IsZero())
}
