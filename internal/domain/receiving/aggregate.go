package receiving

import (
	"github.com/shopspring/decimal"

	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// FishSummaryRow fila del resumen de recepción (reporte A).
type FishSummaryRow struct {
	FishName string
	TotalNet decimal.Decimal
}

// StockSummaryRow fila del libro de stock (reporte B).
// ShrinkageA y ShrinkageB se alimentan del mismo susut por línea.
type StockSummaryRow struct {
	FishName   string
	TotalStock decimal.Decimal
	ShrinkageA decimal.Decimal
	ShrinkageB decimal.Decimal
}

// StockTotals totales del libro de stock.
type StockTotals struct {
	TotalStock      decimal.Decimal
	TotalShrinkageA decimal.Decimal
	TotalShrinkageB decimal.Decimal
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// LineNet netto de una línea de pescado = bruto − susut (faltantes cuentan 0).
func LineNet(l entity.FishReceiptLine) decimal.Decimal {
	return orZero(l.Gross).Sub(orZero(l.Shrinkage))
}

// AggregateReceipt suma el netto por nombre de pescado, en orden de primera aparición.
func AggregateReceipt(lines []entity.FishReceiptLine) []FishSummaryRow {
	rows := make([]FishSummaryRow, 0)
	index := make(map[string]int)
	for _, l := range lines {
		i, ok := index[l.FishName]
		if !ok {
			i = len(rows)
			index[l.FishName] = i
			rows = append(rows, FishSummaryRow{FishName: l.FishName, TotalNet: decimal.Zero})
		}
		rows[i].TotalNet = rows[i].TotalNet.Add(LineNet(l))
	}
	return rows
}

// TotalWeight suma el netto de todas las líneas.
func TotalWeight(lines []entity.FishReceiptLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineNet(l))
	}
	return total
}

// AggregateStockLedger acumula por pescado el stock (netto) y el susut en dos
// totales idénticos (categorías A y B).
func AggregateStockLedger(lines []entity.FishReceiptLine) []StockSummaryRow {
	rows := make([]StockSummaryRow, 0)
	index := make(map[string]int)
	for _, l := range lines {
		i, ok := index[l.FishName]
		if !ok {
			i = len(rows)
			index[l.FishName] = i
			rows = append(rows, StockSummaryRow{
				FishName:   l.FishName,
				TotalStock: decimal.Zero,
				ShrinkageA: decimal.Zero,
				ShrinkageB: decimal.Zero,
			})
		}
		shrink := orZero(l.Shrinkage)
		rows[i].TotalStock = rows[i].TotalStock.Add(LineNet(l))
		rows[i].ShrinkageA = rows[i].ShrinkageA.Add(shrink)
		rows[i].ShrinkageB = rows[i].ShrinkageB.Add(shrink)
	}
	return rows
}

// SumStockLedger totales del libro de stock a partir de sus filas.
func SumStockLedger(rows []StockSummaryRow) StockTotals {
	t := StockTotals{TotalStock: decimal.Zero, TotalShrinkageA: decimal.Zero, TotalShrinkageB: decimal.Zero}
	for _, r := range rows {
		t.TotalStock = t.TotalStock.Add(r.TotalStock)
		t.TotalShrinkageA = t.TotalShrinkageA.Add(r.ShrinkageA)
		t.TotalShrinkageB = t.TotalShrinkageB.Add(r.ShrinkageB)
	}
	return t
}
