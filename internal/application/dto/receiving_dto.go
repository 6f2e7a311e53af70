package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Modos de descarga.
const (
	UnloadingModePallet = "pallet"
	UnloadingModeBlong  = "blong"
)

// PalletLineRequest línea de palet tal como la captura el formulario (bruto en texto).
type PalletLineRequest struct {
	FishID    int64  `json:"fish_id"`
	PalletID  int64  `json:"pallet_id"`
	FreezerID int64  `json:"freezer_id"`
	Gross     string `json:"gross"`
}

// BlongLineRequest línea por pescado en modo blong (sin palets).
type BlongLineRequest struct {
	FishID int64  `json:"fish_id"`
	Gross  string `json:"gross"`
}

// SubmitUnloadingRequest body de POST /penerimaan_barang.
type SubmitUnloadingRequest struct {
	Mode            string              `json:"mode"` // pallet | blong
	Date            time.Time           `json:"date"`
	VesselID        int64               `json:"vessel_id"`
	WarehouseID     int64               `json:"warehouse_id"`
	TransportMethod string              `json:"transport_method"`
	IsGRP           bool                `json:"is_grp"`
	Pallets         []PalletLineRequest `json:"pallets,omitempty"`
	Blong           []BlongLineRequest  `json:"blong,omitempty"`
	// Shrinkage susut por pescado (clave: fish_id).
	Shrinkage map[int64]string `json:"shrinkage,omitempty"`
}

// PalletAssignment tupla [palletId, net, freezerId] del payload de envío.
type PalletAssignment struct {
	PalletID  int64
	Net       decimal.Decimal
	FreezerID int64
}

// MarshalJSON serializa la asignación como arreglo posicional.
func (a PalletAssignment) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{a.PalletID, a.Net, a.FreezerID})
}

// UnmarshalJSON lee el arreglo posicional [palletId, net, freezerId].
func (a *PalletAssignment) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("asignación de palet: se esperaban 3 elementos, llegaron %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &a.PalletID); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &a.Net); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &a.FreezerID)
}

// SubmissionPayload forma de la descarga enviada al sistema de registro:
// items {fishId: [netTotal, shrinkage]}, palletAssignments {fishId: [[palletId, net, freezerId], ...]}.
type SubmissionPayload struct {
	VesselID          int64                        `json:"vesselId"`
	WarehouseID       int64                        `json:"warehouseId"`
	TransportMethod   string                       `json:"transportMethod"`
	IsGRP             bool                         `json:"isGRP"`
	Items             map[int64][2]decimal.Decimal `json:"items"`
	PalletAssignments map[int64][]PalletAssignment `json:"palletAssignments"`
}

// SubmitUnloadingResponse resultado del envío.
type SubmitUnloadingResponse struct {
	ID             int64             `json:"id"`
	Number         string            `json:"number"`
	Payload        SubmissionPayload `json:"payload"`
	UnknownPallets []int64           `json:"unknown_pallets,omitempty"`
}

// NettoPreviewLine netto recalculado de una línea de palet (netto null = sin bruto).
type NettoPreviewLine struct {
	PalletLineRequest
	Tare          decimal.Decimal     `json:"tare"`
	Net           decimal.NullDecimal `json:"net"`
	UnknownPallet bool                `json:"unknown_pallet,omitempty"`
}

// FishLineResponse línea de recepción por pescado.
type FishLineResponse struct {
	FishID    int64               `json:"fish_id"`
	FishName  string              `json:"fish_name"`
	Gross     decimal.NullDecimal `json:"gross"`
	Shrinkage decimal.NullDecimal `json:"shrinkage"`
	Net       decimal.Decimal     `json:"net"`
}

// GoodsReceiptResponse detalle completo de GET /penerimaan_barang/:id.
type GoodsReceiptResponse struct {
	ID              int64                        `json:"id"`
	Number          string                       `json:"number"`
	Date            time.Time                    `json:"date"`
	WarehouseID     int64                        `json:"warehouse_id"`
	VesselID        int64                        `json:"vessel_id"`
	TransportMethod string                       `json:"transport_method"`
	IsGRP           bool                         `json:"is_grp"`
	Done            bool                         `json:"done"`
	Lines           []FishLineResponse           `json:"lines"`
	Pallets         map[int64][]PalletAssignment `json:"pallets"`
}

// FishSummaryRow fila del resumen de recepción impreso.
type FishSummaryRow struct {
	FishName string          `json:"fishName"`
	TotalNet decimal.Decimal `json:"totalNet"`
}

// StockSummaryRow fila del libro de stock impreso.
type StockSummaryRow struct {
	FishName   string          `json:"fishName"`
	TotalStock decimal.Decimal `json:"totalStock"`
	ShrinkageA decimal.Decimal `json:"shrinkageCategoryA"`
	ShrinkageB decimal.Decimal `json:"shrinkageCategoryB"`
}

// PrintHeader cabecera común de los payloads de impresión.
type PrintHeader struct {
	Number          string    `json:"number"`
	VesselName      string    `json:"vesselName"`
	Date            time.Time `json:"date"`
	WarehouseName   string    `json:"warehouseName"`
	TransportMethod string    `json:"transportMethod"`
}

// ReceiptPrintPayload contrato entregado al colaborador de impresión (recepción).
type ReceiptPrintPayload struct {
	PrintHeader
	TotalWeight decimal.Decimal  `json:"totalWeight"`
	GroupedFish []FishSummaryRow `json:"groupedFish"`
}

// StockLedgerPrintPayload contrato entregado al colaborador de impresión (libro de stock).
type StockLedgerPrintPayload struct {
	PrintHeader
	TotalStock      decimal.Decimal   `json:"totalStock"`
	TotalShrinkageA decimal.Decimal   `json:"totalShrinkageA"`
	TotalShrinkageB decimal.Decimal   `json:"totalShrinkageB"`
	DetailStock     []StockSummaryRow `json:"detailStock"`
}

// NettoPreviewRequest body de POST /penerimaan_barang/netto.
type NettoPreviewRequest struct {
	Pallets []PalletLineRequest `json:"pallets"`
}
