package dto

import "github.com/shopspring/decimal"

// PalletResponse palet con su tara.
type PalletResponse struct {
	ID   int64           `json:"id"`
	Code string          `json:"code"`
	Tare decimal.Decimal `json:"tare"`
}

// NamedResponse elemento genérico de dropdown (freezer, kapal, ikan).
type NamedResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// WarehouseResponse gudang.
type WarehouseResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// CustomerResponse cliente.
type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}
