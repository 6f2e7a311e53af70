package entity

import "github.com/shopspring/decimal"

// Pallet representa un palet o contenedor con su tara fija (kg).
type Pallet struct {
	ID   int64
	Code string
	Tare decimal.Decimal
}

// Freezer representa una cámara de frío donde se ubican los palets.
type Freezer struct {
	ID   int64
	Name string
}

// Vessel representa un kapal (barco) proveedor de la descarga.
type Vessel struct {
	ID   int64
	Name string
}

// Warehouse representa un gudang (bodega) de recepción.
type Warehouse struct {
	ID      int64
	Name    string
	Address string
}

// Fish representa un tipo de ikan (pescado) comercializado.
type Fish struct {
	ID   int64
	Name string
}

// Customer representa un cliente de la empresa.
type Customer struct {
	ID      int64
	Name    string
	Phone   string
	Address string
}
