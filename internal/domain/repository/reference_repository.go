package repository

import (
	"context"

	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// ReferenceRepository define el puerto de lectura de datos de referencia
// (palet, freezer, kapal, gudang, ikan, customer) para dropdowns y tara.
type ReferenceRepository interface {
	ListPallets(ctx context.Context) ([]entity.Pallet, error)
	ListFreezers(ctx context.Context) ([]entity.Freezer, error)
	ListVessels(ctx context.Context) ([]entity.Vessel, error)
	ListWarehouses(ctx context.Context) ([]entity.Warehouse, error)
	ListFish(ctx context.Context) ([]entity.Fish, error)
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	// GetVessel y GetWarehouse devuelven (nil, nil) si no existen.
	GetVessel(ctx context.Context, id int64) (*entity.Vessel, error)
	GetWarehouse(ctx context.Context, id int64) (*entity.Warehouse, error)
}
