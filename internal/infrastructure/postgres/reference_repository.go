package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo lectura de palet, freezer, kapal, gudang, ikan y customer.
type ReferenceRepo struct {
	q Querier
}

// NewReferenceRepository construye el adaptador. Acepta pool o tx (Querier).
func NewReferenceRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q}
}

// ListPallets lista los palets activos con su tara.
func (r *ReferenceRepo) ListPallets(ctx context.Context) ([]entity.Pallet, error) {
	rows, err := r.q.Query(ctx, `SELECT id, code, tare FROM pallet WHERE NOT is_deleted ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list pallet: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Pallet, error) {
		var p entity.Pallet
		err := row.Scan(&p.ID, &p.Code, &p.Tare)
		return p, err
	})
}

// ListFreezers lista los freezers activos.
func (r *ReferenceRepo) ListFreezers(ctx context.Context) ([]entity.Freezer, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM freezer WHERE NOT is_deleted ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list freezer: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Freezer, error) {
		var f entity.Freezer
		err := row.Scan(&f.ID, &f.Name)
		return f, err
	})
}

// ListVessels lista los kapal activos.
func (r *ReferenceRepo) ListVessels(ctx context.Context) ([]entity.Vessel, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM kapal WHERE NOT is_deleted ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list kapal: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Vessel, error) {
		var v entity.Vessel
		err := row.Scan(&v.ID, &v.Name)
		return v, err
	})
}

// ListWarehouses lista los gudang activos.
func (r *ReferenceRepo) ListWarehouses(ctx context.Context) ([]entity.Warehouse, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, address FROM gudang WHERE NOT is_deleted ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list gudang: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Warehouse, error) {
		var w entity.Warehouse
		err := row.Scan(&w.ID, &w.Name, &w.Address)
		return w, err
	})
}

// ListFish lista los tipos de ikan activos.
func (r *ReferenceRepo) ListFish(ctx context.Context) ([]entity.Fish, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM ikan WHERE NOT is_deleted ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list ikan: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Fish, error) {
		var f entity.Fish
		err := row.Scan(&f.ID, &f.Name)
		return f, err
	})
}

// ListCustomers lista los clientes activos.
func (r *ReferenceRepo) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, phone, address FROM customer WHERE NOT is_deleted ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list customer: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Customer, error) {
		var c entity.Customer
		err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Address)
		return c, err
	})
}

// GetVessel obtiene un kapal por ID (nil, nil si no existe).
func (r *ReferenceRepo) GetVessel(ctx context.Context, id int64) (*entity.Vessel, error) {
	var v entity.Vessel
	err := r.q.QueryRow(ctx, `SELECT id, name FROM kapal WHERE id = $1`, id).Scan(&v.ID, &v.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kapal: %w", err)
	}
	return &v, nil
}

// GetWarehouse obtiene un gudang por ID (nil, nil si no existe).
func (r *ReferenceRepo) GetWarehouse(ctx context.Context, id int64) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, `SELECT id, name, address FROM gudang WHERE id = $1`, id).Scan(&w.ID, &w.Name, &w.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gudang: %w", err)
	}
	return &w, nil
}
