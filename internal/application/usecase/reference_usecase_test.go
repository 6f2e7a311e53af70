package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
	"github.com/Jinzyy/project-eza-sub000/internal/application/usecase"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// ─── Fake ReferenceRepository ───────────────────────────────────────────────

type fakeRefs struct {
	err error
}

func (f *fakeRefs) ListPallets(context.Context) ([]entity.Pallet, error) {
	return []entity.Pallet{{ID: 1, Code: "P-01", Tare: decimal.RequireFromString("2.5")}}, f.err
}

func (f *fakeRefs) ListFreezers(context.Context) ([]entity.Freezer, error) {
	return []entity.Freezer{{ID: 3, Name: "CS-1"}}, f.err
}

func (f *fakeRefs) ListVessels(context.Context) ([]entity.Vessel, error) {
	return []entity.Vessel{{ID: 5, Name: "KM Sinar Laut"}}, f.err
}

func (f *fakeRefs) ListWarehouses(context.Context) ([]entity.Warehouse, error) {
	return []entity.Warehouse{{ID: 7, Name: "Gudang Muara", Address: "Jl. Pelabuhan 1"}}, f.err
}

func (f *fakeRefs) ListFish(context.Context) ([]entity.Fish, error) {
	return []entity.Fish{{ID: 10, Name: "Tuna"}, {ID: 11, Name: "Salmon"}}, f.err
}

func (f *fakeRefs) ListCustomers(context.Context) ([]entity.Customer, error) {
	return []entity.Customer{{ID: 20, Name: "PT Laut Biru", Phone: "0812"}}, f.err
}

func (f *fakeRefs) GetVessel(context.Context, int64) (*entity.Vessel, error)       { return nil, nil }
func (f *fakeRefs) GetWarehouse(context.Context, int64) (*entity.Warehouse, error) { return nil, nil }

// ─── Tests ──────────────────────────────────────────────────────────────────

func TestReferenceUseCase_MapeaListas(t *testing.T) {
	uc := usecase.NewReferenceUseCase(&fakeRefs{})
	ctx := context.Background()

	pallets, err := uc.ListPallets(ctx)
	require.NoError(t, err)
	require.Len(t, pallets, 1)
	assert.Equal(t, "P-01", pallets[0].Code)
	assert.True(t, pallets[0].Tare.Equal(decimal.RequireFromString("2.5")))

	freezers, err := uc.ListFreezers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.NamedResponse{{ID: 3, Name: "CS-1"}}, freezers)

	vessels, err := uc.ListVessels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.NamedResponse{{ID: 5, Name: "KM Sinar Laut"}}, vessels)

	warehouses, err := uc.ListWarehouses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.WarehouseResponse{{ID: 7, Name: "Gudang Muara", Address: "Jl. Pelabuhan 1"}}, warehouses)

	fish, err := uc.ListFish(ctx)
	require.NoError(t, err)
	assert.Len(t, fish, 2)

	customers, err := uc.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.CustomerResponse{{ID: 20, Name: "PT Laut Biru", Phone: "0812"}}, customers)
}

func TestReferenceUseCase_PropagaError(t *testing.T) {
	boom := errors.New("db caída")
	uc := usecase.NewReferenceUseCase(&fakeRefs{err: boom})

	_, err := uc.ListPallets(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = uc.ListCustomers(context.Background())
	assert.ErrorIs(t, err, boom)
}
