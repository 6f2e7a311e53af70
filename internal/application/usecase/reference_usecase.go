package usecase

import (
	"context"

	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
)

// ReferenceUseCase lectura de datos de referencia para los dropdowns del dashboard.
type ReferenceUseCase struct {
	repo repository.ReferenceRepository
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(repo repository.ReferenceRepository) *ReferenceUseCase {
	return &ReferenceUseCase{repo: repo}
}

// ListPallets lista los palets con su tara.
func (uc *ReferenceUseCase) ListPallets(ctx context.Context) ([]dto.PalletResponse, error) {
	list, err := uc.repo.ListPallets(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PalletResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PalletResponse{ID: p.ID, Code: p.Code, Tare: p.Tare})
	}
	return out, nil
}

// ListFreezers lista las cámaras de frío.
func (uc *ReferenceUseCase) ListFreezers(ctx context.Context) ([]dto.NamedResponse, error) {
	list, err := uc.repo.ListFreezers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, 0, len(list))
	for _, f := range list {
		out = append(out, dto.NamedResponse{ID: f.ID, Name: f.Name})
	}
	return out, nil
}

// ListVessels lista los kapal.
func (uc *ReferenceUseCase) ListVessels(ctx context.Context) ([]dto.NamedResponse, error) {
	list, err := uc.repo.ListVessels(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, 0, len(list))
	for _, v := range list {
		out = append(out, dto.NamedResponse{ID: v.ID, Name: v.Name})
	}
	return out, nil
}

// ListWarehouses lista los gudang.
func (uc *ReferenceUseCase) ListWarehouses(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.ListWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, toWarehouseResponse(w))
	}
	return out, nil
}

// ListFish lista los tipos de ikan.
func (uc *ReferenceUseCase) ListFish(ctx context.Context) ([]dto.NamedResponse, error) {
	list, err := uc.repo.ListFish(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, 0, len(list))
	for _, f := range list {
		out = append(out, dto.NamedResponse{ID: f.ID, Name: f.Name})
	}
	return out, nil
}

// ListCustomers lista los clientes.
func (uc *ReferenceUseCase) ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Address: c.Address})
	}
	return out, nil
}

func toWarehouseResponse(w entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{ID: w.ID, Name: w.Name, Address: w.Address}
}
