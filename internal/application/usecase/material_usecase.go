package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para materias primas. El status
// (ok/low/out) se deriva del stock antes de cada persistencia.
type MaterialUseCase struct {
	repo repository.RawMaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.RawMaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create crea una materia prima.
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Stock.LessThan(decimal.Zero) || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	material := &entity.RawMaterial{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Stock:     in.Stock,
		Unit:      in.Unit,
		MinLevel:  in.MinLevel,
		CreatedAt: now,
		UpdatedAt: now,
	}
	material.RefreshStatus()
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	resp := dto.FromMaterial(material)
	return &resp, nil
}

// GetByID obtiene una materia prima por ID.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromMaterial(material)
	return &resp, nil
}

// Update actualiza una materia prima y recalcula su status.
func (uc *MaterialUseCase) Update(id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		material.Name = *in.Name
	}
	if in.Category != nil {
		material.Category = *in.Category
	}
	if in.Stock != nil {
		if in.Stock.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		material.Stock = *in.Stock
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		material.Unit = *in.Unit
	}
	if in.MinLevel != nil {
		material.MinLevel = *in.MinLevel
	}
	material.UpdatedAt = time.Now()
	material.RefreshStatus()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	resp := dto.FromMaterial(material)
	return &resp, nil
}

// List lista las materias primas ordenadas por nombre.
func (uc *MaterialUseCase) List() ([]dto.MaterialResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.FromMaterial(m))
	}
	return items, nil
}

// Delete elimina una materia prima por ID.
func (uc *MaterialUseCase) Delete(id string) error {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
