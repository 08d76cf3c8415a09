package repository

import "github.com/tu-usuario/panaderia-api/internal/domain/entity"

// RawMaterialRepository define el puerto de persistencia para RawMaterial (DIP).
type RawMaterialRepository interface {
	Create(material *entity.RawMaterial) error
	GetByID(id string) (*entity.RawMaterial, error)
	Update(material *entity.RawMaterial) error
	List() ([]*entity.RawMaterial, error)
	Delete(id string) error
}
