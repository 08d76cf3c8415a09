package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

const rawMaterialColumns = `id, name, category, stock, unit, min_level, status, action_required, created_at, updated_at`

// RawMaterialRepo adaptador de persistencia para materias primas.
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador de materias primas.
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

// Create persiste una nueva materia prima.
func (r *RawMaterialRepo) Create(material *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (` + rawMaterialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Category, material.Stock, material.Unit,
		material.MinLevel, material.Status, material.ActionRequired,
		material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

// GetByID obtiene una materia prima por ID. Devuelve nil sin error si no existe.
func (r *RawMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE id = $1`
	var m entity.RawMaterial
	if err := scanRawMaterial(r.q.QueryRow(context.Background(), query, id), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return &m, nil
}

// Update actualiza una materia prima (incluye status derivado ya recalculado).
func (r *RawMaterialRepo) Update(material *entity.RawMaterial) error {
	query := `
		UPDATE raw_materials
		SET name = $2, category = $3, stock = $4, unit = $5, min_level = $6,
		    status = $7, action_required = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Category, material.Stock, material.Unit,
		material.MinLevel, material.Status, material.ActionRequired, material.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update raw material: %w", err)
	}
	return nil
}

// List lista las materias primas ordenadas por nombre.
func (r *RawMaterialRepo) List() ([]*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.RawMaterial
	for rows.Next() {
		var m entity.RawMaterial
		if err := scanRawMaterial(rows, &m); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina una materia prima por ID.
func (r *RawMaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM raw_materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete raw material: %w", err)
	}
	return nil
}

func scanRawMaterial(row pgx.Row, m *entity.RawMaterial) error {
	return row.Scan(
		&m.ID, &m.Name, &m.Category, &m.Stock, &m.Unit,
		&m.MinLevel, &m.Status, &m.ActionRequired,
		&m.CreatedAt, &m.UpdatedAt,
	)
}
