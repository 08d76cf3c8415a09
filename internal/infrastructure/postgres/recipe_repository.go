package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo adaptador de persistencia para recetas. Los ingredientes se
// guardan como JSONB en la misma fila: siempre se leen y escriben como un
// todo, nunca se consultan por ingrediente.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas.
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

type recipeIngredientRow struct {
	MaterialID string `json:"materialId"`
	Quantity   string `json:"quantity"`
	Unit       string `json:"unit"`
}

// Create persiste una receta. El índice único sobre product_id garantiza una
// receta por producto; la violación se traduce a ErrDuplicate.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	ingredients, err := marshalIngredients(recipe.Ingredients)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO recipes (id, product_id, ingredients, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = r.q.Exec(context.Background(), query,
		recipe.ID, recipe.ProductID, ingredients, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

// GetByID obtiene una receta por ID. Devuelve nil sin error si no existe.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	query := `SELECT id, product_id, ingredients, created_at, updated_at FROM recipes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get recipe")
}

// GetByProductID obtiene la receta de un producto. Devuelve nil sin error si
// el producto no tiene receta.
func (r *RecipeRepo) GetByProductID(productID string) (*entity.Recipe, error) {
	query := `SELECT id, product_id, ingredients, created_at, updated_at FROM recipes WHERE product_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID), "get recipe by product")
}

// Update reemplaza la lista completa de ingredientes de la receta.
func (r *RecipeRepo) Update(recipe *entity.Recipe) error {
	ingredients, err := marshalIngredients(recipe.Ingredients)
	if err != nil {
		return err
	}
	query := `UPDATE recipes SET ingredients = $2, updated_at = $3 WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query, recipe.ID, ingredients, recipe.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}

// List lista todas las recetas, más recientes primero.
func (r *RecipeRepo) List() ([]*entity.Recipe, error) {
	query := `SELECT id, product_id, ingredients, created_at, updated_at FROM recipes ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, recipe)
	}
	return list, rows.Err()
}

// Delete elimina una receta por ID.
func (r *RecipeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func (r *RecipeRepo) scanOne(row pgx.Row, op string) (*entity.Recipe, error) {
	recipe, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return recipe, nil
}

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	var recipe entity.Recipe
	var raw []byte
	if err := row.Scan(&recipe.ID, &recipe.ProductID, &raw, &recipe.CreatedAt, &recipe.UpdatedAt); err != nil {
		return nil, err
	}
	ingredients, err := unmarshalIngredients(raw)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients
	return &recipe, nil
}

func marshalIngredients(ingredients []entity.RecipeIngredient) ([]byte, error) {
	rows := make([]recipeIngredientRow, 0, len(ingredients))
	for _, ing := range ingredients {
		rows = append(rows, recipeIngredientRow{
			MaterialID: ing.MaterialID,
			Quantity:   ing.Quantity.String(),
			Unit:       ing.Unit,
		})
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal ingredients: %w", err)
	}
	return data, nil
}

func unmarshalIngredients(raw []byte) ([]entity.RecipeIngredient, error) {
	var rows []recipeIngredientRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal ingredients: %w", err)
	}
	ingredients := make([]entity.RecipeIngredient, 0, len(rows))
	for _, row := range rows {
		qty, err := decimal.NewFromString(row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("unmarshal ingredients: %w", err)
		}
		ingredients = append(ingredients, entity.RecipeIngredient{
			MaterialID: row.MaterialID,
			Quantity:   qty,
			Unit:       row.Unit,
		})
	}
	return ingredients, nil
}
