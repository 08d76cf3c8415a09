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

// RecipeUseCase casos de uso CRUD para recetas (lista de materiales por
// producto). Política de duplicados: un producto con receta existente
// rechaza la creación de otra; no hay merge silencioso de ingredientes.
type RecipeUseCase struct {
	repo         repository.RecipeRepository
	productRepo  repository.ProductRepository
	materialRepo repository.RawMaterialRepository
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(
	repo repository.RecipeRepository,
	productRepo repository.ProductRepository,
	materialRepo repository.RawMaterialRepository,
) *RecipeUseCase {
	return &RecipeUseCase{repo: repo, productRepo: productRepo, materialRepo: materialRepo}
}

// Create crea la receta de un producto. ErrDuplicate si ya tiene una.
func (uc *RecipeUseCase) Create(in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByProductID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	ingredients, err := uc.toIngredients(in.Ingredients)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	recipe := &entity.Recipe{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Ingredients: ingredients,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(recipe); err != nil {
		return nil, err
	}
	resp := dto.FromRecipe(recipe)
	return &resp, nil
}

// GetByID obtiene una receta por ID.
func (uc *RecipeUseCase) GetByID(id string) (*dto.RecipeResponse, error) {
	recipe, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromRecipe(recipe)
	return &resp, nil
}

// GetByProduct obtiene la receta de un producto.
func (uc *RecipeUseCase) GetByProduct(productID string) (*dto.RecipeResponse, error) {
	recipe, err := uc.repo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromRecipe(recipe)
	return &resp, nil
}

// Update reemplaza los ingredientes de la receta.
func (uc *RecipeUseCase) Update(id string, in dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	recipe, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	ingredients, err := uc.toIngredients(in.Ingredients)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients
	recipe.UpdatedAt = time.Now()
	if err := uc.repo.Update(recipe); err != nil {
		return nil, err
	}
	resp := dto.FromRecipe(recipe)
	return &resp, nil
}

// List lista las recetas, más recientes primero.
func (uc *RecipeUseCase) List() ([]dto.RecipeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecipeResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.FromRecipe(r))
	}
	return items, nil
}

// Delete elimina una receta por ID.
func (uc *RecipeUseCase) Delete(id string) error {
	recipe, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// toIngredients valida cada ingrediente (material existente, cantidad > 0,
// unidad permitida) y lo convierte a la entidad.
func (uc *RecipeUseCase) toIngredients(in []dto.RecipeIngredientDTO) ([]entity.RecipeIngredient, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	out := make([]entity.RecipeIngredient, 0, len(in))
	for _, ing := range in {
		if !ing.Quantity.GreaterThan(decimal.Zero) || !entity.ValidUnit(ing.Unit) {
			return nil, domain.ErrInvalidInput
		}
		material, err := uc.materialRepo.GetByID(ing.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			return nil, domain.ErrNotFound
		}
		out = append(out, entity.RecipeIngredient{
			MaterialID: ing.MaterialID,
			Quantity:   ing.Quantity,
			Unit:       ing.Unit,
		})
	}
	return out, nil
}
