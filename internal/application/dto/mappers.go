package dto

import "github.com/tu-usuario/panaderia-api/internal/domain/entity"

// FromProduct convierte la entidad a su representación de respuesta.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		Unit:              p.Unit,
		CurrentStock:      p.CurrentStock,
		LowStockThreshold: p.LowStockThreshold,
		ImageURL:          p.ImageURL,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// FromSale convierte la entidad a su representación de respuesta.
func FromSale(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:                  s.ID,
		ProductID:           s.ProductID,
		ProductNameSnapshot: s.ProductNameSnapshot,
		UnitPriceSnapshot:   s.UnitPriceSnapshot,
		Quantity:            s.Quantity,
		Total:               s.Total,
		Note:                s.Note,
		CreatedAt:           s.CreatedAt,
	}
}

// FromSales convierte una lista de ventas.
func FromSales(list []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSale(s))
	}
	return out
}

// FromMovement convierte una entrada del ledger.
func FromMovement(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Type:       string(m.Type),
		Quantity:   m.Quantity,
		Note:       m.Note,
		StockAfter: m.StockAfter,
		CreatedAt:  m.CreatedAt,
	}
}

// FromMaterial convierte la entidad a su representación de respuesta.
func FromMaterial(m *entity.RawMaterial) MaterialResponse {
	return MaterialResponse{
		ID:             m.ID,
		Name:           m.Name,
		Category:       m.Category,
		Stock:          m.Stock,
		Unit:           m.Unit,
		MinLevel:       m.MinLevel,
		Status:         m.Status,
		ActionRequired: m.ActionRequired,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromRecipe convierte la entidad a su representación de respuesta.
func FromRecipe(r *entity.Recipe) RecipeResponse {
	ingredients := make([]RecipeIngredientDTO, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, RecipeIngredientDTO{
			MaterialID: ing.MaterialID,
			Quantity:   ing.Quantity,
			Unit:       ing.Unit,
		})
	}
	return RecipeResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		Ingredients: ingredients,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
