package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/panaderia-api/internal/application/auth"
	"github.com/tu-usuario/panaderia-api/internal/application/inventory"
	"github.com/tu-usuario/panaderia-api/internal/application/reporting"
	"github.com/tu-usuario/panaderia-api/internal/application/sales"
	"github.com/tu-usuario/panaderia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	MaterialUC    *usecase.MaterialUseCase
	RecipeUC      *usecase.RecipeUseCase
	NewsletterUC  *usecase.NewsletterUseCase
	RecordSale    *sales.RecordSaleUseCase
	AdjustStock   *inventory.AdjustStockUseCase
	HistoryUC     *reporting.HistoryUseCase
	DashboardUC   *reporting.DashboardUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
	CookieName    string
	CookieExpHour int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.CookieExpHour)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Newsletter (público, lo consume el sitio)
	newsletterHandler := NewNewsletterHandler(deps.NewsletterUC)
	api.Post("/newsletter", newsletterHandler.Subscribe)

	// Catálogo: lectura pública, mutaciones protegidas
	productHandler := NewProductHandler(deps.ProductUC, deps.AdjustStock)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)

	// Rutas protegidas (cookie de sesión o Bearer)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.CookieName))

	// Products (mutaciones y stock, protegido)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/stock", productHandler.AdjustStock)
	products.Get("/:id/movements", productHandler.ListMovements)

	// Sales (protegido)
	saleHandler := NewSaleHandler(deps.RecordSale, deps.HistoryUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)

	// History (protegido)
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	history := protected.Group("/history")
	history.Get("/", historyHandler.Get)
	history.Get("/csv", historyHandler.GetCSV)
	history.Get("/pdf", historyHandler.GetPDF)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Materials (protegido)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Recipes (protegido)
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/", recipeHandler.List)
	recipes.Get("/by-product/:productId", recipeHandler.GetByProduct)
	recipes.Get("/:id", recipeHandler.GetByID)
	recipes.Put("/:id", recipeHandler.Update)
	recipes.Delete("/:id", recipeHandler.Delete)
}
