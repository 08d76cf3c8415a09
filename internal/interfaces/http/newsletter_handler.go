package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/application/usecase"
)

// NewsletterHandler maneja las suscripciones desde el sitio público.
type NewsletterHandler struct {
	uc *usecase.NewsletterUseCase
}

// NewNewsletterHandler construye el handler.
func NewNewsletterHandler(uc *usecase.NewsletterUseCase) *NewsletterHandler {
	return &NewsletterHandler{uc: uc}
}

// Subscribe godoc
// @Summary      Suscribir un email al newsletter
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubscribeRequest  true  "email"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/newsletter [post]
func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	var in dto.SubscribeRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	if err := h.uc.Subscribe(in.Email); err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "ok", "message": "suscripción registrada"})
}
