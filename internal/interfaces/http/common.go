package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/panaderia-api/internal/application/dto"
	"github.com/tu-usuario/panaderia-api/internal/domain"
)

// validate instancia compartida del validador de structs (los tags validate
// viven en los DTOs).
var validate = validator.New()

// parseAndValidate parsea el body JSON y valida los tags del DTO. Devuelve
// false si ya respondió un 400.
func parseAndValidate(c *fiber.Ctx, in any) bool {
	if err := c.BodyParser(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
		return false
	}
	if err := validate.Struct(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", err.Error()))
		return false
	}
	return true
}

// domainError mapea los errores de dominio a su status HTTP. Los errores no
// reconocidos se responden como 500 genérico sin filtrar detalles internos.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		// el mensaje ya incluye el stock disponible
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INSUFFICIENT_STOCK", err.Error()))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "datos inválidos"))
	case errors.Is(err, domain.ErrInvalidResult):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_RESULT", "el ajuste dejaría el stock en negativo"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("DUPLICATE", "el recurso ya existe"))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("EMAIL_EXISTS", "el email ya está registrado"))
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrTxTimeout):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("TX_TIMEOUT", "la operación excedió el tiempo límite, reintente"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", "error interno"))
	}
}
