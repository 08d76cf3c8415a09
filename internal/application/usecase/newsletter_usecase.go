package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// NewsletterUseCase suscripción del sitio público al boletín.
type NewsletterUseCase struct {
	repo repository.NewsletterRepository
}

// NewNewsletterUseCase construye el caso de uso.
func NewNewsletterUseCase(repo repository.NewsletterRepository) *NewsletterUseCase {
	return &NewsletterUseCase{repo: repo}
}

// Subscribe registra un email. ErrDuplicate si ya está suscrito.
func (uc *NewsletterUseCase) Subscribe(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}
	return uc.repo.Create(&entity.NewsletterSubscriber{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	})
}
