package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panaderia-api/internal/application/usecase"
	"github.com/tu-usuario/panaderia-api/internal/domain"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

// fakeNewsletterRepo repo en memoria indexado por email.
type fakeNewsletterRepo struct {
	byEmail map[string]*entity.NewsletterSubscriber
}

func (r *fakeNewsletterRepo) Create(s *entity.NewsletterSubscriber) error {
	r.byEmail[s.Email] = s
	return nil
}

func (r *fakeNewsletterRepo) GetByEmail(email string) (*entity.NewsletterSubscriber, error) {
	return r.byEmail[email], nil
}

func TestSubscribe_NormalizaEmail(t *testing.T) {
	repo := &fakeNewsletterRepo{byEmail: make(map[string]*entity.NewsletterSubscriber)}
	uc := usecase.NewNewsletterUseCase(repo)

	require.NoError(t, uc.Subscribe("  Cliente@Ejemplo.COM "))

	sub, ok := repo.byEmail["cliente@ejemplo.com"]
	require.True(t, ok, "el email se guarda en minúsculas y sin espacios")
	assert.NotEmpty(t, sub.ID)
}

func TestSubscribe_Duplicado(t *testing.T) {
	repo := &fakeNewsletterRepo{byEmail: make(map[string]*entity.NewsletterSubscriber)}
	uc := usecase.NewNewsletterUseCase(repo)

	require.NoError(t, uc.Subscribe("cliente@ejemplo.com"))
	err := uc.Subscribe("CLIENTE@ejemplo.com")
	assert.ErrorIs(t, err, domain.ErrDuplicate, "mismo email con otra capitalización es duplicado")
}

func TestSubscribe_EmailVacio(t *testing.T) {
	repo := &fakeNewsletterRepo{byEmail: make(map[string]*entity.NewsletterSubscriber)}
	uc := usecase.NewNewsletterUseCase(repo)

	assert.ErrorIs(t, uc.Subscribe("   "), domain.ErrInvalidInput)
}
