package repository

import "github.com/tu-usuario/panaderia-api/internal/domain/entity"

// NewsletterRepository define el puerto de persistencia para suscriptores.
type NewsletterRepository interface {
	Create(subscriber *entity.NewsletterSubscriber) error
	GetByEmail(email string) (*entity.NewsletterSubscriber, error)
}
