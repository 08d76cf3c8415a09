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

var _ repository.NewsletterRepository = (*NewsletterRepo)(nil)

// NewsletterRepo adaptador de persistencia para suscriptores del newsletter.
type NewsletterRepo struct {
	q Querier
}

// NewNewsletterRepository construye el adaptador de suscriptores.
func NewNewsletterRepository(q Querier) *NewsletterRepo {
	return &NewsletterRepo{q: q}
}

// Create persiste un suscriptor. El email ya llega normalizado (minúsculas,
// sin espacios); el índice único lo traduce a ErrDuplicate.
func (r *NewsletterRepo) Create(subscriber *entity.NewsletterSubscriber) error {
	query := `INSERT INTO newsletter_subscribers (id, email, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		subscriber.ID, subscriber.Email, subscriber.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert newsletter subscriber: %w", err)
	}
	return nil
}

// GetByEmail obtiene un suscriptor por email. Devuelve nil sin error si no existe.
func (r *NewsletterRepo) GetByEmail(email string) (*entity.NewsletterSubscriber, error) {
	query := `SELECT id, email, created_at FROM newsletter_subscribers WHERE email = $1`
	var s entity.NewsletterSubscriber
	if err := r.q.QueryRow(context.Background(), query, email).Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get newsletter subscriber: %w", err)
	}
	return &s, nil
}
