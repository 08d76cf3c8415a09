package entity

import "time"

// NewsletterSubscriber es un email suscrito desde el sitio público.
type NewsletterSubscriber struct {
	ID        string
	Email     string
	CreatedAt time.Time
}
