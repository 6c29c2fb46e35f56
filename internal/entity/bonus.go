package entity

import "time"

type Bonus struct {
	ID            string    `json:"id"`
	CourseID      string    `json:"course_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	OriginalValue float64   `json:"original_value"`
	MaxClaims     int       `json:"max_claims"`
	CurrentClaims int       `json:"current_claims"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// RemainingClaims nunca baja de cero aunque el contador se pase.
func (b *Bonus) RemainingClaims() int {
	remaining := b.MaxClaims - b.CurrentClaims
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (b *Bonus) Expired(now time.Time) bool {
	return !b.ExpiresAt.IsZero() && now.After(b.ExpiresAt)
}
