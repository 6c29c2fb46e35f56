package entity

import "time"

type Promotion struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ExpiryDate  time.Time `json:"expiry_date"`
	CourseIDs   []string  `json:"course_ids"`
}

func (p *Promotion) Active(now time.Time) bool {
	return p.ExpiryDate.IsZero() || now.Before(p.ExpiryDate)
}

func (p *Promotion) AppliesTo(courseID string) bool {
	if len(p.CourseIDs) == 0 {
		return true
	}
	for _, id := range p.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}
