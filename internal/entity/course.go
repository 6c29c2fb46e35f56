package entity

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("curso no encontrado")

type Module struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// Course es un read-model inmutable servido por el Catalog Gateway.
type Course struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	Modules          []Module  `json:"modules"`
	TotalDuration    string    `json:"total_duration"`
	Level            string    `json:"level"`
	Price            float64   `json:"price"`
	OriginalPrice    float64   `json:"original_price"`
	DiscountPct      int       `json:"discount_percentage"`
	DiscountEndDate  time.Time `json:"discount_end_date"`
	Tools            []string  `json:"tools"`
	Schedule         string    `json:"schedule"`
	ThumbnailURL     string    `json:"thumbnail_url"`
	PreviewURL       string    `json:"preview_url"`
	SyllabusURL      string    `json:"syllabus_url"`
	PurchaseLink     string    `json:"purchase_link"`
	DemoRequestLink  string    `json:"demo_request_link"`
	MaxStudents      int       `json:"max_students"`
}

// HasActiveDiscount: descuento vigente si hay porcentaje y no venció.
func (c *Course) HasActiveDiscount(now time.Time) bool {
	return c.DiscountPct > 0 && now.Before(c.DiscountEndDate)
}
