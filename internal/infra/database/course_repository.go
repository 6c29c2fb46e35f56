package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/xavierca1/ligue-cursos/internal/entity"
)

type CourseRepository struct {
	DB *sql.DB
}

func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

const courseColumns = `
	id, name, short_description, long_description, total_duration, level,
	price, original_price, discount_percentage, discount_end_date, tools,
	schedule, thumbnail_url, preview_url, syllabus_url, purchase_link,
	demo_request_link, max_students
`

func (r *CourseRepository) List(ctx context.Context) ([]entity.Course, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []entity.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, rows.Err()
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)
	course, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrCourseNotFound
		}
		return nil, err
	}

	modules, err := r.modules(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Modules = modules
	return course, nil
}

func (r *CourseRepository) modules(ctx context.Context, courseID string) ([]entity.Module, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT idx, name, description, duration
		FROM course_modules
		WHERE course_id = $1
		ORDER BY idx
	`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []entity.Module
	for rows.Next() {
		var m entity.Module
		var description, duration sql.NullString
		if err := rows.Scan(&m.Index, &m.Name, &description, &duration); err != nil {
			return nil, err
		}
		m.Description = description.String
		m.Duration = duration.String
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*entity.Course, error) {
	var c entity.Course
	var shortDesc, longDesc, duration, level, schedule sql.NullString
	var thumbnail, preview, syllabus, purchase, demo sql.NullString
	var discountEnd sql.NullTime
	var originalPrice sql.NullFloat64
	var discountPct, maxStudents sql.NullInt64

	err := row.Scan(
		&c.ID, &c.Name, &shortDesc, &longDesc, &duration, &level,
		&c.Price, &originalPrice, &discountPct, &discountEnd, pq.Array(&c.Tools),
		&schedule, &thumbnail, &preview, &syllabus, &purchase,
		&demo, &maxStudents,
	)
	if err != nil {
		return nil, err
	}

	c.ShortDescription = shortDesc.String
	c.LongDescription = longDesc.String
	c.TotalDuration = duration.String
	c.Level = level.String
	c.OriginalPrice = originalPrice.Float64
	c.DiscountPct = int(discountPct.Int64)
	if discountEnd.Valid {
		c.DiscountEndDate = discountEnd.Time
	}
	c.Schedule = schedule.String
	c.ThumbnailURL = thumbnail.String
	c.PreviewURL = preview.String
	c.SyllabusURL = syllabus.String
	c.PurchaseLink = purchase.String
	c.DemoRequestLink = demo.String
	c.MaxStudents = int(maxStudents.Int64)
	return &c, nil
}
