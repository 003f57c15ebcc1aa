package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tundeojo/learnly-api/internal/domain"
)

type PostgresCourseRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCourseRepository(db *pgxpool.Pool) *PostgresCourseRepository {
	return &PostgresCourseRepository{
		db: db,
	}
}

func (p *PostgresCourseRepository) GetAll(ctx context.Context, filters domain.CourseFilters) ([]*domain.Course, *domain.Metadata, error) {
	query := fmt.Sprintf(`SELECT count(*) OVER(), id, title, slug, description, thumbnail_url, pricing_type, price
		FROM courses
		WHERE ((to_tsvector('english', title) @@ plainto_tsquery('english', $1)
			OR to_tsvector('english', description) @@ plainto_tsquery('english', $1))
			OR $1 = '')
		ORDER BY %s %s
		LIMIT $2 OFFSET $3`, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(ctx, query, filters.Term, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	courses := []*domain.Course{}

	for rows.Next() {
		var course domain.Course

		err := rows.Scan(
			&totalRecords,
			&course.ID,
			&course.Title,
			&course.Slug,
			&course.Description,
			&course.ThumbnailUrl,
			&course.PricingType,
			&course.Price,
		)

		if err != nil {
			return nil, nil, err
		}

		courses = append(courses, &course)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return courses, metadata, nil
}

func (p *PostgresCourseRepository) GetById(ctx context.Context, id int) (*domain.Course, error) {
	query := `SELECT id, title, slug, description, thumbnail_url, pricing_type, price, suggested_donation, created_at
		FROM courses
		WHERE id = $1`

	var course domain.Course

	err := p.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Slug,
		&course.Description,
		&course.ThumbnailUrl,
		&course.PricingType,
		&course.Price,
		&course.SuggestedDonation,
		&course.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &course, nil
}

// GetByIdWithContent loads a course together with its modules and lessons,
// both in position order.
func (p *PostgresCourseRepository) GetByIdWithContent(ctx context.Context, id int) (*domain.Course, error) {
	course, err := p.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `SELECT m.id, m.course_id, m.title, m.position,
			l.id, l.module_id, l.title, l.position, l.previewable, l.video_url, l.body
		FROM course_modules m
		LEFT JOIN lessons l ON l.module_id = m.id
		WHERE m.course_id = $1
		ORDER BY m.position, l.position`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	moduleIdx := make(map[int]int)

	for rows.Next() {
		var module domain.CourseModule
		var lessonID, lessonModuleID, lessonPosition *int
		var lessonTitle, videoUrl, body *string
		var previewable *bool

		err := rows.Scan(
			&module.ID,
			&module.CourseID,
			&module.Title,
			&module.Position,
			&lessonID,
			&lessonModuleID,
			&lessonTitle,
			&lessonPosition,
			&previewable,
			&videoUrl,
			&body,
		)

		if err != nil {
			return nil, err
		}

		idx, ok := moduleIdx[module.ID]
		if !ok {
			course.Modules = append(course.Modules, module)
			idx = len(course.Modules) - 1
			moduleIdx[module.ID] = idx
		}

		// a module with no lessons yet produces a NULL lesson row
		if lessonID == nil {
			continue
		}

		lesson := domain.Lesson{
			ID:          *lessonID,
			ModuleID:    *lessonModuleID,
			Title:       *lessonTitle,
			Position:    *lessonPosition,
			Previewable: *previewable,
			VideoUrl:    *videoUrl,
			Body:        *body,
		}

		course.Modules[idx].Lessons = append(course.Modules[idx].Lessons, lesson)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return course, nil
}

func (p *PostgresCourseRepository) GetEnrollable(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT id, title, slug, pricing_type, price
		FROM courses
		ORDER BY title`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []*domain.Course{}

	for rows.Next() {
		var course domain.Course

		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Slug,
			&course.PricingType,
			&course.Price,
		)

		if err != nil {
			return nil, err
		}

		courses = append(courses, &course)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
