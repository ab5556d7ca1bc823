package db

import (
	"context"
	"errors"

	"course_catalog/models"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence the HTTP handlers read and write through.
type Store interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int) (models.Course, error)
	// UpdateCourse merges changes into the stored course and returns the
	// result.
	UpdateCourse(ctx context.Context, id int, changes models.CourseChanges) (models.Course, error)
	FindLessons(ctx context.Context, q models.LessonsQuery) ([]models.Lesson, error)
	Ping(ctx context.Context) error
}
