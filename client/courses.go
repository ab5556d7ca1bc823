package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"course_catalog/models"

	"github.com/tidwall/gjson"
)

const (
	coursesPath = "/api/courses"
	lessonsPath = "/api/lessons"
)

// FindAllCourses returns every course in the catalog.
func (s *CoursesService) FindAllCourses(ctx context.Context) ([]models.Course, error) {
	body, err := s.do(ctx, http.MethodGet, coursesPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrapPayload[models.Course](body)
}

// FindCourseByID fetches a single course. An unknown id surfaces as an
// *HTTPError carrying the server's status.
func (s *CoursesService) FindCourseByID(ctx context.Context, id int) (models.Course, error) {
	var course models.Course
	body, err := s.do(ctx, http.MethodGet, coursePath(id), nil, nil)
	if err != nil {
		return course, err
	}
	if err := json.Unmarshal(body, &course); err != nil {
		return course, fmt.Errorf("%w: decode course: %v", ErrMalformedResponse, err)
	}
	return course, nil
}

// SaveCourse sends a partial update and returns the course as the server
// stored it.
func (s *CoursesService) SaveCourse(ctx context.Context, id int, changes models.CourseChanges) (models.Course, error) {
	var course models.Course
	body, err := s.do(ctx, http.MethodPut, coursePath(id), nil, changes)
	if err != nil {
		return course, err
	}
	if err := json.Unmarshal(body, &course); err != nil {
		return course, fmt.Errorf("%w: decode course: %v", ErrMalformedResponse, err)
	}
	return course, nil
}

type LessonsOption func(*models.LessonsQuery)

func WithFilter(filter string) LessonsOption {
	return func(q *models.LessonsQuery) {
		q.Filter = filter
	}
}

func WithSortOrder(order models.SortOrder) LessonsOption {
	return func(q *models.LessonsQuery) {
		q.SortOrder = order
	}
}

func WithPage(number, size int) LessonsOption {
	return func(q *models.LessonsQuery) {
		q.PageNumber = number
		q.PageSize = size
	}
}

// FindLessons returns one page of a course's lessons. Without options it
// asks for the first three lessons in ascending order, unfiltered.
func (s *CoursesService) FindLessons(ctx context.Context, courseID int, opts ...LessonsOption) ([]models.Lesson, error) {
	q := models.NewLessonsQuery(courseID)
	for _, opt := range opts {
		opt(&q)
	}
	return s.FindLessonsQuery(ctx, q)
}

func (s *CoursesService) FindLessonsQuery(ctx context.Context, q models.LessonsQuery) ([]models.Lesson, error) {
	body, err := s.do(ctx, http.MethodGet, lessonsPath, LessonsParams(q), nil)
	if err != nil {
		return nil, err
	}
	return unwrapPayload[models.Lesson](body)
}

// LessonsParams encodes q as the query string of the lessons endpoint.
// All five parameters are always present, even when empty.
func LessonsParams(q models.LessonsQuery) url.Values {
	v := url.Values{}
	v.Set("courseId", strconv.Itoa(q.CourseID))
	v.Set("filter", q.Filter)
	v.Set("sortOrder", string(q.SortOrder))
	v.Set("pageNumber", strconv.Itoa(q.PageNumber))
	v.Set("pageSize", strconv.Itoa(q.PageSize))
	return v
}

func coursePath(id int) string {
	return coursesPath + "/" + strconv.Itoa(id)
}

// unwrapPayload pulls the list out of a {"payload": [...]} envelope.
func unwrapPayload[T any](body []byte) ([]T, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedResponse)
	}
	payload := gjson.GetBytes(body, "payload")
	if !payload.Exists() {
		return nil, fmt.Errorf("%w: missing payload envelope", ErrMalformedResponse)
	}
	if !payload.IsArray() {
		return nil, fmt.Errorf("%w: payload is %s, not a list", ErrMalformedResponse, payload.Type)
	}

	items := make([]T, 0, len(payload.Array()))
	if err := json.Unmarshal([]byte(payload.Raw), &items); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", ErrMalformedResponse, err)
	}
	return items, nil
}
