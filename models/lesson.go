package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Lesson struct {
	ID          int    `json:"id" db:"id"`
	Description string `json:"description" db:"description"`
	Duration    string `json:"duration" db:"duration"`
	SeqNo       int    `json:"seqNo" db:"seq_no"`
	CourseID    int    `json:"courseId" db:"course_id"`
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
)

var ErrInvalidQuery = errors.New("invalid lessons query")

// LessonsQuery selects one page of a course's lessons, ordered by seqNo.
type LessonsQuery struct {
	CourseID   int
	Filter     string
	SortOrder  SortOrder
	PageNumber int
	PageSize   int
}

// NewLessonsQuery returns a query for courseID with the default paging.
func NewLessonsQuery(courseID int) LessonsQuery {
	return LessonsQuery{
		CourseID:   courseID,
		Filter:     "",
		SortOrder:  SortAsc,
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
	}
}

func (q LessonsQuery) Validate() error {
	if q.SortOrder != SortAsc && q.SortOrder != SortDesc {
		return fmt.Errorf("%w: sortOrder must be asc or desc, got %q", ErrInvalidQuery, q.SortOrder)
	}
	if q.PageNumber < 0 {
		return fmt.Errorf("%w: pageNumber must not be negative", ErrInvalidQuery)
	}
	if q.PageSize <= 0 {
		return fmt.Errorf("%w: pageSize must be positive", ErrInvalidQuery)
	}
	if q.PageNumber > math.MaxInt/q.PageSize {
		return fmt.Errorf("%w: pageNumber %d is out of range", ErrInvalidQuery, q.PageNumber)
	}
	return nil
}

// Offset is the index of the first lesson on the requested page.
func (q LessonsQuery) Offset() int {
	return q.PageNumber * q.PageSize
}

// Matches reports whether the lesson passes the text filter. Matching is
// case-insensitive on the description.
func (q LessonsQuery) Matches(l Lesson) bool {
	if q.Filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Description), strings.ToLower(q.Filter))
}
