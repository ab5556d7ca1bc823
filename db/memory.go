package db

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"course_catalog/models"
)

// MemoryStore keeps the catalog in process memory. It is what the server
// runs on when no database is configured, and what the tests run against.
type MemoryStore struct {
	mu      sync.RWMutex
	courses map[int]models.Course
	lessons []models.Lesson
}

func NewMemoryStore(courses []models.Course, lessons []models.Lesson) *MemoryStore {
	s := &MemoryStore{
		courses: make(map[int]models.Course, len(courses)),
		lessons: make([]models.Lesson, len(lessons)),
	}
	for _, c := range courses {
		s.courses[c.ID] = c
	}
	copy(s.lessons, lessons)
	return s
}

// NewSeededMemoryStore returns a store holding the fixture catalog.
func NewSeededMemoryStore() *MemoryStore {
	return NewMemoryStore(SeedCourses(), SeedLessons())
}

func (s *MemoryStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetCourse(ctx context.Context, id int) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[id]
	if !ok {
		return models.Course{}, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	return c, nil
}

func (s *MemoryStore) UpdateCourse(ctx context.Context, id int, changes models.CourseChanges) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return models.Course{}, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	c = c.Apply(changes)
	s.courses[id] = c
	return c, nil
}

func (s *MemoryStore) FindLessons(ctx context.Context, q models.LessonsQuery) ([]models.Lesson, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	var matched []models.Lesson
	for _, l := range s.lessons {
		if l.CourseID == q.CourseID && q.Matches(l) {
			matched = append(matched, l)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if q.SortOrder == models.SortDesc {
			return matched[i].SeqNo > matched[j].SeqNo
		}
		return matched[i].SeqNo < matched[j].SeqNo
	})

	start := q.Offset()
	if start >= len(matched) {
		return []models.Lesson{}, nil
	}
	end := start + q.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
