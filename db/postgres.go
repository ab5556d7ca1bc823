package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"course_catalog/models"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// DSN renders the lib/pq connection URL for cfg.
func (cfg Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Initialize creates a new database connection and returns it
func Initialize(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}

// courseRow is the flat column layout of the courses table.
type courseRow struct {
	ID              int    `db:"id"`
	SeqNo           int    `db:"seq_no"`
	URL             string `db:"url"`
	Description     string `db:"description"`
	LongDescription string `db:"long_description"`
	IconURL         string `db:"icon_url"`
	CourseListIcon  string `db:"course_list_icon"`
	LessonsCount    int    `db:"lessons_count"`
	Category        string `db:"category"`
	Promo           bool   `db:"promo"`
}

func (r courseRow) course() models.Course {
	return models.Course{
		ID:    r.ID,
		SeqNo: r.SeqNo,
		URL:   r.URL,
		Titles: models.Titles{
			Description:     r.Description,
			LongDescription: r.LongDescription,
		},
		IconURL:        r.IconURL,
		CourseListIcon: r.CourseListIcon,
		LessonsCount:   r.LessonsCount,
		Category:       r.Category,
		Promo:          r.Promo,
	}
}

const courseColumns = `id, seq_no, url, description, long_description, icon_url, course_list_icon, lessons_count, category, promo`

// PostgresStore is the Store backed by the courses and lessons tables.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	var rows []courseRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT `+courseColumns+` FROM courses ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courses := make([]models.Course, 0, len(rows))
	for _, r := range rows {
		courses = append(courses, r.course())
	}
	return courses, nil
}

func (s *PostgresStore) GetCourse(ctx context.Context, id int) (models.Course, error) {
	var row courseRow
	err := s.db.GetContext(ctx, &row, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Course{}, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Course{}, fmt.Errorf("get course %d: %w", id, err)
	}
	return row.course(), nil
}

func (s *PostgresStore) UpdateCourse(ctx context.Context, id int, changes models.CourseChanges) (models.Course, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Course{}, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	var row courseRow
	err = tx.GetContext(ctx, &row, `SELECT `+courseColumns+` FROM courses WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Course{}, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Course{}, fmt.Errorf("lock course %d: %w", id, err)
	}

	updated := row.course().Apply(changes)
	_, err = tx.ExecContext(ctx, `
		UPDATE courses
		SET seq_no = $2, url = $3, description = $4, long_description = $5, icon_url = $6,
		    course_list_icon = $7, lessons_count = $8, category = $9, promo = $10
		WHERE id = $1`,
		updated.ID, updated.SeqNo, updated.URL, updated.Titles.Description, updated.Titles.LongDescription,
		updated.IconURL, updated.CourseListIcon, updated.LessonsCount, updated.Category, updated.Promo)
	if err != nil {
		return models.Course{}, fmt.Errorf("update course %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return models.Course{}, fmt.Errorf("error committing transaction: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) FindLessons(ctx context.Context, q models.LessonsQuery) ([]models.Lesson, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	// Validate has restricted the order to one of two literals.
	order := "ASC"
	if q.SortOrder == models.SortDesc {
		order = "DESC"
	}

	lessons := []models.Lesson{}
	err := s.db.SelectContext(ctx, &lessons, `
		SELECT id, course_id, seq_no, description, duration
		FROM lessons
		WHERE course_id = $1
		AND ($2 = '' OR description ILIKE '%' || $2 || '%')
		ORDER BY seq_no `+order+`
		LIMIT $3 OFFSET $4`,
		q.CourseID, q.Filter, q.PageSize, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("find lessons for course %d: %w", q.CourseID, err)
	}
	return lessons, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
