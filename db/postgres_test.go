package db

import (
	"context"
	"errors"
	"os"
	"testing"

	"course_catalog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var courseCols = []string{"id", "seq_no", "url", "description", "long_description", "icon_url", "course_list_icon", "lessons_count", "category", "promo"}

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewPostgresStore(sqlx.NewDb(mockDB, "postgres")), mock
}

func TestPostgresListCourses(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM courses ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(courseCols).
			AddRow(1, 0, "angular-core-course", "Angular Core Deep Dive", "", "", "", 10, "ADVANCED", false).
			AddRow(12, 11, "angular-testing-course", "Angular Testing Course", "long", "", "", 12, "BEGINNER", true))

	courses, err := store.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, 12, courses[1].ID)
	assert.Equal(t, "Angular Testing Course", courses[1].Titles.Description)
	assert.True(t, courses[1].Promo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetCourseNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM courses WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(courseCols))

	_, err := store.GetCourse(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateCourse(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM courses WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(courseCols).
			AddRow(12, 11, "angular-testing-course", "Angular Testing Course", "long", "", "", 12, "BEGINNER", true))
	mock.ExpectExec(`UPDATE courses`).
		WithArgs(int64(12), int64(11), "angular-testing-course", "Changed Course Description", "long", "", "", int64(12), "BEGINNER", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	course, err := store.UpdateCourse(context.Background(), 12, models.DescriptionChange("Changed Course Description"))
	require.NoError(t, err)
	assert.Equal(t, 12, course.ID)
	assert.Equal(t, "Changed Course Description", course.Titles.Description)
	assert.Equal(t, "long", course.Titles.LongDescription)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateCourseRollsBackOnFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM courses WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(courseCols).
			AddRow(12, 11, "angular-testing-course", "Angular Testing Course", "long", "", "", 12, "BEGINNER", true))
	mock.ExpectExec(`UPDATE courses`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := store.UpdateCourse(context.Background(), 12, models.DescriptionChange("x"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateMissingCourse(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM courses WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(courseCols))
	mock.ExpectRollback()

	_, err := store.UpdateCourse(context.Background(), 7, models.DescriptionChange("x"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindLessons(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT id, course_id, seq_no, description, duration FROM lessons (.+) ORDER BY seq_no DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(int64(12), "jasmine", int64(3), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "seq_no", "description", "duration"}).
			AddRow(51, 12, 4, "Jasmine Spies - Mocking Dependencies", "3:33"))

	q := models.NewLessonsQuery(12)
	q.Filter = "jasmine"
	q.SortOrder = models.SortDesc
	q.PageNumber = 1
	lessons, err := store.FindLessons(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, 12, lessons[0].CourseID)
	assert.Equal(t, 4, lessons[0].SeqNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindLessonsRejectsBadQuery(t *testing.T) {
	store, mock := newMockStore(t)

	q := models.NewLessonsQuery(12)
	q.SortOrder = "random()"
	_, err := store.FindLessons(context.Background(), q)
	assert.ErrorIs(t, err, models.ErrInvalidQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitSchema(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS courses`).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, InitSchema(mockDB))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedData(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectBegin()
	for range SeedCourses() {
		mock.ExpectExec(`INSERT INTO courses`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for range SeedLessons() {
		mock.ExpectExec(`INSERT INTO lessons`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, SeedData(mockDB))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedDataRollsBack(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO courses`).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	assert.Error(t, SeedData(mockDB))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	conn, err := sqlx.Open("postgres", dsn)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitSchema(conn.DB))
	require.NoError(t, SeedData(conn.DB))

	store := NewPostgresStore(conn)
	ctx := context.Background()

	course, err := store.GetCourse(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, course.ID)

	lessons, err := store.FindLessons(ctx, models.NewLessonsQuery(12))
	require.NoError(t, err)
	assert.Len(t, lessons, 3)
}

func TestConfigDSNEscapesCredentials(t *testing.T) {
	cfg := Config{Host: "db", Port: 5432, User: "app user", Password: "p@ss/w#rd:1", DBName: "courses"}

	conn, err := pq.ParseURL(cfg.DSN())
	require.NoError(t, err)
	assert.Contains(t, conn, "user='app user'")
	assert.Contains(t, conn, `password='p@ss/w#rd:1'`)
	assert.Contains(t, conn, "host='db'")
	assert.Contains(t, conn, "port='5432'")
	assert.Contains(t, conn, "dbname='courses'")
	assert.Contains(t, conn, "sslmode='disable'")
}
