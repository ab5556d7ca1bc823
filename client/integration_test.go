package client

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"course_catalog/db"
	"course_catalog/middleware"
	"course_catalog/models"
	"course_catalog/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer(t *testing.T, secret []byte) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	router := routes.NewRouter(db.NewSeededMemoryStore(), routes.Options{
		JWTSecret: secret,
		Logger:    log,
		Metrics:   middleware.NewMetrics(),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestAgainstCatalogServer(t *testing.T) {
	srv := newCatalogServer(t, nil)
	svc, err := NewCoursesService(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	ctx := context.Background()

	courses, err := svc.FindAllCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 12)

	course, err := svc.FindCourseByID(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, "Angular Testing Course", course.Titles.Description)

	_, err = svc.FindCourseByID(ctx, 999)
	assert.True(t, IsNotFound(err))

	saved, err := svc.SaveCourse(ctx, 12, models.DescriptionChange("Changed Course Description"))
	require.NoError(t, err)
	assert.Equal(t, 12, saved.ID)
	assert.Equal(t, "Changed Course Description", saved.Titles.Description)
	assert.Equal(t, course.Titles.LongDescription, saved.Titles.LongDescription)

	lessons, err := svc.FindLessons(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, db.FindLessonsForCourse(12)[:3], lessons)

	lessons, err = svc.FindLessons(ctx, 12, WithSortOrder(models.SortDesc), WithPage(0, 2))
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Greater(t, lessons[0].SeqNo, lessons[1].SeqNo)
}

func TestAgainstProtectedCatalogServer(t *testing.T) {
	secret := []byte("test-secret")
	srv := newCatalogServer(t, secret)
	ctx := context.Background()

	anonymous, err := NewCoursesService(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = anonymous.FindAllCourses(ctx)
	require.NoError(t, err, "reads stay public")

	_, err = anonymous.SaveCourse(ctx, 12, models.DescriptionChange("x"))
	assert.Equal(t, 401, StatusCode(err))

	token, err := middleware.NewTokenService(secret, 0).GenerateToken("editor@example.com", true)
	require.NoError(t, err)
	editor, err := NewCoursesService(Config{BaseURL: srv.URL, Token: token})
	require.NoError(t, err)

	saved, err := editor.SaveCourse(ctx, 12, models.DescriptionChange("Changed Course Description"))
	require.NoError(t, err)
	assert.Equal(t, "Changed Course Description", saved.Titles.Description)
}
