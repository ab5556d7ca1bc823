package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"course_catalog/config"
	"course_catalog/db"
	"course_catalog/middleware"
	"course_catalog/models"
	"course_catalog/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		LogLevel:   "warn",
		LogFormat:  "text",
		APIBaseURL: baseURL,
		JWTSecret:  "cli-secret",
	}
}

func catalog(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	srv := httptest.NewServer(routes.NewRouter(db.NewSeededMemoryStore(), routes.Options{Logger: log}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), cfg, args, &stdout, &stderr)
	return stdout.String(), err
}

func TestCoursesCommand(t *testing.T) {
	srv := catalog(t)

	out, err := runCLI(t, testConfig(srv.URL), "courses")
	require.NoError(t, err)

	var courses []models.Course
	require.NoError(t, json.Unmarshal([]byte(out), &courses))
	assert.Len(t, courses, 12)
}

func TestSaveAndShowCourse(t *testing.T) {
	srv := catalog(t)
	cfg := testConfig(srv.URL)

	_, err := runCLI(t, cfg, "save", "12", "Changed Course Description")
	require.NoError(t, err)

	out, err := runCLI(t, cfg, "course", "12")
	require.NoError(t, err)
	var course models.Course
	require.NoError(t, json.Unmarshal([]byte(out), &course))
	assert.Equal(t, "Changed Course Description", course.Titles.Description)
}

func TestLessonsCommand(t *testing.T) {
	srv := catalog(t)

	out, err := runCLI(t, testConfig(srv.URL), "lessons", "12", "--sort=desc", "--size=2")
	require.NoError(t, err)

	var lessons []models.Lesson
	require.NoError(t, json.Unmarshal([]byte(out), &lessons))
	require.Len(t, lessons, 2)
	assert.Greater(t, lessons[0].SeqNo, lessons[1].SeqNo)
}

func TestCalculatorCommands(t *testing.T) {
	cfg := testConfig("http://unused.invalid")

	out, err := runCLI(t, cfg, "add", "2", "2")
	require.NoError(t, err)
	assert.Equal(t, "4", strings.TrimSpace(out))

	out, err = runCLI(t, cfg, "sub", "2", "2")
	require.NoError(t, err)
	assert.Equal(t, "0", strings.TrimSpace(out))
}

func TestTokenCommand(t *testing.T) {
	cfg := testConfig("http://unused.invalid")

	out, err := runCLI(t, cfg, "token", "editor@example.com")
	require.NoError(t, err)

	claims, err := middleware.ParseToken([]byte(cfg.JWTSecret), strings.TrimSpace(out))
	require.NoError(t, err)
	assert.True(t, claims.Editor)
	assert.Equal(t, "editor@example.com", claims.Subject)

	cfg.JWTSecret = ""
	_, err = runCLI(t, cfg, "token", "x")
	assert.Error(t, err)
}

func TestUnknownCourseFails(t *testing.T) {
	srv := catalog(t)
	_, err := runCLI(t, testConfig(srv.URL), "course", "999")
	assert.Error(t, err)
}

func TestBadArguments(t *testing.T) {
	_, err := runCLI(t, testConfig("http://unused.invalid"), "lessons", "12", "--sort=sideways")
	assert.Error(t, err)
}

func TestHelpExitsCleanly(t *testing.T) {
	out, err := runCLI(t, testConfig("http://127.0.0.1:1"), "--help")
	require.NoError(t, err)
	assert.Empty(t, out)
}
