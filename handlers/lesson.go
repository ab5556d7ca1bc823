package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"course_catalog/db"
	"course_catalog/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type LessonHandler struct {
	store db.Store
	log   *logrus.Logger
}

func NewLessonHandler(store db.Store, log *logrus.Logger) *LessonHandler {
	return &LessonHandler{store: store, log: log}
}

// GetLessons answers one page of a course's lessons. courseId is required;
// the other parameters fall back to filter="", sortOrder=asc,
// pageNumber=0 and pageSize=3.
func (h *LessonHandler) GetLessons(c *gin.Context) {
	q, err := parseLessonsQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lessons, err := h.store.FindLessons(c.Request.Context(), q)
	if errors.Is(err, models.ErrInvalidQuery) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.log.WithError(err).WithField("course_id", q.CourseID).Error("Error fetching lessons")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lessons"})
		return
	}

	c.JSON(http.StatusOK, models.NewPayload(lessons))
}

func parseLessonsQuery(c *gin.Context) (models.LessonsQuery, error) {
	raw := c.Query("courseId")
	if raw == "" {
		return models.LessonsQuery{}, errors.New("courseId is required")
	}
	courseID, err := strconv.Atoi(raw)
	if err != nil {
		return models.LessonsQuery{}, errors.New("courseId must be an integer")
	}

	q := models.NewLessonsQuery(courseID)
	q.Filter = c.Query("filter")
	q.SortOrder = models.SortOrder(c.DefaultQuery("sortOrder", string(models.SortAsc)))

	if q.PageNumber, err = intQuery(c, "pageNumber", models.DefaultPageNumber); err != nil {
		return models.LessonsQuery{}, err
	}
	if q.PageSize, err = intQuery(c, "pageSize", models.DefaultPageSize); err != nil {
		return models.LessonsQuery{}, err
	}
	return q, q.Validate()
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	return n, nil
}
