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

type CourseHandler struct {
	store db.Store
	log   *logrus.Logger
}

func NewCourseHandler(store db.Store, log *logrus.Logger) *CourseHandler {
	return &CourseHandler{store: store, log: log}
}

// GetCourses answers with the whole catalog inside the payload envelope.
func (h *CourseHandler) GetCourses(c *gin.Context) {
	courses, err := h.store.ListCourses(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("Error fetching courses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	c.JSON(http.StatusOK, models.NewPayload(courses))
}

func (h *CourseHandler) GetCourseByID(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	course, err := h.store.GetCourse(c.Request.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	if err != nil {
		h.log.WithError(err).WithField("course_id", id).Error("Error fetching course")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch course"})
		return
	}

	c.JSON(http.StatusOK, course)
}

// SaveCourse applies a partial update. Store failures are answered with a
// plain-text 500, which is what clients of this endpoint expect.
func (h *CourseHandler) SaveCourse(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	var changes models.CourseChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if changes.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No changes provided"})
		return
	}

	course, err := h.store.UpdateCourse(c.Request.Context(), id, changes)
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	if err != nil {
		h.log.WithError(err).WithField("course_id", id).Error("Error saving course")
		c.String(http.StatusInternalServerError, "Save course failed")
		return
	}

	h.log.WithFields(logrus.Fields{
		"course_id": id,
		"subject":   c.GetString("subject"),
	}).Info("course saved")
	c.JSON(http.StatusOK, course)
}

func courseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Course id must be an integer"})
		return 0, false
	}
	return id, true
}
