package routes

import (
	"course_catalog/db"
	"course_catalog/handlers"
	"course_catalog/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// JWTSecret, when set, protects course updates with bearer tokens.
	JWTSecret []byte
	// RateLimiter, when set, throttles the API per client IP.
	RateLimiter *middleware.RateLimiter
	Metrics     *middleware.Metrics
	Logger      *logrus.Logger
}

// NewRouter builds the engine with the middleware stack and all routes.
func NewRouter(store db.Store, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(opts.Logger))

	// Browser clients of the catalog are served from another origin.
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"Authorization",
	}
	config.AllowMethods = []string{
		"GET",
		"PUT",
	}
	r.Use(cors.New(config))

	if opts.Metrics != nil {
		r.Use(opts.Metrics.Handler())
		r.GET("/metrics", opts.Metrics.Exposition())
	}

	SetupRoutes(r, store, opts)
	return r
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, store db.Store, opts Options) {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	healthHandler := handlers.NewHealthHandler(store)
	courseHandler := handlers.NewCourseHandler(store, opts.Logger)
	lessonHandler := handlers.NewLessonHandler(store, opts.Logger)

	r.GET("/health", healthHandler.HealthCheck)

	api := r.Group("/api")
	if opts.RateLimiter != nil {
		api.Use(opts.RateLimiter.Handler())
	}
	{
		// Course routes
		api.GET("/courses", courseHandler.GetCourses)
		api.GET("/courses/:id", courseHandler.GetCourseByID)

		// Lesson routes
		api.GET("/lessons", lessonHandler.GetLessons)
	}

	// Writes
	protected := api.Group("/")
	if len(opts.JWTSecret) > 0 {
		protected.Use(middleware.AuthMiddleware(opts.JWTSecret, opts.Logger))
	}
	{
		protected.PUT("/courses/:id", courseHandler.SaveCourse)
	}
}
