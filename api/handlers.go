package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/course-catalog/config"
	"github.com/gcbaptista/course-catalog/internal/analytics"
	internalErrors "github.com/gcbaptista/course-catalog/internal/errors"
	"github.com/gcbaptista/course-catalog/internal/metrics"
	"github.com/gcbaptista/course-catalog/model"
	"github.com/gcbaptista/course-catalog/services"
)

// API holds dependencies for API handlers, primarily the course catalog.
type API struct {
	catalog   services.CourseCatalog
	settings  config.CatalogSettings
	analytics *analytics.Service
	metrics   *metrics.Metrics
}

// NewAPI creates a new API handler structure.
func NewAPI(catalog services.CourseCatalog, settings config.CatalogSettings) *API {
	return &API{
		catalog:   catalog,
		settings:  settings,
		analytics: analytics.NewService(catalog),
		metrics:   metrics.New(catalog.Size),
	}
}

// SetupRoutes installs the middleware chain and defines all the API routes
// for the course catalog.
func SetupRoutes(router *gin.Engine, catalog services.CourseCatalog, settings config.CatalogSettings) *API {
	apiHandler := NewAPI(catalog, settings)

	router.Use(
		RequestIDMiddleware(),
		CORSMiddleware(),
		RequestSizeLimitMiddleware(settings.MaxRequestBytes),
		MetricsMiddleware(apiHandler.metrics),
	)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Observability routes
	router.GET("/stats", apiHandler.GetStatsHandler)
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)
	if settings.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(apiHandler.metrics.Handler()))
	}

	// Category routes
	categoryRoutes := router.Group("/categories")
	{
		categoryRoutes.GET("", apiHandler.ListCategoriesHandler)                           // List all categories
		categoryRoutes.GET("/:categoryId/courses", apiHandler.TopCoursesByCategoryHandler) // Top-N courses in a category
	}

	// School routes
	schoolRoutes := router.Group("/schools")
	{
		schoolRoutes.GET("", apiHandler.ListSchoolsHandler)                          // List all schools
		schoolRoutes.GET("/:schoolId/courses", apiHandler.TopCoursesBySchoolHandler) // Top-N courses offered by a school
	}

	// Course routes
	courseRoutes := router.Group("/courses")
	{
		courseRoutes.POST("", apiHandler.AddCourseHandler)          // Add a course
		courseRoutes.GET("/:courseId", apiHandler.GetCourseHandler) // Get a course by id
	}

	// Keyword search routes
	router.GET("/search", apiHandler.SearchQueryHandler)
	router.POST("/search", apiHandler.SearchHandler)

	return apiHandler
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "course-catalog",
		"courses":   api.catalog.Size(),
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

// GetStatsHandler returns catalog-wide counts.
func (api *API) GetStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.catalog.Stats())
}

// GetAnalyticsHandler handles the request to get analytics data
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.analytics.GetDashboardData())
}

// recordQuery feeds one catalog operation into the metrics and, for
// successful reads, the analytics event log.
func (api *API) recordQuery(kind string, target int, keywords []string, started time.Time, results int, err error) {
	api.metrics.ObserveQuery(kind, queryOutcome(results, err), started, results)

	if err != nil || kind == metrics.KindAdd {
		return
	}
	api.analytics.TrackQueryEvent(model.QueryEvent{
		Kind:         kind,
		Target:       target,
		Keywords:     keywords,
		ResponseTime: time.Since(started),
		ResultCount:  results,
	})
}

func queryOutcome(results int, err error) string {
	switch {
	case err == nil && results == 0:
		return metrics.OutcomeEmpty
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, internalErrors.ErrCategoryNotFound),
		errors.Is(err, internalErrors.ErrSchoolNotFound),
		errors.Is(err, internalErrors.ErrCourseNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, internalErrors.ErrInvalidInput),
		errors.Is(err, internalErrors.ErrInvalidReference):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
