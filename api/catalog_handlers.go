package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/course-catalog/internal/metrics"
	"github.com/gcbaptista/course-catalog/services"
)

// ListCategoriesHandler lists every category in ascending id order.
func (api *API) ListCategoriesHandler(c *gin.Context) {
	categories := api.catalog.Categories()
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"total":      len(categories),
	})
}

// ListSchoolsHandler lists every school in ascending id order.
func (api *API) ListSchoolsHandler(c *gin.Context) {
	schools := api.catalog.Schools()
	c.JSON(http.StatusOK, gin.H{
		"schools": schools,
		"total":   len(schools),
	})
}

// TopCoursesByCategoryHandler returns the n best-rated courses of a category.
// Query Parameters: n (optional, defaults to the configured top-N)
func (api *API) TopCoursesByCategoryHandler(c *gin.Context) {
	started := time.Now()

	categoryID, result := ParseID(c.Param("categoryId"), "categoryId")
	if result.HasErrors() {
		api.metrics.ObserveQuery(metrics.KindCategory, metrics.OutcomeInvalid, started, 0)
		SendValidationError(c, result)
		return
	}

	n, result := ParseCount(c.Query("n"), "n", api.settings.DefaultTopN)
	if result.HasErrors() {
		api.metrics.ObserveQuery(metrics.KindCategory, metrics.OutcomeInvalid, started, 0)
		SendValidationError(c, result)
		return
	}
	n = api.settings.CapLimit(n)

	courses, err := api.catalog.TopByCategory(categoryID, n)
	api.recordQuery(metrics.KindCategory, categoryID, nil, started, len(courses), err)
	if err != nil {
		SendCatalogError(c, "top courses by category", err)
		return
	}

	c.JSON(http.StatusOK, services.TopCoursesResult{
		Courses: courses,
		Total:   len(courses),
		N:       n,
	})
}

// TopCoursesBySchoolHandler returns the n best-rated courses offered by a school.
// Query Parameters: n (optional, defaults to the configured top-N)
func (api *API) TopCoursesBySchoolHandler(c *gin.Context) {
	started := time.Now()

	schoolID, result := ParseID(c.Param("schoolId"), "schoolId")
	if result.HasErrors() {
		api.metrics.ObserveQuery(metrics.KindSchool, metrics.OutcomeInvalid, started, 0)
		SendValidationError(c, result)
		return
	}

	n, result := ParseCount(c.Query("n"), "n", api.settings.DefaultTopN)
	if result.HasErrors() {
		api.metrics.ObserveQuery(metrics.KindSchool, metrics.OutcomeInvalid, started, 0)
		SendValidationError(c, result)
		return
	}
	n = api.settings.CapLimit(n)

	courses, err := api.catalog.TopBySchool(schoolID, n)
	api.recordQuery(metrics.KindSchool, schoolID, nil, started, len(courses), err)
	if err != nil {
		SendCatalogError(c, "top courses by school", err)
		return
	}

	c.JSON(http.StatusOK, services.TopCoursesResult{
		Courses: courses,
		Total:   len(courses),
		N:       n,
	})
}
