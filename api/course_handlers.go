package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/course-catalog/internal/metrics"
)

// AddCourseRequest is the body of POST /courses. Numeric fields are pointers
// so that an omitted field is told apart from an explicit zero.
type AddCourseRequest struct {
	SchoolID        *int   `json:"school_id" binding:"required"`
	CategoryID      *int   `json:"category_id" binding:"required"`
	Title           string `json:"title"`
	Rating          *int   `json:"rating" binding:"required"`
	DurationMinutes *int   `json:"duration_minutes" binding:"required"`
}

// AddCourseHandler handles the request to add a single course.
// Request Body: AddCourseRequest
func (api *API) AddCourseHandler(c *gin.Context) {
	started := time.Now()

	var req AddCourseRequest
	if !BindJSON(c, &req) {
		api.metrics.ObserveQuery(metrics.KindAdd, metrics.OutcomeInvalid, started, 0)
		return
	}

	course, err := api.catalog.AddCourse(*req.SchoolID, *req.CategoryID, req.Title, *req.Rating, *req.DurationMinutes)
	if err != nil {
		api.recordQuery(metrics.KindAdd, 0, nil, started, 0, err)
		SendCatalogError(c, "add course", err)
		return
	}
	api.recordQuery(metrics.KindAdd, course.ID, nil, started, 1, nil)
	api.metrics.CoursesAddedTotal.Inc()

	view, err := api.catalog.Course(course.ID)
	if err != nil {
		SendInternalError(c, "resolve added course", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Course added successfully",
		"course":  view,
	})
}

// GetCourseHandler returns a single course with its school and category names.
func (api *API) GetCourseHandler(c *gin.Context) {
	courseID, result := ParseID(c.Param("courseId"), "courseId")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	view, err := api.catalog.Course(courseID)
	if err != nil {
		SendCatalogError(c, "get course", err)
		return
	}

	c.JSON(http.StatusOK, view)
}
