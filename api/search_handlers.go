package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gcbaptista/course-catalog/internal/metrics"
	"github.com/gcbaptista/course-catalog/internal/tokenizer"
	"github.com/gcbaptista/course-catalog/services"
)

// SearchRequest defines the structure for keyword search bodies.
type SearchRequest struct {
	Keywords []string `json:"keywords"`
	Limit    *int     `json:"limit,omitempty" binding:"omitempty,min=0"`
}

// SearchHandler handles keyword searches posted as JSON.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	started := time.Now()

	var req SearchRequest
	if !BindJSON(c, &req) {
		api.metrics.ObserveQuery(metrics.KindSearch, metrics.OutcomeInvalid, started, 0)
		return
	}

	limit := api.settings.DefaultSearchLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	api.search(c, started, services.SearchQuery{Keywords: req.Keywords, Limit: limit})
}

// SearchQueryHandler handles keyword searches passed as query parameters.
// Query Parameters: q (whitespace separated keywords), limit (optional)
func (api *API) SearchQueryHandler(c *gin.Context) {
	started := time.Now()

	limit, result := ParseCount(c.Query("limit"), "limit", api.settings.DefaultSearchLimit)
	if result.HasErrors() {
		api.metrics.ObserveQuery(metrics.KindSearch, metrics.OutcomeInvalid, started, 0)
		SendValidationError(c, result)
		return
	}

	api.search(c, started, services.SearchQuery{Keywords: tokenizer.Keywords(c.Query("q")), Limit: limit})
}

func (api *API) search(c *gin.Context, started time.Time, query services.SearchQuery) {
	keywords := tokenizer.Normalize(query.Keywords)
	limit := api.settings.CapLimit(query.Limit)

	hits := api.catalog.Search(keywords, limit)
	api.recordQuery(metrics.KindSearch, 0, keywords, started, len(hits), nil)

	took := time.Since(started)
	if took > 100*time.Millisecond {
		log.Printf("Warning: slow search for %v took %v (%d hits)", keywords, took, len(hits))
	}

	c.JSON(http.StatusOK, services.SearchResult{
		Hits:     hits,
		Keywords: keywords,
		Total:    len(hits),
		Limit:    limit,
		Took:     took.Microseconds(),
		QueryId:  uuid.NewString(),
	})
}
