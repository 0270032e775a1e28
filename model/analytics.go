package model

import "time"

// QueryEvent represents a single catalog query for analytics tracking
type QueryEvent struct {
	Kind         string        `json:"kind"`   // "category", "school", "search"
	Target       int           `json:"target"` // Category or school id; unused for searches
	Keywords     []string      `json:"keywords,omitempty"`
	ResponseTime time.Duration `json:"response_time"`
	ResultCount  int           `json:"result_count"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularKeyword represents aggregated data for a frequently searched keyword
type PopularKeyword struct {
	Keyword     string `json:"keyword"`
	SearchCount int    `json:"search_count"`
}

// CategoryUsage represents query statistics for a category
type CategoryUsage struct {
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
	CourseCount  int    `json:"course_count"`
	QueryCount   int    `json:"query_count"`
}

// ResponseTimeDistribution represents response time distribution buckets
type ResponseTimeDistribution struct {
	BucketUnder1ms  int     `json:"bucket_under_1ms"`
	Bucket1To10ms   int     `json:"bucket_1_10ms"`
	Bucket10msPlus  int     `json:"bucket_10ms_plus"`
	PercentUnder1ms float64 `json:"percentage_under_1ms"`
	Percent1To10ms  float64 `json:"percentage_1_10ms"`
	Percent10msPlus float64 `json:"percentage_10ms_plus"`
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	// Summary metrics
	TotalQueries        int            `json:"total_queries"`
	QueriesByKind       map[string]int `json:"queries_by_kind"`
	ZeroResultSearches  int            `json:"zero_result_searches"`
	AvgResponseTimeUsec int64          `json:"avg_response_time_usec"`
	TotalCourses        int            `json:"total_courses"`

	// Detailed analytics
	PopularKeywords          []PopularKeyword         `json:"popular_keywords"`
	CategoryUsage            []CategoryUsage          `json:"category_usage"`
	ResponseTimeDistribution ResponseTimeDistribution `json:"response_time_distribution"`
}
