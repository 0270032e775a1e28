package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/course-catalog/model"
)

const (
	maxEventsToKeep     = 10000 // Keep last 10k events for performance
	popularKeywordLimit = 5
)

// Event kinds
const (
	KindCategory = "category"
	KindSchool   = "school"
	KindSearch   = "search"
)

// StatsProvider exposes the catalog contents the dashboard reports on.
type StatsProvider interface {
	Stats() model.CatalogStats
}

// Service implements query tracking and reporting. Events live in memory
// only and are lost on restart.
type Service struct {
	mutex   sync.RWMutex
	events  []model.QueryEvent
	catalog StatsProvider
	now     func() time.Time
}

// NewService creates a new analytics service
func NewService(catalog StatsProvider) *Service {
	return &Service{
		events:  make([]model.QueryEvent, 0),
		catalog: catalog,
		now:     time.Now,
	}
}

// TrackQueryEvent records a new query event
func (s *Service) TrackQueryEvent(event model.QueryEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	event.Timestamp = s.now()
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// EventCount returns the number of retained events
func (s *Service) EventCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}

// GetDashboardData returns analytics over the events recorded since start.
func (s *Service) GetDashboardData() model.AnalyticsDashboard {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stats := s.catalog.Stats()

	return model.AnalyticsDashboard{
		TotalQueries:             len(s.events),
		QueriesByKind:            s.countByKind(),
		ZeroResultSearches:       s.countZeroResultSearches(),
		AvgResponseTimeUsec:      s.calculateAvgResponseTime(),
		TotalCourses:             stats.Courses,
		PopularKeywords:          s.getPopularKeywords(),
		CategoryUsage:            s.getCategoryUsage(stats),
		ResponseTimeDistribution: s.getResponseTimeDistribution(),
	}
}

func (s *Service) countByKind() map[string]int {
	counts := map[string]int{KindCategory: 0, KindSchool: 0, KindSearch: 0}
	for _, event := range s.events {
		counts[event.Kind]++
	}
	return counts
}

func (s *Service) countZeroResultSearches() int {
	count := 0
	for _, event := range s.events {
		if event.Kind == KindSearch && event.ResultCount == 0 {
			count++
		}
	}
	return count
}

// calculateAvgResponseTime calculates average response time in microseconds
func (s *Service) calculateAvgResponseTime() int64 {
	if len(s.events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range s.events {
		total += event.ResponseTime
	}
	return (total / time.Duration(len(s.events))).Microseconds()
}

// getPopularKeywords returns the most searched keywords, most frequent first
func (s *Service) getPopularKeywords() []model.PopularKeyword {
	keywordCounts := make(map[string]int)
	for _, event := range s.events {
		if event.Kind != KindSearch {
			continue
		}
		for _, kw := range event.Keywords {
			keywordCounts[kw]++
		}
	}

	popular := make([]model.PopularKeyword, 0, len(keywordCounts))
	for kw, count := range keywordCounts {
		popular = append(popular, model.PopularKeyword{Keyword: kw, SearchCount: count})
	}

	// Sort by count descending, keyword ascending for stable output
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Keyword < popular[j].Keyword
	})

	if len(popular) > popularKeywordLimit {
		popular = popular[:popularKeywordLimit]
	}
	return popular
}

func (s *Service) getCategoryUsage(stats model.CatalogStats) []model.CategoryUsage {
	queryCounts := make(map[int]int)
	for _, event := range s.events {
		if event.Kind == KindCategory {
			queryCounts[event.Target]++
		}
	}

	usage := make([]model.CategoryUsage, 0, len(stats.PerCategory))
	for _, category := range stats.PerCategory {
		usage = append(usage, model.CategoryUsage{
			CategoryID:   category.CategoryID,
			CategoryName: category.CategoryName,
			CourseCount:  category.CourseCount,
			QueryCount:   queryCounts[category.CategoryID],
		})
	}
	return usage
}

// getResponseTimeDistribution returns response time distribution
func (s *Service) getResponseTimeDistribution() model.ResponseTimeDistribution {
	dist := model.ResponseTimeDistribution{}
	total := len(s.events)

	if total == 0 {
		return dist
	}

	for _, event := range s.events {
		switch {
		case event.ResponseTime < time.Millisecond:
			dist.BucketUnder1ms++
		case event.ResponseTime < 10*time.Millisecond:
			dist.Bucket1To10ms++
		default:
			dist.Bucket10msPlus++
		}
	}

	// Calculate percentages
	dist.PercentUnder1ms = float64(dist.BucketUnder1ms) / float64(total) * 100
	dist.Percent1To10ms = float64(dist.Bucket1To10ms) / float64(total) * 100
	dist.Percent10msPlus = float64(dist.Bucket10msPlus) / float64(total) * 100

	return dist
}
