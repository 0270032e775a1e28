package search

import (
	"strings"

	"github.com/gcbaptista/course-catalog/index"
	"github.com/gcbaptista/course-catalog/internal/ranking"
	"github.com/gcbaptista/course-catalog/internal/tokenizer"
	"github.com/gcbaptista/course-catalog/model"
)

// DefaultLimit is the number of results returned when the caller does not ask
// for a specific limit.
const DefaultLimit = 50

// Match is a course together with the number of query keywords found in its title.
type Match struct {
	Course     *model.Course
	MatchCount int
}

// rankMatches orders matches by match count descending, then by the catalog
// course order (rating descending, id ascending).
func rankMatches(a, b Match) bool {
	if a.MatchCount != b.MatchCount {
		return a.MatchCount > b.MatchCount
	}
	return index.Less(a.Course, b.Course)
}

// CountMatches returns how many keywords occur in title as exact,
// case-sensitive substrings. The title itself is not tokenized.
func CountMatches(title string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			count++
		}
	}
	return count
}

// Service ranks catalog courses against keyword queries.
type Service struct {
	courses *index.CategoryIndex
}

// NewService creates a keyword search service over the category index.
func NewService(courses *index.CategoryIndex) *Service {
	return &Service{courses: courses}
}

// Search scores every course by the number of distinct keywords contained in
// its title and returns up to limit courses with at least one match.
// An empty keyword list or a non-positive limit yields an empty result.
func (s *Service) Search(keywords []string, limit int) []Match {
	keywords = tokenizer.Normalize(keywords)
	if len(keywords) == 0 || limit <= 0 {
		return []Match{}
	}

	selector := ranking.NewSelector(limit, rankMatches)
	s.courses.Each(func(course *model.Course) {
		if count := CountMatches(course.Title, keywords); count > 0 {
			selector.Offer(Match{Course: course, MatchCount: count})
		}
	})
	return selector.Results()
}
