package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/course-catalog/index"
	"github.com/gcbaptista/course-catalog/model"
)

func newTestService(courses ...*model.Course) *Service {
	ci := index.NewCategoryIndex()
	for _, c := range courses {
		ci.Insert(c)
	}
	return NewService(ci)
}

func matchIDs(matches []Match) []int {
	result := make([]int, len(matches))
	for i, m := range matches {
		result[i] = m.Course.ID
	}
	return result
}

func TestCountMatches(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		keywords []string
		want     int
	}{
		{"no keywords", "Go Basics", nil, 0},
		{"single match", "Go Basics", []string{"Go"}, 1},
		{"substring inside word", "Golang Basics", []string{"Go"}, 1},
		{"case sensitive", "go basics", []string{"Go"}, 0},
		{"two of three", "Go Basics", []string{"Go", "Basics", "Rust"}, 2},
		{"no match", "Go Basics", []string{"x"}, 0},
		{"multibyte", "数据结构与算法", []string{"数据", "算法", "Go"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountMatches(tt.title, tt.keywords))
		})
	}
}

func TestSearch_Scenario(t *testing.T) {
	s := newTestService(
		&model.Course{ID: 1, SchoolID: 1, CategoryID: 1, Title: "Go Basics", Rating: 80, DurationMinutes: 60},
		&model.Course{ID: 2, SchoolID: 1, CategoryID: 1, Title: "Go Advanced", Rating: 95, DurationMinutes: 90},
	)

	matches := s.Search([]string{"Go"}, 10)
	require.Len(t, matches, 2)
	assert.Equal(t, []int{2, 1}, matchIDs(matches))
	assert.Equal(t, 1, matches[0].MatchCount)
	assert.Equal(t, 1, matches[1].MatchCount)
}

func TestSearch_MatchCountBeatsRating(t *testing.T) {
	s := newTestService(
		&model.Course{ID: 1, CategoryID: 1, Title: "Go for Data Science", Rating: 10},
		&model.Course{ID: 2, CategoryID: 2, Title: "Data Engineering", Rating: 100},
		&model.Course{ID: 3, CategoryID: 1, Title: "Cooking", Rating: 100},
	)

	matches := s.Search([]string{"Go", "Data", "Rust"}, 10)
	assert.Equal(t, []int{1, 2}, matchIDs(matches))
	assert.Equal(t, 2, matches[0].MatchCount)
	assert.Equal(t, 1, matches[1].MatchCount)
}

func TestSearch_TieBreaks(t *testing.T) {
	s := newTestService(
		&model.Course{ID: 5, CategoryID: 1, Title: "Go A", Rating: 70},
		&model.Course{ID: 3, CategoryID: 2, Title: "Go B", Rating: 70},
		&model.Course{ID: 4, CategoryID: 1, Title: "Go C", Rating: 90},
	)

	assert.Equal(t, []int{4, 3, 5}, matchIDs(s.Search([]string{"Go"}, 10)))
}

func TestSearch_Limit(t *testing.T) {
	var courses []*model.Course
	for i := 0; i < 120; i++ {
		courses = append(courses, &model.Course{ID: i, CategoryID: i % 4, Title: "Intro to Go", Rating: i % 101})
	}
	s := newTestService(courses...)

	matches := s.Search([]string{"Go"}, DefaultLimit)
	require.Len(t, matches, DefaultLimit)
	for i := 1; i < len(matches); i++ {
		assert.True(t, index.Less(matches[i-1].Course, matches[i].Course))
	}

	assert.Len(t, s.Search([]string{"Go"}, 3), 3)
	assert.Empty(t, s.Search([]string{"Go"}, 0))
}

func TestSearch_EmptyResults(t *testing.T) {
	s := newTestService(&model.Course{ID: 1, CategoryID: 1, Title: "Go Basics", Rating: 80})

	assert.Empty(t, s.Search(nil, 10))
	assert.Empty(t, s.Search([]string{}, 10))
	assert.Empty(t, s.Search([]string{"", "  "}, 10), "blank keywords are ignored")
	assert.Empty(t, s.Search([]string{"x"}, 10))
	assert.NotNil(t, s.Search([]string{"x"}, 10))
}

func TestSearch_DuplicateKeywordsCountOnce(t *testing.T) {
	s := newTestService(
		&model.Course{ID: 1, CategoryID: 1, Title: "Go Basics", Rating: 10},
		&model.Course{ID: 2, CategoryID: 1, Title: "Basics of Cooking", Rating: 90},
	)

	matches := s.Search([]string{"Go", "Go", "Basics"}, 10)
	require.Len(t, matches, 2)
	assert.Equal(t, 2, matches[0].MatchCount)
	assert.Equal(t, 1, matches[0].Course.ID)
}
