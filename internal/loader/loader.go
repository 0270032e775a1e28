// Package loader reads the bulk-load feed (categories, schools and courses as
// headerless CSV files) into a catalog at startup.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/course-catalog/config"
	"github.com/gcbaptista/course-catalog/model"
)

// Sink receives loaded records. *catalog.Catalog implements it.
type Sink interface {
	LoadCategory(category model.Category) error
	LoadSchool(school model.School) error
	LoadCourse(course model.Course) error
}

// LoadError reports a malformed or rejected feed row. Load errors are fatal:
// a partially loaded catalog must not be served.
type LoadError struct {
	File string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Result counts the records loaded from each feed.
type Result struct {
	Categories int `json:"categories"`
	Schools    int `json:"schools"`
	Courses    int `json:"courses"`
}

const (
	categoryFields = 2 // id,name
	schoolFields   = 2 // id,name
	courseFields   = 6 // id,school,category,title,rating,duration
)

// LoadDir loads the three feed files found in dir. Categories and schools are
// read concurrently; courses are read afterwards since they reference both.
func LoadDir(ctx context.Context, sink Sink, dir string, feed config.FeedSettings) (Result, error) {
	var result Result

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := loadFile(gCtx, filepath.Join(dir, feed.CategoriesFile), func(r io.Reader, name string) (int, error) {
			return LoadCategories(gCtx, r, name, sink)
		})
		result.Categories = n
		return err
	})
	g.Go(func() error {
		n, err := loadFile(gCtx, filepath.Join(dir, feed.SchoolsFile), func(r io.Reader, name string) (int, error) {
			return LoadSchools(gCtx, r, name, sink)
		})
		result.Schools = n
		return err
	})
	if err := g.Wait(); err != nil {
		return result, err
	}

	n, err := loadFile(ctx, filepath.Join(dir, feed.CoursesFile), func(r io.Reader, name string) (int, error) {
		return LoadCourses(ctx, r, name, sink)
	})
	result.Courses = n
	if err != nil {
		return result, err
	}

	log.Printf("Loaded %d categories, %d schools and %d courses from %s",
		result.Categories, result.Schools, result.Courses, dir)
	return result, nil
}

func loadFile(ctx context.Context, path string, load func(r io.Reader, name string) (int, error)) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	file, err := os.Open(path) // #nosec G304 -- path is built from operator configuration
	if err != nil {
		return 0, fmt.Errorf("failed to open feed file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("Warning: failed to close feed file %s: %v", path, closeErr)
		}
	}()
	return load(file, filepath.Base(path))
}

// LoadCategories reads id,name rows.
func LoadCategories(ctx context.Context, r io.Reader, name string, sink Sink) (int, error) {
	return readRows(ctx, r, name, categoryFields, func(row []string) error {
		id, err := parseInt("id", row[0])
		if err != nil {
			return err
		}
		return sink.LoadCategory(model.Category{ID: id, Name: row[1]})
	})
}

// LoadSchools reads id,name rows.
func LoadSchools(ctx context.Context, r io.Reader, name string, sink Sink) (int, error) {
	return readRows(ctx, r, name, schoolFields, func(row []string) error {
		id, err := parseInt("id", row[0])
		if err != nil {
			return err
		}
		return sink.LoadSchool(model.School{ID: id, Name: row[1]})
	})
}

// LoadCourses reads id,school,category,title,rating,duration rows.
func LoadCourses(ctx context.Context, r io.Reader, name string, sink Sink) (int, error) {
	return readRows(ctx, r, name, courseFields, func(row []string) error {
		var ints [5]int
		for i, field := range []struct {
			name  string
			value string
		}{
			{"id", row[0]},
			{"school", row[1]},
			{"category", row[2]},
			{"rating", row[4]},
			{"duration", row[5]},
		} {
			v, err := parseInt(field.name, field.value)
			if err != nil {
				return err
			}
			ints[i] = v
		}
		return sink.LoadCourse(model.Course{
			ID:              ints[0],
			SchoolID:        ints[1],
			CategoryID:      ints[2],
			Title:           row[3],
			Rating:          ints[3],
			DurationMinutes: ints[4],
		})
	})
}

// readRows feeds every CSV record to handle, stopping at the first failure.
func readRows(ctx context.Context, r io.Reader, name string, fields int, handle func(row []string) error) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Field count is checked below to report it as a LoadError

	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return count, &LoadError{File: name, Line: line, Err: err}
		}
		line, _ := reader.FieldPos(0)
		if len(row) != fields {
			return count, &LoadError{File: name, Line: line,
				Err: fmt.Errorf("expected %d fields, got %d", fields, len(row))}
		}
		if err := handle(row); err != nil {
			return count, &LoadError{File: name, Line: line, Err: err}
		}
		count++
	}
}

func parseInt(field, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("field %s: %q is not an integer", field, value)
	}
	return v, nil
}
