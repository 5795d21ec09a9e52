package programcycle

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed renewals.toml
var defaultRenewals []byte

// Window is one known enrollment cycle of a student, spanning an inclusive
// range of absolute week numbers.
type Window struct {
	Cycle     int `toml:"cycle"`
	FirstWeek int `toml:"first_week"`
	LastWeek  int `toml:"last_week"`
}

// Student is one known renewal student. Lookup is by first name,
// case-insensitive, with aliases covering recurring misspellings.
type Student struct {
	Name               string   `toml:"name"`
	Aliases            []string `toml:"aliases"`
	ProgramLengthWeeks int      `toml:"program_length_weeks"`
	Windows            []Window `toml:"window"`
}

// Table indexes renewal students by lowercased first name and alias.
type Table struct {
	students map[string]*Student
}

type tableFile struct {
	Students []Student `toml:"student"`
}

// LoadTable reads a renewal table from path. An empty path loads the
// embedded default table.
func LoadTable(path string) (*Table, error) {
	data := defaultRenewals
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read renewal table: %w", err)
		}
	}

	var parsed tableFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse renewal table: %w", err)
	}
	return buildTable(parsed.Students)
}

// NewTable builds a table directly from student records.
func NewTable(students []Student) (*Table, error) {
	return buildTable(students)
}

func buildTable(students []Student) (*Table, error) {
	table := &Table{students: make(map[string]*Student)}
	for i := range students {
		student := &students[i]
		if strings.TrimSpace(student.Name) == "" {
			return nil, fmt.Errorf("renewal table: student %d has no name", i)
		}
		sort.Slice(student.Windows, func(a, b int) bool {
			return student.Windows[a].FirstWeek < student.Windows[b].FirstWeek
		})
		for _, window := range student.Windows {
			if window.Cycle < 1 || window.FirstWeek > window.LastWeek {
				return nil, fmt.Errorf("renewal table: %s has invalid window %+v", student.Name, window)
			}
		}
		for _, key := range append([]string{student.Name}, student.Aliases...) {
			normalized := normalizeKey(key)
			if normalized == "" {
				continue
			}
			if _, exists := table.students[normalized]; exists {
				return nil, fmt.Errorf("renewal table: duplicate student key %q", key)
			}
			table.students[normalized] = student
		}
	}
	return table, nil
}

// lookup resolves a student by the first name token of name.
func (t *Table) lookup(name string) *Student {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) == 0 {
		return nil
	}
	return t.students[normalizeKey(fields[0])]
}

func normalizeKey(key string) string {
	fields := strings.Fields(strings.TrimSpace(key))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
