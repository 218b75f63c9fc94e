package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/salaryscope/pkg/serrors"
)

// Column names of the data science salaries dataset
const (
	ColWorkYear        = "work_year"
	ColExperienceLevel = "experience_level"
	ColJobTitle        = "job_title"
	ColSalaryUSD       = "salary_in_usd"
	ColWorkModels      = "work_models"
)

// SalaryRecord is one typed row of the salaries table
type SalaryRecord struct {
	WorkYear        int     `json:"work_year"`
	ExperienceLevel string  `json:"experience_level"`
	JobTitle        string  `json:"job_title"`
	SalaryInUSD     float64 `json:"salary_in_usd"`
	WorkModels      string  `json:"work_models"`
}

// Table is an ordered, header-indexed collection of raw rows. It is built once
// by the loader and never mutated afterwards.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewTable builds a table from a header and rows. Every row must have
// len(header) cells.
func NewTable(header []string, rows [][]string) *Table {
	index := make(map[string]int, len(header))
	columns := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		columns[i] = h
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	return &Table{columns: columns, index: index, rows: rows}
}

// Columns returns the header in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)

	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Has reports whether the column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Strings returns the raw cells of a column.
func (t *Table) Strings(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, serrors.MissingColumn(name)
	}

	out := make([]string, len(t.rows))
	for r, row := range t.rows {
		out[r] = strings.TrimSpace(row[i])
	}

	return out, nil
}

// Floats returns a column as numbers, NaN for missing cells.
func (t *Table) Floats(name string) ([]float64, error) {
	cells, err := t.Strings(name)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(cells))
	for r, cell := range cells {
		v, ok := ParseNumber(cell)
		if !ok {
			return nil, serrors.With(serrors.ErrParse, "column %q row %d: %q is not a number", name, r+1, cell)
		}
		out[r] = v
	}

	return out, nil
}

// IsNumeric reports whether every non-missing cell of the column parses as a
// number and at least one cell is present.
func (t *Table) IsNumeric(name string) bool {
	cells, err := t.Strings(name)
	if err != nil {
		return false
	}

	seen := false
	for _, cell := range cells {
		if IsMissing(cell) {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return false
		}
		seen = true
	}

	return seen
}

// NumericColumns returns the numeric columns in header order.
func (t *Table) NumericColumns() []string {
	var out []string
	for i, c := range t.columns {
		if t.index[c] != i {
			continue
		}
		if t.IsNumeric(c) {
			out = append(out, c)
		}
	}

	return out
}

// Records converts the table into typed rows. Rows with a missing salary keep
// SalaryInUSD as NaN.
func (t *Table) Records() ([]SalaryRecord, error) {
	for _, c := range []string{ColWorkYear, ColExperienceLevel, ColJobTitle, ColSalaryUSD, ColWorkModels} {
		if !t.Has(c) {
			return nil, serrors.MissingColumn(c)
		}
	}

	years, err := t.Floats(ColWorkYear)
	if err != nil {
		return nil, err
	}
	salaries, err := t.Floats(ColSalaryUSD)
	if err != nil {
		return nil, err
	}
	levels, _ := t.Strings(ColExperienceLevel)
	titles, _ := t.Strings(ColJobTitle)
	models, _ := t.Strings(ColWorkModels)

	records := make([]SalaryRecord, t.Len())
	for i := range records {
		records[i] = SalaryRecord{
			ExperienceLevel: levels[i],
			JobTitle:        titles[i],
			SalaryInUSD:     salaries[i],
			WorkModels:      models[i],
		}
		if !math.IsNaN(years[i]) {
			records[i].WorkYear = int(years[i])
		}
	}

	return records, nil
}

// IsMissing reports whether a cell counts as a missing value.
func IsMissing(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "na", "nan", "null", "n/a":
		return true
	}

	return false
}

// ParseNumber parses a numeric cell. Missing cells yield NaN and ok=true.
func ParseNumber(cell string) (float64, bool) {
	if IsMissing(cell) {
		return math.NaN(), true
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
