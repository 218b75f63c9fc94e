package chart

import (
	"sort"

	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
	"github.com/fr4nk3nst1ner/salaryscope/internal/stats"
)

const (
	topTitles   = 5
	whiskerCoef = 1.5
)

// TitleCount is how many rows carry a job title
type TitleCount struct {
	Title string
	Count int
}

// TopJobTitles returns the n most frequent job titles. Ties keep the order in
// which titles first appear.
func TopJobTitles(t Table, n int) ([]TitleCount, error) {
	titles, err := t.Strings(models.ColJobTitle)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var counts []TitleCount
	for _, title := range titles {
		if models.IsMissing(title) {
			continue
		}
		i, ok := index[title]
		if !ok {
			i = len(counts)
			index[title] = i
			counts = append(counts, TitleCount{Title: title})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}

	return counts, nil
}

// SalaryByJobTitle builds horizontal box plots of salary for the five most
// common job titles, most frequent first.
func (b *Builder) SalaryByJobTitle(t Table) (*Chart, error) {
	if _, err := salaryColumn(t); err != nil {
		return nil, err
	}
	top, err := TopJobTitles(t, topTitles)
	if err != nil {
		return nil, err
	}
	groups, err := groupSalaries(t, models.ColJobTitle)
	if err != nil {
		return nil, err
	}

	byTitle := make(map[string][]float64, len(groups))
	for _, g := range groups {
		byTitle[g.label] = g.values
	}

	boxes := make([]Box, 0, len(top))
	for _, tc := range top {
		boxes = append(boxes, boxOf(tc.Title, byTitle[tc.Title]))
	}

	return &Chart{
		Kind: KindBox,
		Meta: Meta{
			Name:          "salary_by_job_title",
			Title:         "Salary Range for Common Data Science Job Titles",
			XLabel:        "Salary in USD",
			YLabel:        "Job Title",
			Width:         12,
			Height:        8,
			TitleFontSize: 16,
			LabelFontSize: 14,
			TickFontSize:  10,
			Palette:       paletteFor("Set3", len(boxes)),
		},
		Horizontal: true,
		Boxes:      boxes,
	}, nil
}

// boxOf computes Tukey box statistics: whiskers reach the furthest values
// within 1.5 IQR of the box, anything beyond is an outlier.
func boxOf(label string, values []float64) Box {
	sorted := stats.Sorted(values)
	box := Box{Label: label, N: len(sorted)}
	if len(sorted) == 0 {
		return box
	}

	box.Q1 = stats.Quantile(sorted, 0.25)
	box.Median = stats.Quantile(sorted, 0.5)
	box.Q3 = stats.Quantile(sorted, 0.75)
	iqr := box.Q3 - box.Q1
	loFence, hiFence := box.Q1-whiskerCoef*iqr, box.Q3+whiskerCoef*iqr

	box.WhiskerLo, box.WhiskerHi = box.Q1, box.Q3
	for _, x := range sorted {
		if x < loFence || x > hiFence {
			box.Outliers = append(box.Outliers, x)
			continue
		}
		if x < box.WhiskerLo {
			box.WhiskerLo = x
		}
		if x > box.WhiskerHi {
			box.WhiskerHi = x
		}
	}

	return box
}
