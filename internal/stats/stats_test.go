package stats_test

import (
	"bytes"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
	"github.com/fr4nk3nst1ner/salaryscope/internal/stats"
	"github.com/fr4nk3nst1ner/salaryscope/pkg/serrors"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func scenarioTable() *models.Table {
	return models.NewTable(
		[]string{"work_year", "experience_level", "job_title", "salary_in_usd", "work_models"},
		[][]string{
			{"2020", "EN", "A", "50000", "Remote"},
			{"2020", "SE", "A", "150000", "Onsite"},
			{"2021", "EN", "B", "60000", "Remote"},
			{"2021", "SE", "B", "160000", "Onsite"},
		},
	)
}

func TestQuantile(t *testing.T) {
	sorted := []float64{50000, 60000, 150000, 160000}
	require.InDelta(t, 57500, stats.Quantile(sorted, 0.25), 1e-9)
	require.InDelta(t, 105000, stats.Quantile(sorted, 0.5), 1e-9)
	require.InDelta(t, 152500, stats.Quantile(sorted, 0.75), 1e-9)
	require.Equal(t, 50000.0, stats.Quantile(sorted, 0))
	require.Equal(t, 160000.0, stats.Quantile(sorted, 1))
	require.Equal(t, 7.0, stats.Quantile([]float64{7}, 0.3))
	require.True(t, math.IsNaN(stats.Quantile(nil, 0.5)))
}

func TestMoments(t *testing.T) {
	tests := []struct {
		name     string
		xs       []float64
		kurtosis stats.Value
		skewness stats.Value
	}{
		{
			name:     "uniform steps",
			xs:       []float64{1, 2, 3, 4, 5},
			kurtosis: stats.Value{V: -1.3, Defined: true},
			skewness: stats.Value{V: 0, Defined: true},
		},
		{
			name:     "right tail",
			xs:       []float64{1, 1, 1, 4},
			kurtosis: stats.Value{V: -2.0 / 3.0, Defined: true},
			skewness: stats.Value{V: 2 / math.Sqrt(3), Defined: true},
		},
		{name: "constant", xs: []float64{3, 3, 3, 3}},
		{name: "single value", xs: []float64{42}},
		{name: "only missing", xs: []float64{math.NaN(), math.NaN()}},
		{
			name:     "missing values skipped",
			xs:       []float64{1, math.NaN(), 2, 3, 4, 5},
			kurtosis: stats.Value{V: -1.3, Defined: true},
			skewness: stats.Value{V: 0, Defined: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := stats.Kurtosis(tt.xs)
			s := stats.Skewness(tt.xs)
			require.Equal(t, tt.kurtosis.Defined, k.Defined)
			require.Equal(t, tt.skewness.Defined, s.Defined)
			require.InDelta(t, tt.kurtosis.V, k.V, 1e-9)
			require.InDelta(t, tt.skewness.V, s.V, 1e-9)
		})
	}
}

func TestConstantColumnReportsUndefined(t *testing.T) {
	tbl := models.NewTable([]string{"flat", "x"}, [][]string{{"5", "1"}, {"5", "2"}, {"5", "4"}})

	s, err := stats.Summarize(tbl)
	require.NoError(t, err)
	require.Len(t, s.Columns, 2)
	require.False(t, s.Columns[0].Kurtosis.Defined)
	require.False(t, s.Columns[0].Skewness.Defined)
	require.Equal(t, stats.Undefined, s.Columns[0].Kurtosis.String())
	require.False(t, s.Correlation[0][1].Defined)
	require.True(t, s.Correlation[0][0].Defined)
	require.Equal(t, 1.0, s.Correlation[0][0].V)

	var buf bytes.Buffer
	require.NoError(t, s.Fprint(&buf))
	require.Contains(t, buf.String(), stats.Undefined)
	require.NotContains(t, buf.String(), "NaN")
}

func TestCorrelationMatrixSymmetric(t *testing.T) {
	columns := [][]float64{
		{1, 2, 3, 4, 5, 6},
		{2, 1, 4, 3, 6, 5},
		{10, 8, 6, 4, 2, 0},
		{1, math.NaN(), 0, 7, 2, 9},
	}

	m := stats.CorrelationMatrix(columns)
	require.Len(t, m, len(columns))
	for i := range m {
		require.True(t, m[i][i].Defined)
		require.Equal(t, 1.0, m[i][i].V)
		for j := range m {
			require.Equal(t, m[i][j], m[j][i])
			if m[i][j].Defined {
				require.LessOrEqual(t, math.Abs(m[i][j].V), 1.0)
			}
		}
	}
	require.InDelta(t, -1.0, m[0][2].V, 1e-12)

	single := stats.CorrelationMatrix([][]float64{{4, 4}})
	require.Equal(t, 1.0, single[0][0].V)
}

func TestSummarizeScenario(t *testing.T) {
	s, err := stats.Summarize(scenarioTable(), models.ColSalaryUSD)
	require.NoError(t, err)

	require.Len(t, s.Columns, 2)
	require.Equal(t, "work_year", s.Columns[0].Name)
	salary := s.Columns[1]
	require.Equal(t, "salary_in_usd", salary.Name)
	require.Equal(t, 4, salary.Count)
	require.InDelta(t, 105000, salary.Mean.V, 1e-9)
	require.InDelta(t, math.Sqrt(1.01e10/3), salary.Std.V, 1e-6)
	require.InDelta(t, 50000, salary.Min.V, 1e-9)
	require.InDelta(t, 57500, salary.Q25.V, 1e-9)
	require.InDelta(t, 105000, salary.Q50.V, 1e-9)
	require.InDelta(t, 152500, salary.Q75.V, 1e-9)
	require.InDelta(t, 160000, salary.Max.V, 1e-9)

	found, ok := s.Column(models.ColSalaryUSD)
	require.True(t, ok)
	require.Equal(t, salary.Q50, found.Q50)
	_, ok = s.Column("company_size")
	require.False(t, ok)

	var buf bytes.Buffer
	require.NoError(t, s.Fprint(&buf))
	out := buf.String()

	corr := strings.Index(out, "Correlation Matrix:")
	kurt := strings.Index(out, "Kurtosis:")
	skew := strings.Index(out, "Skewness:")
	require.Greater(t, corr, 0)
	require.Greater(t, kurt, corr)
	require.Greater(t, skew, kurt)
	require.Contains(t, out[:corr], "count")
	require.Contains(t, out[:corr], "105,000")
}

func TestSummarizeExcludesNonNumeric(t *testing.T) {
	tbl := models.NewTable([]string{"name", "salary_in_usd"}, [][]string{{"a", "1"}, {"b", "x"}})

	s, err := stats.Summarize(tbl)
	require.NoError(t, err)
	require.Empty(t, s.Columns)

	_, err = stats.Summarize(tbl, models.ColSalaryUSD)
	require.ErrorIs(t, err, serrors.ErrParse)
}

func TestSummarizeMissingSalary(t *testing.T) {
	tbl := models.NewTable([]string{"work_year"}, [][]string{{"2020"}})

	_, err := stats.Summarize(tbl, models.ColSalaryUSD)
	require.ErrorIs(t, err, serrors.ErrMissingColumn)
}
