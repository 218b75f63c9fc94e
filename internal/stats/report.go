package stats

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// String formats a defined value with grouping and up to six decimals.
func (v Value) String() string {
	if !v.Defined {
		return Undefined
	}

	return humanize.CommafWithDigits(v.V, 6)
}

func (v Value) short() string {
	if !v.Defined {
		return Undefined
	}

	return humanize.CommafWithDigits(v.V, 2)
}

// Fprint writes the four report blocks to w: describe, correlation matrix,
// kurtosis and skewness.
func (s *Summary) Fprint(w io.Writer) error {
	blocks := []struct {
		title string
		data  pterm.TableData
	}{
		{data: s.describeTable()},
		{title: "Correlation Matrix:", data: s.correlationTable()},
		{title: "Kurtosis:", data: s.perColumnTable(func(c ColumnStats) Value { return c.Kurtosis })},
		{title: "Skewness:", data: s.perColumnTable(func(c ColumnStats) Value { return c.Skewness })},
	}

	for i, b := range blocks {
		if i > 0 {
			if _, err := fmt.Fprintf(w, "\n%s\n", b.title); err != nil {
				return err
			}
		}
		if len(s.Columns) == 0 {
			if _, err := fmt.Fprintln(w, "(no numeric columns)"); err != nil {
				return err
			}
			continue
		}

		out, err := pterm.DefaultTable.WithHasHeader().WithData(b.data).Srender()
		if err != nil {
			return fmt.Errorf("rendering table: %w", err)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}

	return nil
}

func (s *Summary) header() []string {
	row := []string{""}
	for _, c := range s.Columns {
		row = append(row, c.Name)
	}

	return row
}

func (s *Summary) describeTable() pterm.TableData {
	rows := []struct {
		label string
		get   func(ColumnStats) string
	}{
		{"count", func(c ColumnStats) string { return humanize.Comma(int64(c.Count)) }},
		{"mean", func(c ColumnStats) string { return c.Mean.short() }},
		{"std", func(c ColumnStats) string { return c.Std.short() }},
		{"min", func(c ColumnStats) string { return c.Min.short() }},
		{"25%", func(c ColumnStats) string { return c.Q25.short() }},
		{"50%", func(c ColumnStats) string { return c.Q50.short() }},
		{"75%", func(c ColumnStats) string { return c.Q75.short() }},
		{"max", func(c ColumnStats) string { return c.Max.short() }},
	}

	data := pterm.TableData{s.header()}
	for _, r := range rows {
		line := []string{r.label}
		for _, c := range s.Columns {
			line = append(line, r.get(c))
		}
		data = append(data, line)
	}

	return data
}

func (s *Summary) correlationTable() pterm.TableData {
	data := pterm.TableData{s.header()}
	for i, c := range s.Columns {
		line := []string{c.Name}
		for j := range s.Columns {
			line = append(line, s.Correlation[i][j].String())
		}
		data = append(data, line)
	}

	return data
}

func (s *Summary) perColumnTable(get func(ColumnStats) Value) pterm.TableData {
	data := pterm.TableData{{"column", "value"}}
	for _, c := range s.Columns {
		data = append(data, []string{c.Name, get(c).String()})
	}

	return data
}
