package ui_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salaryscope/internal/ui"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	ui.PrintBanner(&buf, true)
	require.Empty(t, buf.String())

	ui.PrintBanner(&buf, false)
	require.NotEmpty(t, buf.String())
}

func TestColorizeSalary(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	require.Equal(t, "$450,000", ui.ColorizeSalary(450000))
	require.Equal(t, "$55,000", ui.ColorizeSalary(55000))
	require.Equal(t, "Not Available", ui.ColorizeSalary(math.NaN()))
}
