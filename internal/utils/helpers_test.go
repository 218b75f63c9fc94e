package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salaryscope/internal/utils"
)

func TestFormatSalary(t *testing.T) {
	require.Equal(t, "$105,000", utils.FormatSalary(105000))
	require.Equal(t, "$1,234,568", utils.FormatSalary(1234567.5))
	require.Equal(t, "$0", utils.FormatSalary(0))
	require.Equal(t, "Not Available", utils.FormatSalary(math.NaN()))
}

func TestTruncateString(t *testing.T) {
	require.Equal(t, "Data Scientist", utils.TruncateString("Data Scientist", 20))
	require.Equal(t, "Machine Le...", utils.TruncateString("Machine Learning Engineer", 13))
	require.Equal(t, "ab", utils.TruncateString("abcdef", 2))
}
