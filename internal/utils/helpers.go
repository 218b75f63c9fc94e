package utils

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatSalary formats a salary in dollars with comma separators
func FormatSalary(salary float64) string {
	if math.IsNaN(salary) {
		return "Not Available"
	}

	return "$" + humanize.Comma(int64(math.Round(salary)))
}

// TruncateString truncates a string to the specified length and adds "..." if necessary
func TruncateString(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length <= 3 {
		return string(r[:length])
	}

	return string(r[:length-3]) + "..."
}
