package ui

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salaryscope/internal/utils"
)

const bannerText = `
 ____        _                   ____
/ ___|  __ _| | __ _ _ __ _   _ / ___|  ___ ___  _ __   ___
\___ \ / _' | |/ _' | '__| | | |\___ \ / __/ _ \| '_ \ / _ \
 ___) | (_| | | (_| | |  | |_| | ___) | (_| (_) | |_) |  __/
|____/ \__,_|_|\__,_|_|   \__, ||____/ \___\___/| .__/ \___|
                          |___/                 |_|
 data science salaries, described
`

// ColorizeText applies a random color gradient to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	half := float32(len(chars) / 2)
	if half == 0 {
		half = 1
	}

	var b strings.Builder
	for i, ch := range chars {
		b.WriteString(startColor.Fade(0, half, float32(i%int(half)), endColor).Sprint(ch))
	}

	return b.String()
}

// PrintBanner writes the application banner to w
func PrintBanner(w io.Writer, silence bool) {
	if silence {
		return
	}
	fmt.Fprintln(w, ColorizeText(bannerText))
}

// ColorizeSalary applies color formatting to a salary amount
func ColorizeSalary(salary float64) string {
	if math.IsNaN(salary) {
		return pterm.Red("Not Available")
	}

	formatted := utils.FormatSalary(salary)
	switch {
	case salary >= 400000:
		return pterm.Green(formatted)
	case salary >= 300000:
		return pterm.LightGreen(formatted)
	case salary >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
