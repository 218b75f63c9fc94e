package loader

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
	"github.com/fr4nk3nst1ner/salaryscope/pkg/serrors"
)

// ParseHTML reads the first <table> of an HTML document. Its first row is the
// header, whether written with <th> or <td> cells.
func ParseHTML(r io.Reader) (*models.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrParse, err, "parsing HTML")
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, serrors.With(serrors.ErrParse, "HTML document has no table")
	}

	var header []string
	var rows [][]string
	var rowErr error
	table.Find("tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		// rows of nested tables belong to those tables
		if tr.ParentsFiltered("table").First().Get(0) != table.Get(0) {
			return true
		}

		var cells []string
		tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) == 0 {
			return true
		}

		if header == nil {
			header = cells
			return true
		}
		if len(cells) != len(header) {
			rowErr = serrors.With(serrors.ErrParse, "HTML table row %d has %d cells, header has %d", len(rows)+1, len(cells), len(header))
			return false
		}
		rows = append(rows, cells)

		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	if header == nil {
		return nil, serrors.With(serrors.ErrParse, "HTML table has no header row")
	}

	return models.NewTable(header, rows), nil
}
