// Package loader reads the salaries dataset into a models.Table. It accepts
// local files (optionally gzip-compressed) and http(s) URLs, in delimited text
// or as the first <table> of an HTML document. No cleaning is applied.
package loader

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/csv"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/salaryscope/internal/client"
	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
	"github.com/fr4nk3nst1ner/salaryscope/pkg/logger"
	"github.com/fr4nk3nst1ner/salaryscope/pkg/serrors"
)

// Options configures a Loader.
type Options struct {
	// Delimiter separates fields, ',' when zero.
	Delimiter rune
	// Proxy is used for URL sources.
	Proxy string
	// HTTPClient overrides the client built from Proxy.
	HTTPClient *http.Client
}

// Loader turns a source into a table.
type Loader struct {
	opts Options
}

// New creates a Loader.
func New(opts Options) *Loader {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	return &Loader{opts: opts}
}

type format int

const (
	formatDelimited format = iota
	formatHTML
)

// Load reads source, a file path or an http(s) URL.
func (l *Loader) Load(ctx context.Context, source string) (*models.Table, error) {
	ctx = logger.WithFields(ctx, zap.String("source", source))

	var (
		body []byte
		name = source
		kind = formatDelimited
		err  error
	)
	if isURL(source) {
		var doc *client.Document
		doc, err = l.fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		body = doc.Body
		if strings.Contains(doc.ContentType, "text/html") {
			kind = formatHTML
		}
		if u := strings.SplitN(source, "?", 2)[0]; u != "" {
			name = u
		}
	} else {
		body, err = readFile(source)
		if err != nil {
			return nil, err
		}
	}

	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		body, err = gunzip(body)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrParse, err, "decompressing %s", source)
		}
		name = name[:len(name)-len(".gz")]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm":
		kind = formatHTML
	}

	var tbl *models.Table
	if kind == formatHTML {
		tbl, err = ParseHTML(bytes.NewReader(body))
	} else {
		tbl, err = ParseDelimited(bytes.NewReader(body), l.opts.Delimiter)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "dataset loaded",
		zap.Int("rows", tbl.Len()),
		zap.Strings("columns", tbl.Columns()),
	)

	return tbl, nil
}

func (l *Loader) fetch(ctx context.Context, rawURL string) (*client.Document, error) {
	c := l.opts.HTTPClient
	if c == nil {
		var err error
		c, err = client.CreateHTTPClient(l.opts.Proxy)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug(ctx, "fetching dataset")

	return client.Fetch(ctx, c, rawURL)
}

// ParseDelimited reads delimited text with a header row. Every row must have
// as many fields as the header.
func ParseDelimited(r io.Reader, delimiter rune) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, serrors.With(serrors.ErrParse, "input has no header row")
	}
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrParse, err, "reading header")
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrParse, err, "reading row %d", len(rows)+1)
		}
		rows = append(rows, row)
	}

	return models.NewTable(header, rows), nil
}

func readFile(p string) ([]byte, error) {
	body, err := os.ReadFile(p)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, serrors.Wrap(serrors.ErrNotFound, err, "input %s not found", p)
	case err != nil:
		return nil, errors.Wrapf(err, "reading %s", p)
	}

	return body, nil
}

func gunzip(body []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	return io.ReadAll(gz)
}

func isURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
