package xmlss

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/xmlss-go/pkg/xmlss/models"
)

// RowWriter is the contract shared by spreadsheet writers.
type RowWriter interface {
	AddRow(values []CellInput) error
	SetData(rows [][]CellInput) error
	SaveString() string
}

// Base supplies the output metadata of a writer.
type Base struct {
	contentType   string
	fileExtension string
}

// ContentType returns the MIME type of the produced document.
func (b Base) ContentType() string { return b.contentType }

// FileExtension returns the file extension, without a dot, used when saving.
func (b Base) FileExtension() string { return b.fileExtension }

// Writer accumulates document properties, styles and rows and serializes them
// as a single-sheet XML Spreadsheet. A Writer is not safe for concurrent use.
type Writer struct {
	Base

	opts       Options
	log        *slog.Logger
	props      models.DocumentProperties
	styles     []string // rendered <Style> fragments
	registered []models.Style
	rows       []models.Row
}

var _ RowWriter = (*Writer)(nil)

// New creates an empty writer.
func New(opts Options) *Writer {
	w := &Writer{
		Base: Base{
			contentType:   "application/xml",
			fileExtension: "xml",
		},
		opts: opts,
		log:  opts.logger(),
	}
	if opts.ShouldSetDefaultProperties() {
		for _, p := range DefaultProperties(opts.author(), opts.now()) {
			w.props.Set(p.Name, p.Value)
		}
	}
	return w
}

// DefaultProperties returns the conventional document properties in order.
func DefaultProperties(author string, created time.Time) []models.Attr {
	return []models.Attr{
		{Name: "Author", Value: author},
		{Name: "Company", Value: author},
		{Name: "Created", Value: created.UTC().Format("2006-01-02T15:04:05Z")},
		{Name: "Keywords", Value: author},
		{Name: "LastAuthor", Value: author},
		{Name: "Version", Value: "12.00"},
	}
}

// AddRow resolves values into cells and appends them as a new row. An empty
// slice adds an empty row. Errors are only returned in strict mode.
func (w *Writer) AddRow(values []CellInput) error {
	row, err := w.buildRow(len(w.rows)+1, values)
	if err != nil {
		return err
	}
	w.rows = append(w.rows, row)
	return nil
}

// SetData replaces the table with rows. Properties and styles are kept.
// On error the previous table is left unchanged.
func (w *Writer) SetData(rows [][]CellInput) error {
	table := make([]models.Row, 0, len(rows))
	for i, r := range rows {
		row, err := w.buildRow(i+1, r)
		if err != nil {
			return err
		}
		table = append(table, row)
	}
	w.rows = table
	return nil
}

// AddValues appends a row built from dynamic values; see Cells.
func (w *Writer) AddValues(values ...any) error {
	rowNum := len(w.rows) + 1
	cells, err := w.dynamicCells(rowNum, values)
	if err != nil {
		return err
	}
	row, err := w.buildRow(rowNum, cells)
	if err != nil {
		return err
	}
	w.rows = append(w.rows, row)
	return nil
}

// SetValues replaces the table with dynamic rows. A value that is not a slice
// becomes a one-row table, and a row that is not a slice becomes a one-cell row.
// On error the previous table is left unchanged.
func (w *Writer) SetValues(values any) error {
	rows := tableValues(values)
	table := make([]models.Row, 0, len(rows))
	for i, r := range rows {
		cells, err := w.dynamicCells(i+1, rowValues(r))
		if err != nil {
			return err
		}
		row, err := w.buildRow(i+1, cells)
		if err != nil {
			return err
		}
		table = append(table, row)
	}
	w.rows = table
	return nil
}

// buildRow resolves one row. rowNum is only used for error positions.
func (w *Writer) buildRow(rowNum int, values []CellInput) (models.Row, error) {
	row := models.Row{Cells: make([]models.Cell, 0, len(values))}
	for i, in := range values {
		cell := ResolveCell(in)
		if w.opts.Strict {
			if err := validateAttributes(cell.Attributes); err != nil {
				return models.Row{}, NewCellError(rowNum, i+1, err)
			}
		}
		row.Cells = append(row.Cells, cell)
	}
	return row, nil
}

// dynamicCells classifies dynamic values. Unrecognized shapes are an error in
// strict mode and an empty cell otherwise.
func (w *Writer) dynamicCells(rowNum int, values []any) ([]CellInput, error) {
	cells := make([]CellInput, 0, len(values))
	for i, v := range values {
		in, err := toCellInput(v)
		if err != nil {
			if w.opts.Strict {
				return nil, NewCellError(rowNum, i+1, err)
			}
			w.log.Debug("cell value replaced by an empty cell", "row", rowNum, "column", i+1, "reason", err)
		}
		cells = append(cells, in)
	}
	return cells, nil
}

// SetDocProp sets or overwrites a document property.
func (w *Writer) SetDocProp(name, value string) error {
	if w.opts.Strict && !isXMLName(name) {
		return fmt.Errorf("%w: document property %q", ErrInvalidName, name)
	}
	w.props.Set(name, value)
	return nil
}

// DocProp returns a document property value.
func (w *Writer) DocProp(name string) (string, bool) {
	return w.props.Get(name)
}

// Rows returns the accumulated rows.
func (w *Writer) Rows() []models.Row {
	return append([]models.Row(nil), w.rows...)
}

// Styles returns the registered styles in registration order.
func (w *Writer) Styles() []models.Style {
	return append([]models.Style(nil), w.registered...)
}

// WriteTo writes the document to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	n, err := io.WriteString(out, w.SaveString())
	return int64(n), err
}

// SaveFile writes the document to path, appending the file extension when
// path has none.
func (w *Writer) SaveFile(path string) error {
	if filepath.Ext(path) == "" {
		path += "." + w.FileExtension()
	}
	if err := os.WriteFile(path, []byte(w.SaveString()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
