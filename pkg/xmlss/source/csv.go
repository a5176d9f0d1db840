package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/xmlss-go/pkg/xmlss"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// CSVOptions configures CSV input.
type CSVOptions struct {
	// Delimiter is the field separator. Defaults to ','.
	Delimiter rune
	// Encoding is a WHATWG encoding label such as "windows-1252" or
	// "shift_jis". Empty or "utf-8" reads the input as is.
	Encoding string
	// KeepText disables number parsing; every field is written as a String.
	KeepText bool
}

// ReadCSV reads CSV records as writer rows.
func ReadCSV(r io.Reader, opts CSVOptions) ([][]xmlss.CellInput, error) {
	r, err := decodeReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	var rows [][]xmlss.CellInput
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		cells := make([]xmlss.CellInput, len(record))
		for i, field := range record {
			if opts.KeepText {
				cells[i] = xmlss.Scalar{Value: field}
			} else {
				cells[i] = xmlss.Scalar{Value: parseValue(field)}
			}
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

// decodeReader wraps r with a decoder for the named encoding.
func decodeReader(r io.Reader, name string) (io.Reader, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
