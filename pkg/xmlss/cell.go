package xmlss

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ukaji3/xmlss-go/pkg/xmlss/models"
)

// Data types understood by spreadsheet readers. Any other string is passed through.
const (
	TypeString   = "String"
	TypeNumber   = "Number"
	TypeBoolean  = "Boolean"
	TypeDateTime = "DateTime"
	TypeError    = "Error"
)

// timeLayout is the ss:Type="DateTime" value layout.
const timeLayout = "2006-01-02T15:04:05"

// CellInput is one caller-supplied cell: a Scalar, an Explicit or a Tuple.
type CellInput interface {
	resolve() models.Cell
}

// Scalar is a bare value whose data type is inferred.
type Scalar struct {
	Value any
}

// Explicit overrides any subset of data type and cell attributes.
// An empty Datatype is inferred from Value.
type Explicit struct {
	Value      any
	Datatype   string
	Attributes string // raw attribute text, emitted verbatim on the Cell element
}

// Tuple is the positional [value, datatype] form. Datatype is used as given.
type Tuple struct {
	Value    any
	Datatype string
}

func (s Scalar) resolve() models.Cell {
	return models.Cell{
		Value:    escapeValue(formatValue(s.Value)),
		Datatype: inferDatatype(s.Value),
	}
}

func (e Explicit) resolve() models.Cell {
	datatype := e.Datatype
	if datatype == "" {
		datatype = inferDatatype(e.Value)
	}
	return models.Cell{
		Value:      escapeValue(formatValue(e.Value)),
		Datatype:   datatype,
		Attributes: e.Attributes,
	}
}

func (t Tuple) resolve() models.Cell {
	return models.Cell{
		Value:    escapeValue(formatValue(t.Value)),
		Datatype: t.Datatype,
	}
}

// ResolveCell converts a cell input into a resolved cell. A nil input is an empty String cell.
func ResolveCell(in CellInput) models.Cell {
	if in == nil {
		return Scalar{}.resolve()
	}
	return in.resolve()
}

// inferDatatype returns Number for numeric Go values and String for everything
// else. NaN and infinities are not numbers to a spreadsheet and stay String.
func inferDatatype(v any) string {
	switch x := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return TypeNumber
	case float32:
		return finiteType(float64(x))
	case float64:
		return finiteType(x)
	}
	return TypeString
}

func finiteType(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return TypeString
	}
	return TypeNumber
}

// formatValue renders a cell value as text.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case time.Time:
		return x.Format(timeLayout)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// escapeValue replaces & < > " ' and tab, newline and carriage return with
// numeric character references. Other C0 control characters cannot appear in
// an XML 1.0 document and are dropped. Invalid UTF-8 becomes U+FFFD.
func escapeValue(s string) string {
	if !needsEscape(s) {
		return s
	}
	s = strings.ToValidUTF8(s, "\uFFFD")
	var b strings.Builder
	b.Grow(len(s) + 16)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '&' || c == '<' || c == '>' || c == '"' || c == '\'' ||
			c == '\t' || c == '\n' || c == '\r':
			b.WriteString("&#")
			b.WriteString(strconv.Itoa(int(c)))
			b.WriteByte(';')
		case c < 0x20:
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func needsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c < 0x20, c == '&', c == '<', c == '>', c == '"', c == '\'':
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Cells converts dynamic values into cell inputs:
//   - a CellInput is used as is,
//   - a map carrying a "value" key is an Explicit ("datatype", "attributes" or
//     "cell_attributes" keys are optional),
//   - a two-element slice is a Tuple, its second element formatted as the datatype,
//   - a map without "value" is an empty cell with an empty datatype and any
//     other slice is an empty String cell,
//   - anything else is a Scalar.
func Cells(values ...any) []CellInput {
	cells := make([]CellInput, 0, len(values))
	for _, v := range values {
		in, _ := toCellInput(v)
		cells = append(cells, in)
	}
	return cells
}

// toCellInput classifies one dynamic value. The error is non-nil when the shape
// was not recognized and the value was replaced by an empty cell.
func toCellInput(v any) (CellInput, error) {
	switch x := v.(type) {
	case CellInput:
		return x, nil
	case map[string]any:
		return explicitFromMap(x)
	case map[string]string:
		m := make(map[string]any, len(x))
		for k, s := range x {
			m[k] = s
		}
		return explicitFromMap(m)
	case []any:
		if len(x) == 2 {
			return Tuple{Value: x[0], Datatype: formatValue(x[1])}, nil
		}
		return Scalar{}, fmt.Errorf("%w: %d-element slice cell", ErrUnsupportedInput, len(x))
	case []string:
		if len(x) == 2 {
			return Tuple{Value: x[0], Datatype: x[1]}, nil
		}
		return Scalar{}, fmt.Errorf("%w: %d-element slice cell", ErrUnsupportedInput, len(x))
	}
	return Scalar{Value: v}, nil
}

func explicitFromMap(m map[string]any) (CellInput, error) {
	value, ok := m["value"]
	if !ok || value == nil {
		return Tuple{}, fmt.Errorf("%w: map cell without value", ErrUnsupportedInput)
	}
	e := Explicit{Value: value}
	if dt, ok := m["datatype"].(string); ok {
		e.Datatype = dt
	}
	if attrs, ok := m["attributes"].(string); ok {
		e.Attributes = attrs
	} else if attrs, ok := m["cell_attributes"].(string); ok {
		e.Attributes = attrs
	}
	return e, nil
}

// rowValues returns the elements of a dynamic row. A non-slice value is a
// one-cell row.
func rowValues(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case []CellInput:
		out := make([]any, len(x))
		for i, c := range x {
			out[i] = c
		}
		return out
	case nil:
		return nil
	}
	return sliceOrSingle(v)
}

// tableValues returns the rows of a dynamic table. A non-slice value is
// wrapped into a one-row table.
func tableValues(v any) []any {
	switch x := v.(type) {
	case [][]any:
		out := make([]any, len(x))
		for i, r := range x {
			out[i] = r
		}
		return out
	case []any:
		return x
	case nil:
		return nil
	}
	return sliceOrSingle(v)
}

func sliceOrSingle(v any) []any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		// []byte is text, not a row
		return []any{string(rv.Bytes())}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Attr renders one name="value" attribute with value escaped, for use in
// Explicit.Attributes.
func Attr(name, value string) string {
	return name + `="` + escapeValue(value) + `"`
}
