package xmlss

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xmlss-go/pkg/xmlss/models"
)

func TestInferDatatype(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{42, TypeNumber},
		{int64(-7), TypeNumber},
		{uint8(3), TypeNumber},
		{3.14, TypeNumber},
		{float32(0.5), TypeNumber},
		{json.Number("12"), TypeNumber},
		{math.NaN(), TypeString},
		{math.Inf(1), TypeString},
		{float32(math.Inf(-1)), TypeString},
		{"hello", TypeString},
		{"42", TypeString},
		{true, TypeString},
		{nil, TypeString},
		{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), TypeString},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.expected, inferDatatype(tt.input), "inferDatatype(%#v)", tt.input)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{"text", "text"},
		{42, "42"},
		{int64(-100), "-100"},
		{uint32(7), "7"},
		{200.5, "200.5"},
		{1e21, "1000000000000000000000"},
		{true, "1"},
		{false, ""},
		{nil, ""},
		{json.Number("3.50"), "3.50"},
		{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02T03:04:05"},
		{[]int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.expected, formatValue(tt.input), "formatValue(%#v)", tt.input)
	}
}

func TestEscapeValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"", ""},
		{"a & b", "a &#38; b"},
		{`<b>&"x"</b>`, "&#60;b&#62;&#38;&#34;x&#34;&#60;/b&#62;"},
		{"it's", "it&#39;s"},
		{"line1\nline2\ttab\r", "line1&#10;line2&#9;tab&#13;"},
		{"bell\x07", "bell"},
		{"héllo €", "héllo €"},
		{"bad\xffutf8", "bad\uFFFDutf8"},
		{"<\xfe>", "&#60;\uFFFD&#62;"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.expected, escapeValue(tt.input), "escapeValue(%q)", tt.input)
	}
}

func TestResolveCell(t *testing.T) {
	tests := []struct {
		name     string
		input    CellInput
		expected models.Cell
	}{
		{"scalar number", Scalar{42}, models.Cell{Value: "42", Datatype: TypeNumber}},
		{"scalar string", Scalar{"hello"}, models.Cell{Value: "hello", Datatype: TypeString}},
		{"scalar NaN", Scalar{math.NaN()}, models.Cell{Value: "NaN", Datatype: TypeString}},
		{"explicit datatype honored", Explicit{Value: "5", Datatype: TypeNumber}, models.Cell{Value: "5", Datatype: TypeNumber}},
		{"explicit inferred", Explicit{Value: 1.5}, models.Cell{Value: "1.5", Datatype: TypeNumber}},
		{"explicit attributes raw", Explicit{Value: "a<b", Attributes: `ss:StyleID="h" ss:MergeAcross="1"`},
			models.Cell{Value: "a&#60;b", Datatype: TypeString, Attributes: `ss:StyleID="h" ss:MergeAcross="1"`}},
		{"tuple verbatim", Tuple{Value: 10, Datatype: "String"}, models.Cell{Value: "10", Datatype: TypeString}},
		{"tuple passthrough", Tuple{Value: "2024-01-02T00:00:00", Datatype: TypeDateTime},
			models.Cell{Value: "2024-01-02T00:00:00", Datatype: TypeDateTime}},
		{"nil input", nil, models.Cell{Value: "", Datatype: TypeString}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ResolveCell(tt.input), tt.name)
	}
}

func TestCells(t *testing.T) {
	got := Cells(
		7,
		"x",
		map[string]any{"value": "5", "datatype": "Number"},
		map[string]any{"value": "v", "cell_attributes": `ss:StyleID="a"`},
		map[string]string{"value": "w", "attributes": `ss:Index="3"`},
		[]any{"2024-01-02", "DateTime"},
		[]any{"x", 5},
		[]string{"1", "Number"},
		Tuple{Value: 1, Datatype: "Boolean"},
	)
	expected := []CellInput{
		Scalar{7},
		Scalar{"x"},
		Explicit{Value: "5", Datatype: "Number"},
		Explicit{Value: "v", Attributes: `ss:StyleID="a"`},
		Explicit{Value: "w", Attributes: `ss:Index="3"`},
		Tuple{Value: "2024-01-02", Datatype: "DateTime"},
		Tuple{Value: "x", Datatype: "5"},
		Tuple{Value: "1", Datatype: "Number"},
		Tuple{Value: 1, Datatype: "Boolean"},
	}

	assert.Equal(t, expected, got)
}

func TestToCellInputUnsupported(t *testing.T) {
	tests := []struct {
		input    any
		expected CellInput
	}{
		{map[string]any{"datatype": "Number"}, Tuple{}},
		{map[string]any{"value": nil}, Tuple{}},
		{[]any{1, 2, 3}, Scalar{}},
		{[]any{}, Scalar{}},
		{[]string{"only"}, Scalar{}},
	}

	for _, tt := range tests {
		in, err := toCellInput(tt.input)
		require.ErrorIsf(t, err, ErrUnsupportedInput, "toCellInput(%#v)", tt.input)
		assert.Equalf(t, tt.expected, in, "toCellInput(%#v)", tt.input)
	}
}

func TestTableValues(t *testing.T) {
	tests := []struct {
		input    any
		expected int
	}{
		{"bare", 1},
		{42, 1},
		{nil, 0},
		{[][]any{{1}, {2}, {3}}, 3},
		{[][]string{{"a", "b"}}, 1},
		{[]any{[]any{1}, []any{2}}, 2},
		{[]byte("text"), 1},
	}

	for _, tt := range tests {
		assert.Lenf(t, tableValues(tt.input), tt.expected, "tableValues(%#v)", tt.input)
	}
}
