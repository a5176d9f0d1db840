package source

import (
	"reflect"
	"testing"

	"github.com/ukaji3/xmlss-go/pkg/xmlss/models"
	"github.com/xuri/excelize/v2"
)

func TestParseArea(t *testing.T) {
	tests := []struct {
		input    string
		expected *models.Area
	}{
		{"$A$1:$D$10", &models.Area{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"B2:C5", &models.Area{R1: 2, C1: 2, R2: 5, C2: 3}},
		{"C5:B2", &models.Area{R1: 2, C1: 2, R2: 5, C2: 3}},
		{"E7", &models.Area{R1: 7, C1: 5, R2: 7, C2: 5}},
		{"A1:B2:C3", nil},
		{"nonsense", nil},
		{"", nil},
	}

	for _, tt := range tests {
		result := ParseArea(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("ParseArea(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref           string
		expectedSheet string
		expectedAreas []models.Area
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", []models.Area{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"'My Sheet'!$B$2:$C$3,'My Sheet'!$E$5:$F$6", "My Sheet",
			[]models.Area{{R1: 2, C1: 2, R2: 3, C2: 3}, {R1: 5, C1: 5, R2: 6, C2: 6}}},
		{"$A$1:$B$2", "", nil},
	}

	for _, tt := range tests {
		sheet, areas := parsePrintAreaReference(tt.ref)
		if sheet != tt.expectedSheet {
			t.Errorf("parsePrintAreaReference(%q) sheet = %q, expected %q", tt.ref, sheet, tt.expectedSheet)
		}
		if !reflect.DeepEqual(areas, tt.expectedAreas) {
			t.Errorf("parsePrintAreaReference(%q) areas = %v, expected %v", tt.ref, areas, tt.expectedAreas)
		}
	}
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$B$3",
		Scope:    "Sheet1",
	})
	if err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	areas := ExtractPrintAreas(f)
	expected := []models.Area{{R1: 1, C1: 1, R2: 3, C2: 2}}
	if !reflect.DeepEqual(areas["Sheet1"], expected) {
		t.Errorf("ExtractPrintAreas()[Sheet1] = %v, expected %v", areas["Sheet1"], expected)
	}
}
