package xmlss

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// isXMLName reports whether s is a valid XML element or attribute name.
func isXMLName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r), r == '_', r == ':':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// validateAttributes checks that attrs parses as the attribute list of a
// single empty element.
func validateAttributes(attrs string) error {
	if strings.TrimSpace(attrs) == "" {
		return nil
	}
	d := xml.NewDecoder(strings.NewReader("<Cell " + attrs + "/>"))
	d.Strict = true
	elements := 0
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedAttributes, err)
		}
		switch tok.(type) {
		case xml.StartElement:
			elements++
		case xml.CharData, xml.Comment, xml.ProcInst, xml.Directive:
			return fmt.Errorf("%w: unexpected content in %q", ErrMalformedAttributes, attrs)
		}
	}
	if elements != 1 {
		return fmt.Errorf("%w: %q closes the cell element", ErrMalformedAttributes, attrs)
	}
	return nil
}
