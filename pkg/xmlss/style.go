package xmlss

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xmlss-go/pkg/xmlss/models"
)

// SetDocStyle registers a style under id. Elements are rendered in order, each
// as a self-closing tag with ss: prefixed attributes. No style is registered
// when elements is empty.
func (w *Writer) SetDocStyle(id string, elements []models.StyleElement) error {
	if w.opts.Strict {
		if err := validateStyle(id, elements); err != nil {
			return err
		}
	}

	body := renderStyleElements(elements)
	if body == "" {
		w.log.Debug("style has no elements, not registered", "style_id", id)
		return nil
	}

	w.styles = append(w.styles, `<Style ss:ID="`+id+`">`+body+"\n  </Style>")
	w.registered = append(w.registered, models.Style{
		ID:       id,
		Elements: cloneElements(elements),
	})
	return nil
}

// renderStyleElements returns the concatenated element fragments of a style.
func renderStyleElements(elements []models.StyleElement) string {
	var b strings.Builder
	for _, el := range elements {
		attrs := make([]string, 0, len(el.Attrs))
		for _, a := range el.Attrs {
			attrs = append(attrs, `ss:`+a.Name+`="`+a.Value+`"`)
		}
		b.WriteString("\n     <")
		b.WriteString(el.Name)
		b.WriteByte(' ')
		b.WriteString(strings.Join(attrs, " "))
		b.WriteString("/>")
	}
	return b.String()
}

func validateStyle(id string, elements []models.StyleElement) error {
	if strings.ContainsAny(id, `"<&`) {
		return fmt.Errorf("%w: style id %q", ErrInvalidName, id)
	}
	for _, el := range elements {
		if !isXMLName(el.Name) {
			return fmt.Errorf("%w: style element %q", ErrInvalidName, el.Name)
		}
		for _, a := range el.Attrs {
			if !isXMLName(a.Name) {
				return fmt.Errorf("%w: style attribute %q of %s", ErrInvalidName, a.Name, el.Name)
			}
			if strings.ContainsAny(a.Value, `"<&`) {
				return fmt.Errorf("%w: value of %s/%s", ErrMalformedAttributes, el.Name, a.Name)
			}
		}
	}
	return nil
}

func cloneElements(elements []models.StyleElement) []models.StyleElement {
	out := make([]models.StyleElement, len(elements))
	for i, el := range elements {
		out[i] = models.StyleElement{
			Name:  el.Name,
			Attrs: append([]models.Attr(nil), el.Attrs...),
		}
	}
	return out
}
