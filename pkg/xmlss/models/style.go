package models

// Attr is a single style attribute. Name is emitted with the ss: prefix.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StyleElement is one formatting category of a style, e.g. Font or Alignment.
type StyleElement struct {
	// Name is the element name.
	Name string `json:"name"`
	// Attrs are emitted in order.
	Attrs []Attr `json:"attrs,omitempty"`
}

// Style is a registered style: an id plus its ordered elements.
type Style struct {
	// ID is the ss:ID cells refer to through ss:StyleID.
	ID string `json:"id"`
	// Elements are the formatting categories in registration order.
	Elements []StyleElement `json:"elements"`
}

// Element builds a StyleElement from alternating attribute names and values.
// A trailing name without a value is ignored.
func Element(name string, kv ...string) StyleElement {
	el := StyleElement{Name: name}
	for i := 0; i+1 < len(kv); i += 2 {
		el.Attrs = append(el.Attrs, Attr{Name: kv[i], Value: kv[i+1]})
	}
	return el
}
