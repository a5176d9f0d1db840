package models

// DocumentProperties is an ordered mapping of property name to value.
// The zero value is ready to use.
type DocumentProperties struct {
	keys   []string
	values map[string]string
}

// Set sets or overwrites a property. Overwriting keeps the first-insertion position.
func (p *DocumentProperties) Set(name, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = value
}

// Get returns the value of a property and whether it is set.
func (p *DocumentProperties) Get(name string) (string, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Keys returns the property names in insertion order.
func (p *DocumentProperties) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

