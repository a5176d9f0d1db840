// Package models defines data structures for XML Spreadsheet documents.
package models

// Cell represents a single resolved cell of a row.
type Cell struct {
	// Value is the escaped text placed inside the Data element.
	Value string `json:"value"`
	// Datatype is the ss:Type of the Data element (String, Number, ...).
	Datatype string `json:"datatype"`
	// Attributes is raw attribute text emitted on the Cell element.
	Attributes string `json:"attributes,omitempty"`
}

// Row represents one table row. Cell order maps to column position.
type Row struct {
	Cells []Cell `json:"cells"`
}
