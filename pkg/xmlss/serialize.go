package xmlss

import "strings"

// Namespace URIs of the Workbook element.
const (
	NamespaceSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	NamespaceOffice      = "urn:schemas-microsoft-com:office:office"
	NamespaceExcel       = "urn:schemas-microsoft-com:office:excel"
	NamespaceHTML        = "http://www.w3.org/TR/REC-html40"
)

// SheetName is the name of the single worksheet.
const SheetName = "Sheet1"

const header = `<?xml version="1.0"?>
<?mso-application progid="Excel.Sheet"?>
<Workbook xmlns="` + NamespaceSpreadsheet + `"
 xmlns:o="` + NamespaceOffice + `"
 xmlns:x="` + NamespaceExcel + `"
 xmlns:ss="` + NamespaceSpreadsheet + `"
 xmlns:html="` + NamespaceHTML + `">
 <DocumentProperties xmlns="` + NamespaceOffice + `">`

// SaveString returns the whole document. It does not modify the writer.
func (w *Writer) SaveString() string {
	var b strings.Builder
	b.WriteString(header)

	for _, name := range w.props.Keys() {
		value, _ := w.props.Get(name)
		b.WriteString("\n  <" + name + ">")
		b.WriteString(escapeValue(value))
		b.WriteString("</" + name + ">")
	}
	b.WriteString("\n </DocumentProperties>")

	if len(w.styles) > 0 {
		b.WriteString("\n <Styles>")
		for _, s := range w.styles {
			b.WriteString("\n  ")
			b.WriteString(s)
		}
		b.WriteString("\n </Styles>")
	}

	b.WriteString("\n <Worksheet ss:Name=\"" + SheetName + "\">\n  <Table>")
	for _, row := range w.rows {
		b.WriteString("\n    <Row ss:AutoFitHeight=\"0\">")
		for _, c := range row.Cells {
			b.WriteString("\n    <Cell")
			if c.Attributes != "" {
				b.WriteByte(' ')
				b.WriteString(c.Attributes)
			}
			b.WriteString("><Data ss:Type=\"")
			b.WriteString(c.Datatype)
			b.WriteString("\">")
			b.WriteString(c.Value)
			b.WriteString("</Data></Cell>")
		}
		b.WriteString("\n    </Row>")
	}
	b.WriteString("\n  </Table>\n </Worksheet>\n</Workbook>")
	return b.String()
}
