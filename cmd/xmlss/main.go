// Package main provides the CLI entry point for xmlss.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xmlss-go/pkg/xmlss"
	"github.com/ukaji3/xmlss-go/pkg/xmlss/models"
	"github.com/ukaji3/xmlss-go/pkg/xmlss/source"
)

// headerStyleID is the style registered by --header-style.
const headerStyleID = "Header"

var (
	outputPath   string
	sheet        string
	cellRange    string
	printArea    bool
	detectTable  bool
	includeLinks bool
	encoding     string
	delimiter    string
	keepText     bool
	props        []string
	defaultProps bool
	author       string
	headerStyle  bool
	strict       bool
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xmlss [input.xlsx|input.csv]",
		Short: "Convert tabular data to an Excel 2003 XML Spreadsheet",
		Long: `xmlss reads one sheet of an xlsx workbook or a CSV/TSV file
and writes it as a Microsoft Excel 2003 XML Spreadsheet document.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Workbook sheet to read (default: active sheet)")
	rootCmd.Flags().StringVar(&cellRange, "range", "", "Cell range to read, e.g. A1:D10")
	rootCmd.Flags().BoolVar(&printArea, "print-area", false, "Read only the sheet's print area")
	rootCmd.Flags().BoolVar(&detectTable, "detect-table", false, "Read only the detected table region")
	rootCmd.Flags().BoolVar(&includeLinks, "links", false, "Keep cell hyperlinks")
	rootCmd.Flags().StringVar(&encoding, "encoding", "", "CSV input encoding, e.g. windows-1252")
	rootCmd.Flags().StringVar(&delimiter, "delimiter", "", "CSV field delimiter (default: comma, tab for .tsv)")
	rootCmd.Flags().BoolVar(&keepText, "keep-text", false, "Write every CSV field as a String")
	rootCmd.Flags().StringArrayVar(&props, "prop", nil, "Document property as name=value (repeatable)")
	rootCmd.Flags().BoolVar(&defaultProps, "default-props", false, "Add the default document properties")
	rootCmd.Flags().StringVar(&author, "author", xmlss.DefaultAuthor, "Author used by --default-props")
	rootCmd.Flags().BoolVar(&headerStyle, "header-style", false, "Render the first row in bold")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail on malformed attributes and invalid names")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	csvDelimiter, err := parseDelimiter(delimiter)
	if err != nil {
		return err
	}
	properties, err := parseProps(props)
	if err != nil {
		return err
	}

	table, err := source.Extract(args[0], source.Options{
		Sheet:        sheet,
		Range:        cellRange,
		UsePrintArea: printArea,
		DetectTable:  detectTable,
		IncludeLinks: includeLinks,
		CSV: source.CSVOptions{
			Delimiter: csvDelimiter,
			Encoding:  encoding,
			KeepText:  keepText,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Debug("input read", "name", table.Name, "rows", len(table.Rows))

	opts := xmlss.DefaultOptions()
	opts.Strict = strict
	opts.DefaultProperties = &defaultProps
	opts.Author = author
	opts.Logger = logger

	w, err := buildDocument(opts, table.Rows, properties, headerStyle)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if outputPath != "" {
		return w.SaveFile(outputPath)
	}
	_, err = w.WriteTo(cmd.OutOrStdout())
	return err
}

// buildDocument fills a writer with properties, the optional header style and rows.
func buildDocument(opts xmlss.Options, rows [][]xmlss.CellInput, properties []models.Attr, header bool) (*xmlss.Writer, error) {
	w := xmlss.New(opts)
	for _, p := range properties {
		if err := w.SetDocProp(p.Name, p.Value); err != nil {
			return nil, err
		}
	}

	if header && len(rows) > 0 {
		err := w.SetDocStyle(headerStyleID, []models.StyleElement{
			models.Element("Font", "Bold", "1"),
		})
		if err != nil {
			return nil, err
		}
		styled := make([]xmlss.CellInput, len(rows[0]))
		for i, in := range rows[0] {
			styled[i] = withStyle(in, headerStyleID)
		}
		rows = append([][]xmlss.CellInput{styled}, rows[1:]...)
	}

	if err := w.SetData(rows); err != nil {
		return nil, err
	}
	return w, nil
}

// withStyle returns in with an ss:StyleID attribute added.
func withStyle(in xmlss.CellInput, styleID string) xmlss.CellInput {
	attr := xmlss.Attr("ss:StyleID", styleID)
	switch c := in.(type) {
	case xmlss.Scalar:
		return xmlss.Explicit{Value: c.Value, Attributes: attr}
	case xmlss.Tuple:
		return xmlss.Explicit{Value: c.Value, Datatype: c.Datatype, Attributes: attr}
	case xmlss.Explicit:
		if c.Attributes != "" {
			c.Attributes += " "
		}
		c.Attributes += attr
		return c
	}
	return in
}

// parseProps parses name=value pairs.
func parseProps(pairs []string) ([]models.Attr, error) {
	var out []models.Attr
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid property %q (expected name=value)", p)
		}
		out = append(out, models.Attr{Name: name, Value: value})
	}
	return out, nil
}

// parseDelimiter accepts a single character or the names "tab" and "\t".
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter: %q (must be a single character)", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
