// Package xmlss writes Microsoft Excel 2003 XML Spreadsheet documents.
package xmlss

import (
	"log/slog"
	"time"
)

// DefaultAuthor is used for the default document properties when Options.Author is empty.
const DefaultAuthor = "SimpleExcel"

// Options configures writer behavior.
type Options struct {
	// Strict rejects malformed cell attribute text and invalid XML names
	// instead of passing them through.
	Strict bool
	// DefaultProperties pre-populates Author, Company, Created, Keywords,
	// LastAuthor and Version. If nil, properties start empty.
	DefaultProperties *bool
	// Author is the value used for the default properties.
	Author string
	// Now returns the time used for the Created property. Defaults to time.Now.
	Now func() time.Time
	// Logger receives debug records for silent normalizations.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default writer options.
func DefaultOptions() Options {
	return Options{
		Author: DefaultAuthor,
	}
}

// ShouldSetDefaultProperties returns whether the default properties are applied.
func (o Options) ShouldSetDefaultProperties() bool {
	if o.DefaultProperties != nil {
		return *o.DefaultProperties
	}
	return false
}

func (o Options) author() string {
	if o.Author == "" {
		return DefaultAuthor
	}
	return o.Author
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
