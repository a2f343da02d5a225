package format

import (
	"errors"
	"fmt"
)

// Category classifies a formatting failure. Callers branch on the category
// rather than on concrete error types, mirroring how the CLI layer turns
// failures into user-facing messages.
type Category string

const (
	// CategoryUnsupportedFormat indicates a format token outside the supported set.
	CategoryUnsupportedFormat Category = "UnsupportedFormat"
	// CategoryNoDataProvided indicates an empty sequence was given to the table renderer.
	CategoryNoDataProvided Category = "NoDataProvided"
	// CategoryTableFormatRequiresDict indicates table input that is not a mapping
	// or a sequence of mappings.
	CategoryTableFormatRequiresDict Category = "TableFormatRequiresDict"
	// CategoryHeadersMustBeList indicates explicit headers that could not be
	// parsed as a list. Only reachable through untyped boundaries such as
	// CLI flag parsing; the typed API makes this state unrepresentable.
	CategoryHeadersMustBeList Category = "HeadersMustBeList"
	// CategoryMissingHeaderInRow indicates a requested header absent from a row.
	CategoryMissingHeaderInRow Category = "MissingHeaderInRow"
	// CategoryJSONFormattingFailed indicates the JSON encoder rejected the data.
	CategoryJSONFormattingFailed Category = "JsonFormattingFailed"
	// CategoryYAMLFormattingFailed indicates the YAML encoder rejected the data.
	CategoryYAMLFormattingFailed Category = "YamlFormattingFailed"
	// CategoryCSVFormattingFailed indicates the CSV writer rejected the data.
	CategoryCSVFormattingFailed Category = "CsvFormattingFailed"
	// CategoryExportFailed indicates a filesystem write failure during export.
	CategoryExportFailed Category = "ExportFailed"
)

// Error is a category-tagged formatting failure. It carries a human-readable
// message and, where a collaborator (encoder, filesystem) failed, the
// underlying error verbatim.
type Error struct {
	// Category classifies the failure for caller branching.
	Category Category

	// Message describes the failure.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates a category-tagged error with a formatted message.
func newError(category Category, messageFmt string, args ...interface{}) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(messageFmt, args...),
	}
}

// wrapError creates a category-tagged error around an underlying failure.
func wrapError(category Category, err error, messageFmt string, args ...interface{}) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(messageFmt, args...),
		Err:      err,
	}
}

// IsCategory reports whether err is (or wraps) a formatting Error with the
// given category.
//
// Example:
//
//	out, err := formatter.Format(data, "xml", format.Options{})
//	if format.IsCategory(err, format.CategoryUnsupportedFormat) {
//	    // fall back to plain output
//	}
func IsCategory(err error, category Category) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Category == category
}

// CategoryOf returns the category of a formatting error, or the empty string
// if err is not a formatting Error.
func CategoryOf(err error) Category {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Category
	}
	return ""
}
