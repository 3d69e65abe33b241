// Package output dispatches reports to the text, JSON, plain and CSV formatters
// and provides the terminal helpers they share.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Format is the output format requested by the user.
type Format string

// Output format constants supported by the --output flag.
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
	FormatCSV   Format = "csv"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatText, FormatJSON, FormatPlain, FormatCSV}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	for _, v := range Formats {
		if f == v {
			return true
		}
	}
	return false
}

// TextFormattable results know how to render themselves for humans.
type TextFormattable interface {
	WriteText(w io.Writer) error
}

// PlainFormattable results know how to render themselves as plain text (one record per line).
// Used for piping output to other tools.
type PlainFormattable interface {
	WritePlain(w io.Writer) error
}

// CSVFormattable results know how to render themselves as CSV rows with a header.
type CSVFormattable interface {
	WriteCSV(w io.Writer) error
}

// Write dispatches a result to the appropriate formatter.
// JSON uses json.Encoder with indentation; the other formats require the
// result to implement the matching Formattable interface.
func Write(w io.Writer, format Format, result any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	case FormatText:
		tf, ok := result.(TextFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support text output", result)
		}
		return tf.WriteText(w)
	case FormatPlain:
		pf, ok := result.(PlainFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support plain output", result)
		}
		return pf.WritePlain(w)
	case FormatCSV:
		cf, ok := result.(CSVFormattable)
		if !ok {
			return fmt.Errorf("result type %T does not support csv output", result)
		}
		return cf.WriteCSV(w)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

// WriteFile renders result in the given format into path, replacing any
// existing file.
func WriteFile(path string, format Format, result any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	if err := Write(f, format, result); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
