// Package output writes the single JSON document each command produces,
// plus the human-readable scan summary.
package output

import (
	"encoding/json"
	"io"
)

// WriteDocument encodes doc as a single JSON document to w.
// Pretty output uses two-space indentation.
func WriteDocument(w io.Writer, pretty bool, doc any) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(doc)
}

// WriteError writes the error object contract, {"error": message}, to w.
// Nothing else is ever emitted on the error path.
func WriteError(w io.Writer, err error) {
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
