package scene

import (
	"encoding/json"
	"io"
	"os"

	"github.com/perchui/perch/pkg/errors"
	"github.com/perchui/perch/pkg/geometry"
)

// WriteResult encodes computed coordinates as indented JSON and writes them
// to w. The output is the public result contract: top and left only.
func WriteResult(at geometry.Point, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(at); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode result")
	}
	return nil
}

// ExportResult writes computed coordinates to a JSON file at path.
// This is a convenience wrapper around [WriteResult] for file-based output.
func ExportResult(at geometry.Point, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteResult(at, f)
}

// WriteJSON encodes a scene as indented JSON and writes it to w. The output
// can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(sc *Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode scene")
	}
	return nil
}
