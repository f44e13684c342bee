package scene

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/perchui/perch/pkg/errors"
)

// ReadJSON decodes a JSON scene from r.
//
// The input must be a JSON object with "viewport", "anchor", and "floating"
// objects and an optional "settings" object. ReadJSON validates the decoded
// geometry; settings enums are validated later when the scene is resolved.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Scene, error) {
	var sc Scene
	if err := json.NewDecoder(r).Decode(&sc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode JSON scene")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// ReadTOML decodes a TOML scene from r. See ReadJSON for the validation
// performed on the result.
func ReadTOML(r io.Reader) (*Scene, error) {
	var sc Scene
	if _, err := toml.NewDecoder(r).Decode(&sc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode TOML scene")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads a scene file, selecting the decoder from the file extension:
// .toml for TOML, .json for JSON. Any other extension is rejected rather
// than guessed at.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "open %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ReadTOML(f)
	case ".json":
		return ReadJSON(f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported scene format %q (want .toml or .json)", filepath.Ext(path))
	}
}
