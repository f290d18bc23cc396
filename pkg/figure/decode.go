package figure

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pgfplots/pkg/errors"
)

// Format is a figure file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported figure file: %s (use .json, .yaml or .toml)", path)
}

// Load reads and decodes a figure file.
func Load(path string) (*Figure, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	return Decode(data, format)
}

// Decode parses data in the given format. Unknown fields are an error.
func Decode(data []byte, format Format) (*Figure, error) {
	var fig Figure
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fig); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json figure")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fig); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml figure")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &fig)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml figure")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "decode toml figure: unknown field %s", undecoded[0])
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown figure format: %s", format)
	}
	return &fig, nil
}
