// Package treefile reads node trees from YAML or JSON documents.
//
// A document holds one tree in the wire shape: text nodes are strings and
// elements are mappings with a type and props, children under props:
//
//	type: div
//	props:
//	  id: main
//	  children:
//	    - type: h1
//	      props: {children: [Hello]}
//	    - plain text
package treefile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/vango-dev/vdiff/internal/errors"
	"github.com/vango-dev/vdiff/pkg/vdom"
)

// Format is a document syntax.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", errors.New("E303").WithDetailf("%s has no .json, .yaml or .yml extension", path)
}

// Load reads the tree at path on fs. An empty or null document is the nil
// tree.
func Load(fs afero.Fs, path string) (*vdom.VNode, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E302").WithDetail(path)
		}
		return nil, errors.New("E302").WithDetail(path).Wrap(err)
	}
	node, err := Decode(data, format)
	if err != nil {
		return nil, errors.FromError(err, "E301").WithSuggestion("check " + path)
	}
	return node, nil
}

// Decode parses a document in the given format.
func Decode(data []byte, format Format) (*vdom.VNode, error) {
	var raw any
	switch format {
	case JSON:
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil, nil
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.New("E301").Wrap(err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.New("E301").Wrap(err)
		}
	default:
		return nil, errors.New("E303").WithDetailf("format %q", format)
	}
	return vdom.FromValue(raw)
}

// Encode writes node as a document in the given format.
func Encode(node *vdom.VNode, format Format) ([]byte, error) {
	data, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return nil, err
	}
	switch format {
	case JSON:
		return append(data, '\n'), nil
	case YAML:
		return yaml.JSONToYAML(data)
	}
	return nil, errors.New("E303").WithDetailf("format %q", format)
}

// Save writes node to path on fs in the format its extension implies.
func Save(fs afero.Fs, path string, node *vdom.VNode) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(node, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return afero.WriteFile(fs, path, data, 0644)
}
