package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/floorplan/layout"
)

// ErrInvalidSpec wraps room list decoding failures.
var ErrInvalidSpec = errors.New("config: invalid room list")

type specDoc struct {
	Rooms []layout.RoomSpec `yaml:"rooms"`
}

// LoadSpecs reads a room list from path.
func LoadSpecs(path string) ([]layout.RoomSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	defer f.Close()

	return ParseSpecs(f)
}

// ParseSpecs accepts either a bare sequence of {type, area} entries or a
// mapping with a rooms key. Entries are validated by layout.ValidateSpecs
// later, not here.
func ParseSpecs(r io.Reader) ([]layout.RoomSpec, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	node := &doc
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		node = doc.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		var specs []layout.RoomSpec
		if err := node.Decode(&specs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
		}
		return specs, nil
	case yaml.MappingNode:
		var d specDoc
		if err := node.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
		}
		return d.Rooms, nil
	default:
		return nil, fmt.Errorf("%w: expected a list or a rooms mapping", ErrInvalidSpec)
	}
}
