// Package templates reads board layouts from TOML files.
//
// A template names the board and lists its columns in order:
//
//	name = "Release"
//
//	[[columns]]
//	name = "Backlog"
//	kind = "initial"
//
//	[[columns]]
//	name = "Shipped"
//	kind = "final"
//
// A column's order defaults to its position in the file.
package templates

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/thenoetrevino/taskboard/internal/models"
)

// Template errors
var (
	ErrInvalidTemplate = errors.New("invalid board template")
	ErrNoColumns       = errors.New("template defines no columns")
)

type fileTemplate struct {
	Name    string       `toml:"name"`
	Columns []fileColumn `toml:"columns"`
}

type fileColumn struct {
	Name  string `toml:"name"`
	Kind  string `toml:"kind"`
	Order *int   `toml:"order"`
}

// LoadFile decodes the template at path into an unsaved board.
func LoadFile(path string) (*models.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	board, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("load template %s: %w", path, err)
	}
	return board, nil
}

// Parse decodes a template from TOML text.
func Parse(data string) (*models.Board, error) {
	var raw fileTemplate
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	return build(raw, meta)
}

func build(raw fileTemplate, meta toml.MetaData) (*models.Board, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidTemplate, strings.Join(keys, ", "))
	}
	if len(raw.Columns) == 0 {
		return nil, ErrNoColumns
	}

	board := &models.Board{Name: strings.TrimSpace(raw.Name)}
	for i, c := range raw.Columns {
		kind, err := models.ParseColumnKind(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: column %d (%q): %w", ErrInvalidTemplate, i+1, c.Name, err)
		}
		order := i
		if c.Order != nil {
			order = *c.Order
		}
		board.Columns = append(board.Columns, &models.Column{
			Name:  strings.TrimSpace(c.Name),
			Order: order,
			Kind:  kind,
		})
	}
	return board, nil
}
