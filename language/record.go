// SPDX-License-Identifier: MIT
// Package: runcsp/language
//
// File: record.go
// Role: declarative persistence of a Language as {domain_size, relations}.
// Policy:
//   - Only the declared pairs are written; indicator tables are always rebuilt by
//     New on load, so Load(Save(L)) is equal to L by construction.
//   - JSON is written with a 4-space indent; YAML goes through ghodss/yaml, which
//     reuses the json tags so both formats share one schema.

package language

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
)

// Format selects the textual encoding of a Record.
type Format int

const (
	// FormatJSON is the default record encoding.
	FormatJSON Format = iota
	// FormatYAML encodes the same schema as YAML.
	FormatYAML
)

// String returns "json" or "yaml".
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath picks FormatYAML for .yaml/.yml files and FormatJSON otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Record is the declarative form of a Language.
// Pairs are kept as plain integer lists so a malformed entry (not a 2-tuple)
// is detected instead of silently truncated or zero-filled.
type Record struct {
	DomainSize int                `json:"domain_size"`
	Relations  map[string][][]int `json:"relations"`
}

// Record returns the declarative form of l.
func (l *Language) Record() Record {
	rec := Record{DomainSize: l.domainSize, Relations: make(map[string][][]int, len(l.relations))}
	for name, pairs := range l.relations {
		rows := make([][]int, len(pairs))
		for i, p := range pairs {
			rows[i] = []int{p[0], p[1]}
		}
		rec.Relations[name] = rows
	}

	return rec
}

// FromRecord validates rec and constructs the Language it describes.
// Errors: ErrMalformedLanguage for entries that are not 2-tuples, plus every
// error New can return.
func FromRecord(rec Record) (*Language, error) {
	relations := make(map[string][]Pair, len(rec.Relations))
	for name, rows := range rec.Relations {
		pairs := make([]Pair, len(rows))
		for i, row := range rows {
			if len(row) != 2 {
				return nil, fmt.Errorf("FromRecord: relation %q entry #%d has %d values, want 2: %w",
					name, i, len(row), ErrMalformedLanguage)
			}
			pairs[i] = Pair{row[0], row[1]}
		}
		relations[name] = pairs
	}

	return New(rec.DomainSize, relations)
}

// Marshal encodes the declarative record of l.
func (l *Language) Marshal(format Format) ([]byte, error) {
	rec := l.Record()
	switch format {
	case FormatJSON:
		return json.MarshalIndent(rec, "", "    ")
	case FormatYAML:
		return yaml.Marshal(rec)
	default:
		return nil, fmt.Errorf("Marshal: %s: %w", format, ErrUnsupportedFormat)
	}
}

// Unmarshal decodes a record and constructs its Language.
func Unmarshal(data []byte, format Format) (*Language, error) {
	var rec Record
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("Unmarshal: json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("Unmarshal: yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("Unmarshal: %s: %w", format, ErrUnsupportedFormat)
	}

	return FromRecord(rec)
}

// Save writes the declarative record of l to path. The format follows the file
// extension (see FormatForPath).
func (l *Language) Save(path string) error {
	data, err := l.Marshal(FormatForPath(path))
	if err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}

// Load reads a record written by Save and reconstructs the Language,
// recomputing every indicator table.
func Load(path string) (*Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	l, err := Unmarshal(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return l, nil
}
