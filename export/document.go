// SPDX-License-Identifier: MIT

// Package export wraps a generated dataset in a self-describing document
// and encodes it as JSON or YAML.
//
// The document is an interchange envelope for the CLI and HTTP surfaces:
// it carries the config and seed that produced the entries, so a consumer
// can re-run treedata.Verify (or regenerate) without out-of-band context.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/chwzr/ag-grid-treedata/treedata"
)

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps "json", "yaml" or "yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("export: unknown format %q", s)
	}
}

// Document is one generated dataset plus its provenance.
type Document struct {
	ID          string           `json:"id" yaml:"id"`
	GeneratedAt time.Time        `json:"generatedAt" yaml:"generatedAt"`
	Seed        *int64           `json:"seed,omitempty" yaml:"seed,omitempty"`
	Config      treedata.Config  `json:"config" yaml:"config"`
	Entries     []treedata.Entry `json:"entries" yaml:"entries"`
}

// NewDocument stamps entries with a fresh v4 ID and the current UTC time.
// seed is nil when the dataset came from an unseeded source.
func NewDocument(cfg treedata.Config, entries []treedata.Entry, seed *int64) Document {
	return Document{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Seed:        seed,
		Config:      cfg,
		Entries:     entries,
	}
}

// Verify runs treedata.Verify over the document's entries and config.
func (d Document) Verify() error {
	return treedata.Verify(d.Entries, d.Config)
}

// Encode writes doc to w in format f.
func Encode(w io.Writer, doc Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("export: unknown format %q", f)
	}
}

// Decode reads one document in format f from r and checks its ID.
func Decode(r io.Reader, f Format) (Document, error) {
	var doc Document

	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	default:
		return Document{}, fmt.Errorf("export: unknown format %q", f)
	}
	if err != nil {
		return Document{}, fmt.Errorf("export: decode %s: %w", f, err)
	}

	if _, err := uuid.Parse(doc.ID); err != nil {
		return Document{}, fmt.Errorf("export: document id %q: %w", doc.ID, err)
	}

	return doc, nil
}
