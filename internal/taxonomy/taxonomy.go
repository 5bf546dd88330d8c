package taxonomy

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

var ErrInvalidCategory = errors.New("invalid taxonomy category")

type Subcategory struct {
	Name   string   `json:"name" yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}

type Category struct {
	Name          string        `json:"name" yaml:"name"`
	Description   string        `json:"description" yaml:"description"`
	Subcategories []Subcategory `json:"subcategories" yaml:"subcategories"`
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}
	seen := make(map[string]struct{}, len(c.Subcategories))
	for _, s := range c.Subcategories {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("%w: subcategory name is required", ErrInvalidCategory)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate subcategory %q", ErrInvalidCategory, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

type TagSeed struct {
	Name        string `yaml:"name"`
	Color       string `yaml:"color"`
	Description string `yaml:"description"`
}

// Document is the on-disk shape of a taxonomy file.
type Document struct {
	Categories []Category        `yaml:"categories"`
	Synonyms   map[string]string `yaml:"synonyms"`
	Tags       []TagSeed         `yaml:"tags"`
}

func Default() Document {
	doc, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("taxonomy: embedded default is invalid: %v", err))
	}
	return doc
}

// Load reads a taxonomy override file. An empty path returns the built-in
// catalog.
func Load(path string) (Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read taxonomy file: %w", err)
	}
	doc, err := Parse(b)
	if err != nil {
		return Document{}, fmt.Errorf("parse taxonomy file %s: %w", path, err)
	}
	return doc, nil
}

func Parse(b []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return Document{}, err
	}
	seen := make(map[string]struct{}, len(doc.Categories))
	for _, c := range doc.Categories {
		if err := c.Validate(); err != nil {
			return Document{}, err
		}
		if _, ok := seen[c.Name]; ok {
			return Document{}, fmt.Errorf("%w: duplicate category %q", ErrInvalidCategory, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	if doc.Synonyms == nil {
		doc.Synonyms = map[string]string{}
	}
	return doc, nil
}
