// Package fixture provides item catalogues for driving the shop: the classic
// built-in catalogue and JSON fixture files.
package fixture

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/validation"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// ErrInvalidFixture is returned when a fixture parses but describes unusable items
var ErrInvalidFixture = errors.New("invalid fixture")

// File is the JSON layout of a fixture
type File struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Items       []Def  `json:"items"`
}

// Def is a single item definition in a fixture
type Def struct {
	Name    string `json:"name" validate:"required,max=200"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// Loader reads item fixtures
type Loader interface {
	Load(path string) ([]*domain.Item, error)
	Parse(data []byte, source string) ([]*domain.Item, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a Loader that validates against the embedded schemas
func NewLoader() Loader {
	schemas, err := fs.Sub(schemaFiles, "schemas")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return &loader{
		schemaValidator: validation.NewSchemaValidator(schemas),
		validate:        validator.New(),
	}
}

// Load reads, validates and decodes a fixture file
func (l *loader) Load(path string) ([]*domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFixtureFailed, err)
	}
	return l.Parse(data, path)
}

// Parse validates and decodes fixture bytes; source names them in errors
func (l *loader) Parse(data []byte, source string) ([]*domain.Item, error) {
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaName); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaValidationFailed, source, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFixtureFailed, err)
	}

	items := make([]*domain.Item, 0, len(file.Items))
	for i := range file.Items {
		def := &file.Items[i]
		def.Name = norm.NFC.String(def.Name)

		if err := l.validate.Struct(def); err != nil {
			return nil, fmt.Errorf(ErrFmtItemAtIndexInvalid, ErrInvalidFixture, i, err)
		}
		items = append(items, domain.NewItem(def.Name, def.SellIn, def.Quality))
	}

	return items, nil
}
