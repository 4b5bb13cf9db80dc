package quiz

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed catalog.schema.json
var catalogSchemaJSON []byte

const catalogSchemaURL = "schema://catalog.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// catalogFile is the on-disk JSON layout of a catalog.
type catalogFile struct {
	Normal     []Question  `json:"normal"`
	Detailed   []Question  `json:"detailed"`
	Dimensions []Dimension `json:"dimensions"`
}

// LoadCatalog reads a JSON catalog from r, checks it against the embedded
// schema and then against the structural rules of NewCatalog.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	sch, err := catalogSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("catalog does not match schema: %w", err)
	}

	var f catalogFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(f.Normal, f.Detailed, f.Dimensions)
}

// LoadCatalogFile opens path and calls LoadCatalog.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// MarshalJSON writes the catalog in the same layout LoadCatalog accepts.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(catalogFile{
		Normal:     c.Normal,
		Detailed:   c.Detailed,
		Dimensions: c.Dimensions,
	})
}

func catalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(catalogSchemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(catalogSchemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add catalog schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(catalogSchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile catalog schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}
