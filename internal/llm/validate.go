package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compiled schemas by Schema.Name.
var compiledSchemas sync.Map

// Validate checks raw against the schema. Failures are *ErrInvalidResponse
// carrying the rejected content. A nil schema accepts anything.
func (s *Schema) Validate(raw json.RawMessage) error {
	if s == nil {
		return nil
	}
	reject := func(format string, args ...any) error {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf(format, args...)}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return reject("not JSON: %w", err)
	}
	compiled, err := s.compiled()
	if err != nil {
		return reject("schema %q: %w", s.Name, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return reject("%s: %w", s.Name, err)
	}
	return nil
}

func (s *Schema) compiled() (*jsonschema.Schema, error) {
	if c, ok := compiledSchemas.Load(s.Name); ok {
		return c.(*jsonschema.Schema), nil
	}

	// The compiler wants decoded JSON values, so round-trip the Go map.
	def, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, err
	}

	url := "mem://schemas/" + s.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	actual, _ := compiledSchemas.LoadOrStore(s.Name, compiled)
	return actual.(*jsonschema.Schema), nil
}
