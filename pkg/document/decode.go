package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-scals/scals/pkg/errors"
	"github.com/go-scals/scals/pkg/state"
)

// DecodeJSON parses a JSON document and validates its schema version.
func DecodeJSON(data []byte) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.New("document.DecodeJSON", errors.KindDecode,
			fmt.Errorf("parse document: %w", err))
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeYAML parses a YAML document. The YAML tree is normalized to the same
// dynamic shape encoding/json produces and then decoded through the JSON
// path, so both formats share one set of field names and defaults.
func DecodeYAML(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("document.DecodeYAML", errors.KindDecode,
			fmt.Errorf("parse document: %w", err))
	}
	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.New("document.DecodeYAML", errors.KindDecode,
			fmt.Errorf("normalize document: %w", err))
	}
	return DecodeJSON(normalized)
}

func (d *Document) validate() error {
	if err := CheckVersion(d.SchemaVersion); err != nil {
		return err
	}
	if d.Root == nil {
		return errors.New("document.Decode", errors.KindDecode,
			fmt.Errorf("document has no root node"))
	}
	if !d.State.IsNull() && d.State.Kind() != state.KindObject {
		return errors.New("document.Decode", errors.KindDecode,
			fmt.Errorf("state seed must be an object, got %s", d.State.Kind()))
	}
	return nil
}
