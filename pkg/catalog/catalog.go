// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalid marks catalogs that were readable but failed validation.
var ErrInvalid = errors.New("invalid catalog")

// Load reads, schema-validates, and decodes a catalog file. The file must
// pass validation before any of it is trusted: duplicate activity names and
// duplicate roster entries are also rejected here so the registry never
// starts from a state that violates its invariants.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := validate(data); err != nil {
		return nil, err
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, err
	}

	if err := checkUniqueness(&cat); err != nil {
		return nil, err
	}

	return &cat, nil
}

func validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}

	return nil
}

func checkUniqueness(cat *Catalog) error {
	names := make(map[string]bool, len(cat.Activities))
	for _, act := range cat.Activities {
		if names[act.Name] {
			return fmt.Errorf("%w: duplicate activity name %q", ErrInvalid, act.Name)
		}
		names[act.Name] = true

		seen := make(map[string]bool, len(act.Participants))
		for _, email := range act.Participants {
			if seen[email] {
				return fmt.Errorf("%w: duplicate participant %q in activity %q", ErrInvalid, email, act.Name)
			}
			seen[email] = true
		}
	}
	return nil
}
