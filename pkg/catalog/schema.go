// pkg/catalog/schema.go
package catalog

type Catalog struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"maxParticipants"`
	Participants    []string `json:"participants"`
}

// catalogSchema is the JSON schema every catalog file must satisfy before
// it replaces the built-in seed.
const catalogSchema = `{
	"type": "object",
	"required": ["activities"],
	"properties": {
		"version": {"type": "string"},
		"lastUpdated": {"type": "string"},
		"activities": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "description", "schedule", "maxParticipants"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"schedule": {"type": "string"},
					"maxParticipants": {"type": "integer", "minimum": 1},
					"participants": {
						"type": "array",
						"items": {"type": "string", "minLength": 1}
					}
				}
			}
		}
	}
}`
