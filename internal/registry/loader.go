package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	commonerrors "dukapos-web/internal/common/errors"
	"dukapos-web/internal/common/logger"
)

// JSON Schemas for operator-supplied override files. An override replaces the
// whole built-in table for its registry, so the schemas are strict about the
// fields the engines rely on.
const locationsSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["slug", "name", "county", "business_density", "mobile_money_usage", "priority"],
		"properties": {
			"slug": {"type": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
			"name": {"type": "string", "minLength": 1},
			"county": {"type": "string", "minLength": 1},
			"population": {"type": "integer", "minimum": 0},
			"business_density": {"enum": ["high", "medium", "low"]},
			"mobile_money_usage": {"enum": ["high", "medium", "low"]},
			"priority": {"type": "integer", "minimum": 1, "maximum": 10}
		}
	}
}`

const industriesSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["slug", "singular", "plural", "solutions", "priority"],
		"properties": {
			"slug": {"type": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
			"singular": {"type": "string", "minLength": 1},
			"plural": {"type": "string", "minLength": 1},
			"solutions": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "object",
					"required": ["pain_point", "feature"],
					"properties": {
						"pain_point": {"type": "string", "minLength": 1},
						"feature": {"type": "string", "minLength": 1}
					}
				}
			},
			"keywords": {"type": "array", "items": {"type": "string"}},
			"priority": {"type": "integer", "minimum": 1, "maximum": 10}
		}
	}
}`

const intentsSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["slug", "action", "templates"],
		"properties": {
			"slug": {"type": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
			"action": {"type": "string", "minLength": 1},
			"triggers": {"type": "array", "items": {"type": "string"}},
			"templates": {
				"type": "object",
				"required": ["h1", "title", "meta_description"],
				"properties": {
					"h1": {"type": "string", "minLength": 1},
					"title": {"type": "string", "minLength": 1},
					"meta_description": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

// LoadWithOverrides returns the built-in tables with any valid override files
// from dir applied. An invalid or unreadable file is logged and skipped; the
// built-in table for that registry stays in force. A missing dir is not an
// error.
func LoadWithOverrides(dir string, log logger.Logger) *Registries {
	regs := Default()
	if dir == "" {
		return regs
	}

	if locs, ok := loadOverride[Location](filepath.Join(dir, "locations.json"), locationsSchema, log); ok {
		regs.Locations = NewLocationRegistry(locs)
	}
	if inds, ok := loadOverride[Industry](filepath.Join(dir, "industries.json"), industriesSchema, log); ok {
		regs.Industries = NewIndustryRegistry(inds)
	}
	if ints, ok := loadOverride[Intent](filepath.Join(dir, "intents.json"), intentsSchema, log); ok {
		// The default intent must always resolve; refuse an override that
		// drops it.
		hasDefault := false
		for _, in := range ints {
			if in.Slug == DefaultIntentSlug {
				hasDefault = true
				break
			}
		}
		if !hasDefault {
			log.Warn("intent override rejected", map[string]interface{}{
				"file":   filepath.Join(dir, "intents.json"),
				"reason": fmt.Sprintf("missing default intent %q", DefaultIntentSlug),
			})
		} else {
			regs.Intents = NewIntentRegistry(ints)
		}
	}

	return regs
}

func loadOverride[T any](path, schema string, log logger.Logger) ([]T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("registry override unreadable", map[string]interface{}{
				"file": path, "error": err.Error(),
			})
		}
		return nil, false
	}

	if err := validateAgainstSchema(data, schema); err != nil {
		stdErr := commonerrors.NewOverrideInvalidError(path, err.Error())
		log.WithError(stdErr).Warn("registry override rejected", map[string]interface{}{
			"file": path,
		})
		return nil, false
	}

	var entries []T
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn("registry override rejected", map[string]interface{}{
			"file": path, "error": err.Error(),
		})
		return nil, false
	}

	log.Info("registry override applied", map[string]interface{}{
		"file": path, "entries": len(entries),
	})
	return entries, true
}

func validateAgainstSchema(document []byte, schema string) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("schema violations: %s", strings.Join(msgs, "; "))
	}
	return nil
}
