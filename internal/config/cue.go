// CUE schema validation code
package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

// ValidateWithCue validates YAML bytes against the definition def of a CUE
// schema source.
func ValidateWithCue(name string, yamlBytes []byte, schemaSrc, def string) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSrc)
	if schema.Err() != nil {
		return fmt.Errorf("cannot compile CUE schema: %w", schema.Err())
	}
	schema = schema.LookupPath(cue.ParsePath(def))
	if !schema.Exists() {
		return fmt.Errorf("CUE schema has no definition %s", def)
	}

	file, err := cueyaml.Extract(name, yamlBytes)
	if err != nil {
		return fmt.Errorf("cannot parse YAML %s: %w", name, err)
	}
	configVal := ctx.BuildFile(file)
	if configVal.Err() != nil {
		return fmt.Errorf("cannot build YAML %s: %w", name, configVal.Err())
	}

	// Merge values with schema
	final := schema.Unify(configVal)
	if err := final.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
