package inline

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON schema of resolve output, or of list output when listing is set.
func Schema(listing bool) *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "candidate", "output", "listing", "tier":
			return filepath.Base(t.PkgPath()) + "." + name
		}
		return name
	}

	if listing {
		return reflector.Reflect(&Listing{})
	}
	return reflector.Reflect(&Output{})
}
