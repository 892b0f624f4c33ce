package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/xeipuuv/gojsonschema"
)

// promptSchema describes the shape of one stored record. Lengths are checked
// by domain.Prompt.Validate so that shape errors and constraint errors stay
// distinguishable.
const promptSchema = `{
	"type": "object",
	"required": ["number", "unit_of_measure", "place", "adjective", "noun"],
	"properties": {
		"number": {"type": "number"},
		"unit_of_measure": {"type": "string"},
		"place": {"type": "string"},
		"adjective": {"type": "string"},
		"noun": {"type": "string"}
	}
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(promptSchema))
})

func checkShape(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling prompt schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	var errs *multierror.Error
	for _, desc := range result.Errors() {
		errs = multierror.Append(errs, errors.New(desc.String()))
	}
	return errs.ErrorOrNil()
}
