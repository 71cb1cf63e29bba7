// Package schema generates the JSON Schema of the hellosrv configuration.
package schema

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/yeisme/hellosrv/pkg/configs"
)

// GenConfigSchema generates the JSON schema for the entire application configuration and writes it to the provided writer.
func GenConfigSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "mapstructure",
	}
	configSchema := reflector.Reflect(configs.Config{})
	configSchema.Title = "hellosrv configuration"

	schemaJSON, err := json.MarshalIndent(configSchema, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(schemaJSON))
	return err
}
