// ABOUTME: Converts MCP JSON-schema tool input definitions to framework schemas
// ABOUTME: Maps types, properties, enums, arrays, and numeric bounds recursively

package mcptool

import (
	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	sdomain "github.com/lexlapax/go-llms/pkg/schema/domain"
)

// ConvertSchema translates an MCP tool input schema into the agent
// framework's schema type, which the agent embeds in tool documentation
// for the model. A nil input yields an empty object schema so tools
// without parameters still present a valid contract.
func ConvertSchema(js *jsonschema.Schema) *sdomain.Schema {
	if js == nil {
		return &sdomain.Schema{Type: "object"}
	}

	s := &sdomain.Schema{
		Type:        js.Type,
		Description: js.Description,
		Title:       js.Title,
		Required:    js.Required,
	}
	if s.Type == "" {
		s.Type = "object"
	}

	if len(js.Properties) > 0 {
		s.Properties = make(map[string]sdomain.Property, len(js.Properties))
		for name, prop := range js.Properties {
			s.Properties[name] = convertProperty(prop)
		}
	}

	return s
}

func convertProperty(js *jsonschema.Schema) sdomain.Property {
	if js == nil {
		return sdomain.Property{}
	}

	p := sdomain.Property{
		Type:        js.Type,
		Format:      js.Format,
		Description: js.Description,
		Minimum:     js.Minimum,
		Maximum:     js.Maximum,
		Required:    js.Required,
	}

	for _, v := range js.Enum {
		if s, ok := v.(string); ok {
			p.Enum = append(p.Enum, s)
		}
	}

	if js.Items != nil {
		items := convertProperty(js.Items)
		p.Items = &items
	}

	if len(js.Properties) > 0 {
		p.Properties = make(map[string]sdomain.Property, len(js.Properties))
		for name, prop := range js.Properties {
			p.Properties[name] = convertProperty(prop)
		}
	}

	return p
}
