// ABOUTME: Structured Location record returned by the geocoding demos
// ABOUTME: Schema generation and parsing of structured agent replies

package guide

import (
	"encoding/json"
	"fmt"

	"github.com/lexlapax/go-llms/pkg/schema/adapter/reflection"
	sdomain "github.com/lexlapax/go-llms/pkg/schema/domain"
	"github.com/lexlapax/go-llms/pkg/structured/processor"
)

// Location is the structured output the demos request from the agent after
// it has gathered data with the Mapbox tools.
type Location struct {
	Name        string  `json:"name" validate:"required" description:"Name of the location"`
	Latitude    float64 `json:"latitude" validate:"required" description:"Latitude coordinate"`
	Longitude   float64 `json:"longitude" validate:"required" description:"Longitude coordinate"`
	Address     string  `json:"address,omitempty" description:"Full address"`
	Country     string  `json:"country,omitempty" description:"Country name"`
	Description string  `json:"description,omitempty" description:"Brief description"`
}

// LocationSchema generates the JSON schema the agent reply is validated
// against.
func LocationSchema() (*sdomain.Schema, error) {
	return reflection.GenerateSchema(Location{})
}

// ParseLocation extracts the JSON payload from a free-form agent reply and
// decodes it into a Location. Models often wrap structured replies in
// fenced code blocks or narration; the processor's extractor handles both.
func ParseLocation(reply string) (*Location, error) {
	raw := processor.ExtractJSON(reply)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object found in agent reply")
	}

	var loc Location
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return nil, fmt.Errorf("decoding location: %w", err)
	}
	if loc.Name == "" {
		return nil, fmt.Errorf("location reply is missing the required name field")
	}

	return &loc, nil
}

// String formats the location the way the console demos print it.
func (l *Location) String() string {
	s := fmt.Sprintf("%s (%f, %f)", l.Name, l.Latitude, l.Longitude)
	if l.Address != "" {
		s += "\n  " + l.Address
	}
	if l.Country != "" {
		s += "\n  " + l.Country
	}
	if l.Description != "" {
		s += "\n  " + l.Description
	}
	return s
}
