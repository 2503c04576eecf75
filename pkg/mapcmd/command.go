// ABOUTME: Map control command model shared by the agent contract and the browser map
// ABOUTME: Defines flyTo, addMarker, clearMarkers, and drawRoute with validation

// Package mapcmd models the commands an agent reply can embed to drive the
// interactive Mapbox GL JS map, and extracts them from free-form LLM text.
//
// The agent is instructed to append a fenced block labeled MAP_COMMANDS
// containing a JSON array of commands. The browser page executes whatever
// commands survive extraction and validation.
package mapcmd

import "fmt"

// Command types understood by the browser map page.
const (
	TypeFlyTo        = "flyTo"
	TypeAddMarker    = "addMarker"
	TypeClearMarkers = "clearMarkers"
	TypeDrawRoute    = "drawRoute"
)

// LngLat is a WGS84 coordinate in Mapbox's lng-first order.
type LngLat struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Data carries the per-type command payload. Field usage by type:
//
//	flyTo:        Center (required), Zoom, Pitch, Bearing
//	addMarker:    Location (required), Color, Popup
//	clearMarkers: none
//	drawRoute:    Coordinates (required, >= 2 lng/lat pairs), Color
type Data struct {
	Center      *LngLat     `json:"center,omitempty"`
	Zoom        *float64    `json:"zoom,omitempty"`
	Pitch       *float64    `json:"pitch,omitempty"`
	Bearing     *float64    `json:"bearing,omitempty"`
	Location    *LngLat     `json:"location,omitempty"`
	Color       string      `json:"color,omitempty"`
	Popup       string      `json:"popup,omitempty"`
	Coordinates [][]float64 `json:"coordinates,omitempty"`
}

// Command is a single map instruction as emitted by the agent.
type Command struct {
	Type string `json:"type"`
	Data *Data  `json:"data,omitempty"`
}

// Validate checks the command is well-formed enough for the browser to
// execute. Unknown types are rejected so a hallucinated command never
// reaches the map.
func (c Command) Validate() error {
	switch c.Type {
	case TypeFlyTo:
		if c.Data == nil || c.Data.Center == nil {
			return fmt.Errorf("flyTo command requires data.center")
		}
	case TypeAddMarker:
		if c.Data == nil || c.Data.Location == nil {
			return fmt.Errorf("addMarker command requires data.location")
		}
	case TypeClearMarkers:
		// No payload.
	case TypeDrawRoute:
		if c.Data == nil || len(c.Data.Coordinates) < 2 {
			return fmt.Errorf("drawRoute command requires at least 2 coordinates")
		}
		for i, pair := range c.Data.Coordinates {
			if len(pair) != 2 {
				return fmt.Errorf("drawRoute coordinate %d must be a [lng, lat] pair", i)
			}
		}
	default:
		return fmt.Errorf("unknown map command type %q", c.Type)
	}
	return nil
}
