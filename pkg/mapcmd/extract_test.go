package mapcmd

import (
	"strings"
	"testing"
)

const flyToBlock = "```MAP_COMMANDS\n" +
	`[{"type": "flyTo", "data": {"center": {"lng": 21.0122, "lat": 52.2297}, "zoom": 15}}]` +
	"\n```"

func TestExtractNoBlock(t *testing.T) {
	text := "The Palace of Culture and Science is at 21.006912, 52.231953."

	clean, cmds, err := Extract(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clean != text {
		t.Errorf("text modified without a block present: %q", clean)
	}
	if len(cmds) != 0 {
		t.Errorf("unexpected commands: %v", cmds)
	}
}

func TestExtractSingleBlock(t *testing.T) {
	text := "Flying to Warsaw!\n\n" + flyToBlock + "\n\nEnjoy the view."

	clean, cmds, err := Extract(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(clean, "MAP_COMMANDS") {
		t.Errorf("block not stripped from display text: %q", clean)
	}
	if !strings.Contains(clean, "Flying to Warsaw!") || !strings.Contains(clean, "Enjoy the view.") {
		t.Errorf("surrounding text lost: %q", clean)
	}

	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	cmd := cmds[0]
	if cmd.Type != TypeFlyTo {
		t.Errorf("unexpected type: %q", cmd.Type)
	}
	if cmd.Data == nil || cmd.Data.Center == nil {
		t.Fatal("missing center")
	}
	if cmd.Data.Center.Lng != 21.0122 || cmd.Data.Center.Lat != 52.2297 {
		t.Errorf("unexpected center: %+v", cmd.Data.Center)
	}
	if cmd.Data.Zoom == nil || *cmd.Data.Zoom != 15 {
		t.Errorf("unexpected zoom: %v", cmd.Data.Zoom)
	}
}

func TestExtractMultipleBlocks(t *testing.T) {
	markerBlock := "```MAP_COMMANDS\n" +
		`[{"type": "addMarker", "data": {"location": {"lng": 21.01, "lat": 52.23}, "color": "#ff0000", "popup": "<strong>Old Town</strong>"}},` +
		`{"type": "clearMarkers"}]` +
		"\n```"
	text := flyToBlock + "\nSome narration.\n" + markerBlock

	clean, cmds, err := Extract(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clean != "Some narration." {
		t.Errorf("unexpected display text: %q", clean)
	}
	if len(cmds) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(cmds))
	}
	if cmds[1].Type != TypeAddMarker || cmds[2].Type != TypeClearMarkers {
		t.Errorf("unexpected command order: %v, %v", cmds[1].Type, cmds[2].Type)
	}
}

func TestExtractMalformedBlockKeptInText(t *testing.T) {
	bad := "```MAP_COMMANDS\n{not json]\n```"
	text := "Here you go.\n" + bad

	clean, cmds, err := Extract(text)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if len(cmds) != 0 {
		t.Errorf("unexpected commands from malformed block: %v", cmds)
	}
	if !strings.Contains(clean, "{not json]") {
		t.Errorf("malformed block should stay in the display text: %q", clean)
	}
}

func TestExtractObjectBlockStripped(t *testing.T) {
	block := "```MAP_COMMANDS\n" +
		`{"type": "flyTo", "data": {"center": {"lng": 21.0122, "lat": 52.2297}}}` +
		"\n```"

	clean, cmds, err := Extract("On our way.\n" + block)
	if err == nil {
		t.Fatal("expected an error for a non-array block")
	}
	if len(cmds) != 0 {
		t.Errorf("unexpected commands from object block: %v", cmds)
	}
	if clean != "On our way." {
		t.Errorf("valid-JSON block should be stripped even when not an array: %q", clean)
	}
}

func TestExtractInvalidCommandSkipped(t *testing.T) {
	block := "```MAP_COMMANDS\n" +
		`[{"type": "flyTo"}, {"type": "teleport"}, {"type": "clearMarkers"}]` +
		"\n```"

	clean, cmds, err := Extract("Done!\n" + block)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if len(cmds) != 1 || cmds[0].Type != TypeClearMarkers {
		t.Errorf("expected only the valid command, got %v", cmds)
	}
	if clean != "Done!" {
		t.Errorf("block with invalid commands should still be stripped: %q", clean)
	}
}

func TestExtractDrawRoute(t *testing.T) {
	block := "```MAP_COMMANDS\n" +
		`[{"type": "drawRoute", "data": {"coordinates": [[21.006912, 52.231953], [21.007123, 52.232145], [21.015, 52.235]], "color": "#007bff"}}]` +
		"\n```"

	_, cmds, err := Extract(block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	if got := len(cmds[0].Data.Coordinates); got != 3 {
		t.Errorf("expected 3 route points, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	center := &LngLat{Lng: 21, Lat: 52}

	tests := []struct {
		name    string
		cmd     Command
		wantErr bool
	}{
		{"flyTo ok", Command{Type: TypeFlyTo, Data: &Data{Center: center}}, false},
		{"flyTo missing center", Command{Type: TypeFlyTo, Data: &Data{}}, true},
		{"flyTo missing data", Command{Type: TypeFlyTo}, true},
		{"addMarker ok", Command{Type: TypeAddMarker, Data: &Data{Location: center}}, false},
		{"addMarker missing location", Command{Type: TypeAddMarker, Data: &Data{}}, true},
		{"clearMarkers ok", Command{Type: TypeClearMarkers}, false},
		{"drawRoute ok", Command{Type: TypeDrawRoute, Data: &Data{Coordinates: [][]float64{{21, 52}, {22, 53}}}}, false},
		{"drawRoute one point", Command{Type: TypeDrawRoute, Data: &Data{Coordinates: [][]float64{{21, 52}}}}, true},
		{"drawRoute bad pair", Command{Type: TypeDrawRoute, Data: &Data{Coordinates: [][]float64{{21, 52}, {22}}}}, true},
		{"unknown type", Command{Type: "teleport"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
