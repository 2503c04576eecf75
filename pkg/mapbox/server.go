// ABOUTME: Launch configuration for the Mapbox MCP tool server subprocess
// ABOUTME: Chooses between a local node build and the published npm package

// Package mapbox builds the subprocess launch spec for the Mapbox MCP
// server. The server itself is an external Node.js program; these demos
// only configure how it is started and which token it receives.
package mapbox

import (
	"github.com/mapbox/mcp-server-examples/pkg/config"
	"github.com/mapbox/mcp-server-examples/pkg/mcptool"
)

// npm package name of the published Mapbox MCP server.
const packageName = "@mapbox/mcp-server"

// ServerSpec returns the launch spec for the Mapbox MCP server.
//
// By default the published npm package is run via npx. Setting
// MAPBOX_MCP_SERVER to the path of a local build (dist/esm/index.js after
// `npm run build` in the mcp-server repository) runs that build with node
// instead. The secret access token travels only through the subprocess
// environment.
func ServerSpec(cfg *config.Config) mcptool.ServerSpec {
	spec := mcptool.ServerSpec{
		Command: "npx",
		Args:    []string{"-y", packageName},
		Env:     []string{config.EnvAccessToken + "=" + cfg.AccessToken},
		Timeout: cfg.LaunchTimeout,
	}

	if cfg.ServerPath != "" {
		spec.Command = "node"
		spec.Args = []string{cfg.ServerPath}
	}

	return spec
}
