// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Eggspert. It lets AI assistants ask poultry questions and use the farm
// tools over JSON-RPC.
package mcp

import "errors"

// ErrMissingAssistantService is returned when the assistant service is not provided.
var ErrMissingAssistantService = errors.New("mcp: assistant service is required")
