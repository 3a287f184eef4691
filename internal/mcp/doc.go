// Package mcp exposes terminal emulator detection as Model Context Protocol
// tools.
//
// The same tool set is served two ways: through a Registry for direct
// programmatic invocation, and through an official MCP server for stdio
// clients. Every tool is read-only; none of them launches a terminal.
package mcp
