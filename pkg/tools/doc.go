// Package tools exposes calculator operations to programmatic callers.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/scicalc/pkg/tools/toolbox] — Tool type and ToolBox registry
//   - [github.com/germanamz/scicalc/pkg/tools/mcpserver] — MCP server exposing a ToolBox over the official MCP Go SDK
//   - [github.com/germanamz/scicalc/pkg/tools/calctools] — calculator tools and the named-session store behind them
package tools
