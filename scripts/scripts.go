// Package scripts embeds the core Lua layer and the fallback config.
package scripts

import "embed"

// CoreScripts holds the core Lua files loaded, in name order, into
// every fresh engine before any user config runs.
//
//go:embed core
var CoreScripts embed.FS

// DefaultInit is the bar declaration used when no user init.lua
// exists.
//
//go:embed default_init.lua
var DefaultInit string
