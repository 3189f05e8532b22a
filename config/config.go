// Package config resolves the filesystem locations ledge uses.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Dir returns the ledge configuration directory.
// LEDGE_CONFIG overrides it; otherwise it respects XDG_CONFIG_HOME on
// Unix and APPDATA on Windows.
func Dir() string {
	if dir := os.Getenv("LEDGE_CONFIG"); dir != "" {
		return dir
	}

	var base string
	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "ledge")
}

// InitFile returns the path to init.lua
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}

// SocketPath returns the control socket path ledge-msg connects to.
// One panel per user: the path is fixed within XDG_RUNTIME_DIR, with
// a per-uid fallback under the temp dir where that is unset.
func SocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "ledge.sock")
	}
	return filepath.Join(os.TempDir(), "ledge-"+strconv.Itoa(os.Getuid())+".sock")
}
