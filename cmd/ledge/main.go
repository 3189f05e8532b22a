package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/drake/ledge/config"
	"github.com/drake/ledge/debug"
	"github.com/drake/ledge/panel"
	"github.com/drake/ledge/scripts"
	"github.com/drake/ledge/ui"
)

func main() {
	// Parse flags
	configDir := flag.String("config", "", "Config directory (default ~/.config/ledge)")
	socketPath := flag.String("socket", "", "Control socket path (default per-user runtime dir)")
	noSocket := flag.Bool("no-socket", false, "Do not open the control socket")
	flag.Parse()

	dir := *configDir
	if dir == "" {
		dir = config.Dir()
	}
	sock := *socketPath
	if sock == "" {
		sock = config.SocketPath()
	}
	if *noSocket {
		sock = ""
	}

	// Component initialization
	shell := ui.New()
	session := panel.New(shell, panel.Config{
		CoreScripts: scripts.CoreScripts,
		DefaultInit: scripts.DefaultInit,
		ConfigDir:   dir,
		SocketPath:  sock,
		UserScripts: flag.Args(),
		Debug:       debug.Enabled(),
	})

	// Debug monitor, nil unless LEDGE_DEBUG=1
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	debug.NewMonitor(ctx, session).Start()

	// Block on the session until the shell exits
	if err := session.Run(); err != nil {
		fmt.Println("UI error:", err)
		os.Exit(1)
	}
}
