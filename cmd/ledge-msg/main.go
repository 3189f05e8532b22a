// ledge-msg sends Lua chunks to a running ledge panel over its control
// socket. Arguments form one chunk; with no arguments it reads lines
// from stdin and sends each one.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/drake/ledge/config"
	"github.com/drake/ledge/ctl"
)

func main() {
	socketPath := flag.String("socket", "", "Control socket path (default per-user runtime dir)")
	flag.Parse()

	path := *socketPath
	if path == "" {
		path = config.SocketPath()
	}

	client, err := ctl.Dial(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ledge-msg:", err)
		os.Exit(1)
	}
	defer client.Close()

	if flag.NArg() > 0 {
		if err := client.Send(strings.Join(flag.Args(), " ")); err != nil {
			fmt.Fprintln(os.Stderr, "ledge-msg:", err)
			os.Exit(1)
		}
		return
	}

	status := 0
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := client.Send(scanner.Text()); err != nil {
			fmt.Fprintln(os.Stderr, "ledge-msg:", err)
			status = 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "ledge-msg:", err)
		status = 1
	}
	os.Exit(status)
}
