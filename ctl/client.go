package ctl

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// Client talks to a running panel's control socket. It is not safe
// for concurrent use; ledge-msg sends one line at a time.
type Client struct {
	conn net.Conn
	r    *bufio.Reader
}

// Dial connects to the control socket at path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", path, err)
	}
	return &Client{conn: conn, r: bufio.NewReader(conn)}, nil
}

// Send submits one Lua chunk and waits for the panel's verdict. A nil
// return means the chunk executed cleanly.
func (c *Client) Send(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	if strings.ContainsRune(code, '\n') {
		return errors.New("control chunks cannot span multiple lines")
	}

	c.conn.SetDeadline(time.Now().Add(5 * time.Second))
	defer c.conn.SetDeadline(time.Time{})

	if _, err := fmt.Fprintln(c.conn, code); err != nil {
		return err
	}

	reply, err := c.r.ReadString('\n')
	if err != nil {
		return err
	}
	reply = strings.TrimSuffix(reply, "\n")

	if reply == "ok" {
		return nil
	}
	if msg, ok := strings.CutPrefix(reply, "err "); ok {
		return errors.New(msg)
	}
	return fmt.Errorf("unexpected reply %q", reply)
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
