package session

import (
	"fmt"
	"io"
	"strings"
)

// writeNotifier reports outcomes as single lines on the session writer, the
// terminal counterpart of a result dialog.
type writeNotifier struct {
	out io.Writer
}

func (n *writeNotifier) Info(msg string) {
	fmt.Fprintf(n.out, "success: %s\n", msg)
}

func (n *writeNotifier) Error(msg string) {
	fmt.Fprintf(n.out, "error: %s\n", msg)
}

// lineConfirmer asks a yes/no question on the session writer and reads the
// answer from the session's own line reader, defaulting to no.
type lineConfirmer struct {
	session *Session
}

func (c *lineConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.session.out, "%s [y/N] ", prompt)
	line, ok := c.session.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
