package cli

import (
	"fmt"
	"io"
	"sync"
)

// TermNotifier renders pipeline notifications as terminal lines, the CLI
// equivalent of the web editor's toasts.
type TermNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTermNotifier(w io.Writer) *TermNotifier {
	return &TermNotifier{w: w}
}

func (n *TermNotifier) print(tag, msg, desc string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if desc != "" {
		fmt.Fprintf(n.w, "[%s] %s: %s\n", tag, msg, desc)
		return
	}
	fmt.Fprintf(n.w, "[%s] %s\n", tag, msg)
}

func (n *TermNotifier) Info(msg, desc string)    { n.print("info", msg, desc) }
func (n *TermNotifier) Success(msg, desc string) { n.print("ok", msg, desc) }
func (n *TermNotifier) Warn(msg, desc string)    { n.print("warn", msg, desc) }
func (n *TermNotifier) Error(msg, desc string)   { n.print("error", msg, desc) }
