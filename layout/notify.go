package layout

// Notifier fans out "layout changed" notifications and tracks a
// revision counter for fit caching. The zero value is ready to use.
//
// Notifier is not safe for concurrent use: a widget tree is owned by a
// single goroutine, and handlers run synchronously on the goroutine
// that emits.
type Notifier struct {
	rev      uint64
	handlers []func()
}

// OnChanged registers fn to run on every change notification.
// Handlers cannot be removed; they live as long as the widget does.
func (n *Notifier) OnChanged(fn func()) {
	if fn == nil {
		return
	}
	n.handlers = append(n.handlers, fn)
}

// EmitChanged bumps the revision and invokes all registered handlers.
// Mutators call this once per observable change.
func (n *Notifier) EmitChanged() {
	n.rev++
	for _, fn := range n.handlers {
		fn()
	}
}

// Revision returns a counter that increases with every emitted change.
// Context keys cached fit results on it.
func (n *Notifier) Revision() uint64 { return n.rev }
