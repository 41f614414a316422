package preview

// Notifier receives the transient, user-visible notifications the pipeline
// produces: localized short messages plus a description, distinct from the
// technical error type. The CLI prints them; tests capture them.
type Notifier interface {
	Info(msg, desc string)
	Success(msg, desc string)
	Warn(msg, desc string)
	Error(msg, desc string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Info(msg, desc string)    {}
func (NopNotifier) Success(msg, desc string) {}
func (NopNotifier) Warn(msg, desc string)    {}
func (NopNotifier) Error(msg, desc string)   {}
