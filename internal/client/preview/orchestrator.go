package preview

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"qrstudio/internal/client/api"
	"qrstudio/internal/client/models"
	"qrstudio/internal/client/stickers"
	"qrstudio/internal/logging"
)

// State of the single "active generation" slot.
type State int

const (
	// StateIdle: no content yet or nothing in flight; the last resource,
	// if any, is still valid.
	StateIdle State = iota
	// StatePending: a regeneration is scheduled or in flight.
	StatePending
	// StateReady: a preview resource is available.
	StateReady
	// StateFailed: the last generation failed; the prior preview, if any,
	// remains displayed.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Orchestrator owns the mutable form state, debounces edits into generation
// requests, and manages the single current preview resource.
//
// Every issued request carries a sequence number; an arrival whose sequence
// is behind the newest issued request is discarded, so a fast editor never
// sees a stale response overwrite a newer preview.
type Orchestrator struct {
	client   api.Client
	notifier Notifier
	log      logging.Logger
	debounce *Debouncer
	policy   api.RetryPolicy

	mu      sync.Mutex
	form    FormState
	state   State
	current *Resource
	lastErr string
	seq     uint64
}

// New returns an orchestrator in the default form state.
func New(client api.Client, notifier Notifier, log logging.Logger, window time.Duration, policy api.RetryPolicy) *Orchestrator {
	return &Orchestrator{
		client:   client,
		notifier: notifier,
		log:      log,
		debounce: NewDebouncer(window),
		policy:   policy,
		form:     DefaultForm(),
		state:    StateIdle,
	}
}

// Form returns a snapshot of the current form state.
func (o *Orchestrator) Form() FormState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.form
}

// Status returns the slot state and the inline error message, if any.
func (o *Orchestrator) Status() (State, string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state, o.lastErr
}

// PreviewPath returns the displayable path of the current preview, or "".
func (o *Orchestrator) PreviewPath() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil {
		return ""
	}
	return o.current.Path()
}

// Layout composes the current preview with the selected sticker for display.
func (o *Orchestrator) Layout() stickers.Layout {
	o.mu.Lock()
	sticker := o.form.Sticker
	path := ""
	if o.current != nil {
		path = o.current.Path()
	}
	o.mu.Unlock()
	return stickers.Compose(sticker, path)
}

// Update applies mutate to a copy of the form and installs it. When the
// change warrants regeneration, the debounce timer is re-armed; re-arming
// cancels any pending timer, so only the values current at the end of a
// burst of edits produce a request.
func (o *Orchestrator) Update(mutate func(*FormState)) {
	o.mu.Lock()
	old := o.form
	next := old
	mutate(&next)
	o.form = next
	o.mu.Unlock()

	if ShouldRegenerate(old, next) {
		o.debounce.Arm(o.regenerate)
	}
}

// SetContentType switches the content type, resetting the content to the
// type's default value, which in turn re-arms the debounce.
func (o *Orchestrator) SetContentType(ct models.ContentType) {
	o.Update(func(f *FormState) {
		*f = f.WithContentType(ct)
	})
}

// Refresh regenerates the preview immediately, bypassing the debounce. Any
// pending debounced run is cancelled so it cannot fire a duplicate request.
func (o *Orchestrator) Refresh() {
	o.debounce.Stop()
	o.regenerate()
}

// regenerate issues exactly one generation request for the state current at
// the time of firing.
func (o *Orchestrator) regenerate() {
	o.mu.Lock()
	if o.form.Content == "" {
		o.mu.Unlock()
		return
	}
	o.state = StatePending
	o.lastErr = ""
	o.seq++
	mySeq := o.seq
	req := o.form.Request(true)
	o.mu.Unlock()

	ctx := context.Background()
	body, err := o.client.Generate(ctx, req)

	o.mu.Lock()
	if mySeq != o.seq {
		// A newer request was issued while this one was in flight.
		o.mu.Unlock()
		o.log.Debug(ctx, "discarding stale generation response", "seq", mySeq)
		return
	}

	if err != nil {
		msg := userMessage(err)
		o.state = StateFailed
		o.lastErr = msg
		o.mu.Unlock()
		o.log.Warn(ctx, "generation failed", "error", err)
		o.notifier.Error("Generation error", msg)
		return
	}

	res, rerr := NewResource(body, req.Format.Extension())
	if rerr != nil {
		o.state = StateFailed
		o.lastErr = rerr.Error()
		o.mu.Unlock()
		o.notifier.Error("Generation error", "Could not store the preview locally.")
		return
	}

	// Replace the slot: release the superseded resource immediately so
	// repeated edits cannot accumulate files.
	if o.current != nil {
		o.current.Release()
	}
	o.current = res
	o.state = StateReady
	o.lastErr = ""
	o.mu.Unlock()

	o.log.Debug(ctx, "preview ready", "bytes", len(body), "path", res.Path())
}

// Download saves the QR in the form's exact target format to destPath.
// Document formats re-request the data under the retry policy; simple
// formats reuse the current preview after validating it is not degenerate.
// A sticker combined with the vector format is dropped from the download
// with a warning, not an error.
func (o *Orchestrator) Download(ctx context.Context, destPath string) error {
	o.mu.Lock()
	form := o.form
	cur := o.current
	o.mu.Unlock()

	if form.Content == "" {
		return fmt.Errorf("nothing to download: content is empty")
	}

	req := form.Request(false)
	if form.Format.IsVector() && form.Sticker != "" {
		o.notifier.Warn("The SVG format does not support stickers", "The QR code will be downloaded without the sticker.")
		req.StickerType = ""
	}

	var data []byte
	var err error

	if form.Format.IsDocument() || cur == nil {
		if form.Format.IsDocument() {
			o.notifier.Info("Generating the document...", "")
		}
		data, err = o.client.Download(ctx, req, o.policy)
	} else {
		data, err = cur.Bytes()
		if err == nil && len(data) < api.MinPayloadSize {
			err = &api.CorruptPayloadError{Size: len(data)}
		}
	}

	if err != nil {
		var cpe *api.CorruptPayloadError
		if errors.As(err, &cpe) {
			o.notifier.Error("Download error", "The generated file looks corrupt and was not saved.")
			return cpe
		}
		o.notifier.Error("Download error", "Could not download the file; a retry was already attempted. Please try again.")
		return err
	}

	if werr := os.WriteFile(destPath, data, 0o644); werr != nil {
		o.notifier.Error("Download error", "Could not write the file to disk.")
		return werr
	}

	o.notifier.Success("Download complete", destPath)
	return nil
}

// Close stops the debounce timer and releases the current preview resource.
func (o *Orchestrator) Close() {
	o.debounce.Stop()
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current != nil {
		o.current.Release()
		o.current = nil
	}
}

// userMessage extracts the human-readable part of a pipeline error.
func userMessage(err error) string {
	var genErr *api.GenerationError
	if errors.As(err, &genErr) {
		return genErr.Message
	}
	return err.Error()
}
