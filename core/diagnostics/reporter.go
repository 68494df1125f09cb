package diagnostics

import (
	"context"

	"objectfs/core/objectclient"
)

const (
	MsgConnectionFailed      = "Could not establish connection to the storage: "
	MsgConnectionEstablished = "Connection to the storage established"
	MsgRangeSupported        = "Range requests are served by the storage client"
	MsgRangeUnsupported      = "Range requests are not served by the storage client"
)

// Option configures a Reporter.
type Option func(*Reporter)

// WithRangeCheck adds a range request probe after a passing permission test.
func WithRangeCheck() Option {
	return func(r *Reporter) {
		r.rangeCheck = true
	}
}

// WithRunObserver registers fn to receive every rendered report.
func WithRunObserver(fn func(messages []objectclient.Message)) Option {
	return func(r *Reporter) {
		r.observers = append(r.observers, fn)
	}
}

// Reporter turns client checks into display messages.
type Reporter struct {
	rangeCheck bool
	observers  []func([]objectclient.Message)
}

// NewReporter creates a Reporter.
func NewReporter(opts ...Option) *Reporter {
	r := &Reporter{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render tests the connection and, when it succeeds, the permissions of
// client. A failed connection yields a single error message and the
// permission test is skipped.
func (r *Reporter) Render(ctx context.Context, client objectclient.ObjectClient, testDelete bool) []objectclient.Message {
	messages := r.render(ctx, client, testDelete)
	for _, fn := range r.observers {
		fn(messages)
	}
	return messages
}

func (r *Reporter) render(ctx context.Context, client objectclient.ObjectClient, testDelete bool) []objectclient.Message {
	conn := client.TestConnection(ctx)
	if !conn.Success {
		return []objectclient.Message{{
			Text:     MsgConnectionFailed + conn.Details,
			Severity: objectclient.SeverityError,
		}}
	}

	messages := []objectclient.Message{{Text: MsgConnectionEstablished, Severity: objectclient.SeveritySuccess}}

	perms := client.TestPermissions(ctx, testDelete)
	messages = append(messages, perms.Messages...)

	if r.rangeCheck && perms.Success {
		if client.TestRangeRequest(ctx) {
			messages = append(messages, objectclient.Message{Text: MsgRangeSupported, Severity: objectclient.SeverityInfo})
		} else {
			messages = append(messages, objectclient.Message{Text: MsgRangeUnsupported, Severity: objectclient.SeverityWarning})
		}
	}

	return messages
}
