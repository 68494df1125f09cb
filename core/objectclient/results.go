package objectclient

import "strings"

// Severity classifies a diagnostic message.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Message is a single line of diagnostic output.
type Message struct {
	Text     string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ConnectionResult is the outcome of one connection attempt.
type ConnectionResult struct {
	Success bool   `json:"success"`
	Details string `json:"details"`
}

// ConnectionOK returns a successful ConnectionResult.
func ConnectionOK() ConnectionResult {
	return ConnectionResult{Success: true}
}

// ConnectionFailed returns a failed ConnectionResult carrying details.
func ConnectionFailed(details string) ConnectionResult {
	return ConnectionResult{Success: false, Details: details}
}

// PermissionResult is the outcome of a permission test. Messages keep the
// order in which the capabilities were checked.
type PermissionResult struct {
	Success  bool      `json:"success"`
	Messages []Message `json:"messages"`
}

// Add appends a message. Messages with an existing text replace the earlier
// severity in place, so the slice behaves like an ordered map.
func (r *PermissionResult) Add(text string, severity Severity) {
	for i := range r.Messages {
		if r.Messages[i].Text == text {
			r.Messages[i].Severity = severity
			return
		}
	}
	r.Messages = append(r.Messages, Message{Text: text, Severity: severity})
}

// Fail records a failed capability check.
func (r *PermissionResult) Fail(text string) {
	r.Success = false
	r.Add(text, SeverityWarning)
}

// Details joins the message texts for logging.
func (r PermissionResult) Details() string {
	texts := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		texts = append(texts, m.Text)
	}
	return strings.Join(texts, "; ")
}

// Messages shown by the permission checks of every provider.
const (
	MsgPermissionsPassed      = "Permissions check passed"
	MsgWriteFailed            = "Write permission check failed"
	MsgReadFailed             = "Read permission check failed"
	MsgDeleteGranted          = "Delete permission is granted; objects could be removed from the storage"
	MsgDeleteCheckFailed      = "Delete permission check failed"
	MsgPermissionsNotTestable = "Permission test is not implemented for this client"
)

// PermissionCheckKey is the object written by permission tests.
const PermissionCheckKey = "permissions_check_file"
