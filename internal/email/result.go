package email

// Result reports the outcome of one confirmation dispatch. It is a
// plain value with no error channel: a skipped or failed send can
// annotate a response, but it can never fail the request that produced
// it.
type Result struct {
	Skipped bool   `json:"skipped"`
	OK      bool   `json:"ok"`
	Details string `json:"details,omitempty"`
}

// Message is one outbound confirmation notice.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Notifier attempts one best-effort delivery of a notice.
type Notifier interface {
	Send(msg Message) Result
}
