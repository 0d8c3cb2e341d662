package dto

// WriteOutcome is the response body of every write endpoint. Exactly one of
// MessageSuccess / MessageError is set, each holding a message-catalog lookup
// key (e.g. "messages.deal_store"), never the resolved text. RedirectTo tells
// the presentation layer where to navigate next.
type WriteOutcome struct {
	RedirectTo     string `json:"redirectTo"`
	MessageSuccess string `json:"messageSuccess,omitempty"`
	MessageError   string `json:"messageError,omitempty"`
}
