package user

// Kind classifies why a deletion run failed. The HTTP boundary maps
// kinds to response codes; the workflow never picks codes itself.
type Kind int

const (
	KindNone Kind = iota
	KindInvalidInput
	KindNotFound
	KindInternal
)

// Outcome is the consolidated result of one deletion run. Internal
// causes are logged for operators; Message is safe to show callers.
type Outcome struct {
	Status  string `json:"status"`
	Kind    Kind   `json:"-"`
	Message string `json:"mensaje"`
}

func succeeded(msg string) Outcome {
	return Outcome{Status: "ok", Message: msg}
}

func failed(kind Kind, msg string) Outcome {
	return Outcome{Status: "error", Kind: kind, Message: msg}
}
