package reply

import "context"

// Turn is one prior conversational exchange in a provider-agnostic format.
// Sender carries the internal vocabulary ("user" or "bot"); each backend maps
// it to its own role labels.
type Turn struct {
	Sender string
	Text   string
}

// Request carries everything a backend may need for one reply. Backends are
// free to ignore fields their wire format has no slot for.
type Request struct {
	Prompt    string
	ChatId    string
	UserId    string
	History   []Turn
	IpAddress string
}

// Generator is the single outbound capability of the system: given a prompt
// and its history, produce one reply synchronously. Implementations are
// selected at configuration time, never branched on in the orchestration.
type Generator interface {
	GenerateReply(ctx context.Context, req *Request) (string, error)
}
