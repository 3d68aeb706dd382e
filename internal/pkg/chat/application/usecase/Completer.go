package usecase

import "context"

// Completer is the outbound port to the hosted language model: one stateless
// request per chat turn, no retry, no streaming.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
