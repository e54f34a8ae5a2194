package ports

import "context"

// Prompter is the operator's terminal during auth.
type Prompter interface {
	Println(msg string)
	// ReadAuthorizationCode blocks until the operator pastes a code.
	ReadAuthorizationCode(ctx context.Context) (string, error)
}
