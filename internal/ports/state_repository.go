package ports

import (
	"context"

	"github.com/bnema/trastodon/internal/domain"
)

type StateRepository interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
	// Lock takes an exclusive advisory lock on the state document. The
	// returned func releases it.
	Lock(ctx context.Context) (func() error, error)
}
