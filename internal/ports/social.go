package ports

import (
	"context"

	"github.com/bnema/trastodon/internal/domain"
)

type AppRegistration struct {
	Name    string
	Website string
	Scopes  []string
}

type AppCredentials struct {
	ClientID     string
	ClientSecret string
}

// SocialNetwork covers the unauthenticated half of the API: registering the
// bot application and running the OAuth code flow. Connect returns a client
// bound to an authorized session.
type SocialNetwork interface {
	RegisterApp(ctx context.Context, server string, app AppRegistration) (AppCredentials, error)
	AuthorizationURL(server string, creds AppCredentials, scopes []string) (string, error)
	ExchangeCode(ctx context.Context, server string, creds AppCredentials, code string) (string, error)
	Connect(state domain.State) SocialClient
}

type SocialClient interface {
	VerifyCredentials(ctx context.Context) (domain.Account, error)
	// ListNotifications returns the page of at most limit notifications
	// immediately following after, in no particular order. A zero after
	// returns the newest page; a non-positive limit uses the server default.
	ListNotifications(ctx context.Context, after domain.NotificationID, limit int) ([]domain.Notification, error)
	PostStatus(ctx context.Context, toot domain.Toot) (domain.Status, error)
}
