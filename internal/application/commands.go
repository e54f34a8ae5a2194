package application

import "github.com/bnema/trastodon/internal/domain"

const (
	DefaultAppName           = "trastodon"
	DefaultNotificationLimit = 40
	DefaultTootRule          = "#origin#"
	DefaultReplyRule         = "#reply#"
)

var defaultScopes = []string{"read", "write"}

type Options struct {
	AppName           string
	Website           string
	NotificationLimit int
}

func (o Options) withDefaults() Options {
	if o.AppName == "" {
		o.AppName = DefaultAppName
	}
	if o.NotificationLimit <= 0 {
		o.NotificationLimit = DefaultNotificationLimit
	}
	return o
}

// ReplyReport summarizes one reply run.
type ReplyReport struct {
	Replied int
	Skipped int
	Cursor  domain.NotificationID
}
