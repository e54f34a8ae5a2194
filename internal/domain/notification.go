package domain

type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
	VisibilityDirect   Visibility = "direct"
)

// ReplyVisibility keeps replies out of public timelines while respecting any
// stricter audience the author picked.
func ReplyVisibility(v Visibility) Visibility {
	if v == VisibilityPublic {
		return VisibilityUnlisted
	}
	return v
}

type NotificationType string

const (
	NotificationMention   NotificationType = "mention"
	NotificationFavourite NotificationType = "favourite"
	NotificationReblog    NotificationType = "reblog"
	NotificationFollow    NotificationType = "follow"
)

type Account struct {
	ID   string
	Acct string
}

type Status struct {
	ID         string
	Visibility Visibility
	Account    Account
}

type Notification struct {
	ID     NotificationID
	Type   NotificationType
	Status *Status
}

// Mention returns the mention carried by n, if any.
func (n Notification) Mention() (Mention, bool) {
	if n.Type != NotificationMention || n.Status == nil || n.Status.ID == "" {
		return Mention{}, false
	}

	return Mention{
		NotificationID: n.ID,
		StatusID:       n.Status.ID,
		AuthorAcct:     n.Status.Account.Acct,
		Visibility:     n.Status.Visibility,
	}, true
}

type Mention struct {
	NotificationID NotificationID
	StatusID       string
	AuthorAcct     string
	Visibility     Visibility
}

// Toot is an outgoing status.
type Toot struct {
	Text        string
	Visibility  Visibility
	InReplyToID string
}

// ReplyTo builds the reply to m with the given generated body.
func ReplyTo(m Mention, body string) Toot {
	return Toot{
		Text:        "@" + m.AuthorAcct + " " + body,
		Visibility:  ReplyVisibility(m.Visibility),
		InReplyToID: m.StatusID,
	}
}
