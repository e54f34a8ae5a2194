package mastodon

import (
	"github.com/bnema/trastodon/internal/domain"
	gomastodon "github.com/mattn/go-mastodon"
)

func accountToDomain(a gomastodon.Account) domain.Account {
	return domain.Account{ID: string(a.ID), Acct: a.Acct}
}

func statusToDomain(s gomastodon.Status) domain.Status {
	return domain.Status{
		ID:         string(s.ID),
		Visibility: domain.Visibility(s.Visibility),
		Account:    accountToDomain(s.Account),
	}
}

func notificationToDomain(n gomastodon.Notification) (domain.Notification, error) {
	id, err := domain.ParseNotificationID(string(n.ID))
	if err != nil {
		return domain.Notification{}, err
	}

	notification := domain.Notification{
		ID:   id,
		Type: domain.NotificationType(n.Type),
	}
	if n.Status != nil {
		status := statusToDomain(*n.Status)
		notification.Status = &status
	}

	return notification, nil
}
