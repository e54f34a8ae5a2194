package mastodon

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/trastodon/internal/domain"
	"github.com/bnema/trastodon/internal/ports"
	gomastodon "github.com/mattn/go-mastodon"
)

// Client is bound to one authorized session.
type Client struct {
	api *gomastodon.Client
}

var _ ports.SocialClient = (*Client)(nil)

func (c *Client) VerifyCredentials(ctx context.Context) (domain.Account, error) {
	if err := c.ready(); err != nil {
		return domain.Account{}, err
	}

	account, err := c.api.GetAccountCurrentUser(ctx)
	if err != nil {
		return domain.Account{}, fmt.Errorf("verify credentials: %w", err)
	}
	// Some servers answer an invalid token with 200 and an error body.
	if account.ID == "" {
		return domain.Account{}, errors.New("verify credentials: response carries no account")
	}

	return accountToDomain(*account), nil
}

func (c *Client) ListNotifications(ctx context.Context, after domain.NotificationID, limit int) ([]domain.Notification, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	page := &gomastodon.Pagination{}
	if !after.IsZero() {
		page.MinID = gomastodon.ID(after.String())
	}
	if limit > 0 {
		page.Limit = int64(limit)
	}

	payload, err := c.api.GetNotifications(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	notifications := make([]domain.Notification, 0, len(payload))
	for _, entry := range payload {
		if entry == nil {
			continue
		}
		notification, err := notificationToDomain(*entry)
		if err != nil {
			return nil, fmt.Errorf("list notifications: %w", err)
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

func (c *Client) PostStatus(ctx context.Context, toot domain.Toot) (domain.Status, error) {
	if err := c.ready(); err != nil {
		return domain.Status{}, err
	}

	status, err := c.api.PostStatus(ctx, &gomastodon.Toot{
		Status:      toot.Text,
		InReplyToID: gomastodon.ID(toot.InReplyToID),
		Visibility:  string(toot.Visibility),
	})
	if err != nil {
		return domain.Status{}, fmt.Errorf("post status: %w", err)
	}

	return statusToDomain(*status), nil
}

func (c *Client) ready() error {
	if c.api.Config.AccessToken == "" {
		return errors.New("access token is required")
	}
	_, err := serverURL(c.api.Config.Server)
	return err
}
