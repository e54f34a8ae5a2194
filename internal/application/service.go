package application

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/bnema/trastodon/internal/domain"
	"github.com/bnema/trastodon/internal/ports"
)

type Service struct {
	state   ports.StateRepository
	social  ports.SocialNetwork
	grammar ports.GrammarLoader
	logger  *slog.Logger
	opts    Options
}

func NewService(state ports.StateRepository, social ports.SocialNetwork, grammar ports.GrammarLoader, logger *slog.Logger, opts Options) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service{
		state:   state,
		social:  social,
		grammar: grammar,
		logger:  logger,
		opts:    opts.withDefaults(),
	}
}

// Authenticate registers the bot application on server, walks the operator
// through the OAuth code flow and persists the verified session. Nothing is
// written unless the token verifies.
func (s *Service) Authenticate(ctx context.Context, server string, prompt ports.Prompter) (domain.State, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return domain.State{}, err
	}
	defer s.release(unlock)

	state, err := s.state.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrStateNotFound) {
			s.logger.Warn("starting from empty state", "error", err)
		}
		state = domain.State{}
	}
	state.Server = strings.TrimSpace(server)

	creds, err := s.social.RegisterApp(ctx, state.Server, ports.AppRegistration{
		Name:    s.opts.AppName,
		Website: s.opts.Website,
		Scopes:  defaultScopes,
	})
	if err != nil {
		return domain.State{}, domain.NewError(domain.KindRegistrationFailed, fmt.Errorf("register app on %s: %w", state.Server, err))
	}
	state.ClientID = creds.ClientID
	state.ClientSecret = creds.ClientSecret
	prompt.Println("successfully registered app")

	authURL, err := s.social.AuthorizationURL(state.Server, creds, defaultScopes)
	if err != nil {
		return domain.State{}, domain.NewError(domain.KindRegistrationFailed, fmt.Errorf("build authorization url: %w", err))
	}
	prompt.Println("please go to " + authURL)
	prompt.Println("then paste the authorization code you will be given back into this terminal")

	code, err := prompt.ReadAuthorizationCode(ctx)
	if err != nil {
		return domain.State{}, domain.NewError(domain.KindLoginFailed, fmt.Errorf("read authorization code: %w", err))
	}

	token, err := s.social.ExchangeCode(ctx, state.Server, creds, code)
	if err != nil {
		return domain.State{}, domain.NewError(domain.KindLoginFailed, fmt.Errorf("exchange authorization code: %w", err))
	}
	state.AccessToken = token

	account, err := s.social.Connect(state).VerifyCredentials(ctx)
	if err != nil {
		return domain.State{}, domain.NewError(domain.KindLoginFailed, fmt.Errorf("verify credentials: %w", err))
	}
	s.logger.Info("authenticated", "server", state.Server, "account", account.Acct)
	prompt.Println("success!")

	if err := s.state.Save(ctx, state); err != nil {
		return domain.State{}, domain.NewError(domain.KindStatePersistFailed, err)
	}

	return state, nil
}

// Toot posts one generated status as unlisted.
func (s *Service) Toot(ctx context.Context, grammarPath, rule string) (domain.Status, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return domain.Status{}, err
	}
	defer s.release(unlock)

	_, client, err := s.session(ctx)
	if err != nil {
		return domain.Status{}, err
	}

	grammar, err := s.loadGrammar(grammarPath)
	if err != nil {
		return domain.Status{}, err
	}

	status, err := client.PostStatus(ctx, domain.Toot{
		Text:       grammar.Expand(rule),
		Visibility: domain.VisibilityUnlisted,
	})
	if err != nil {
		return domain.Status{}, domain.NewError(domain.KindRequestFailed, fmt.Errorf("post status: %w", err))
	}
	s.logger.Info("posted status", "status_id", status.ID)

	return status, nil
}

// Reply answers every mention newer than the stored cursor, walking forward
// page by page until the server has nothing newer. Each page is handled in
// ascending id order and the cursor is persisted after every notification,
// so the saved cursor never passes an unanswered mention: a failed post
// aborts the run and the next run starts again at that mention.
func (s *Service) Reply(ctx context.Context, grammarPath, rule string) (ReplyReport, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return ReplyReport{}, err
	}
	defer s.release(unlock)

	state, client, err := s.session(ctx)
	if err != nil {
		return ReplyReport{}, err
	}

	grammar, err := s.loadGrammar(grammarPath)
	if err != nil {
		return ReplyReport{}, err
	}

	report := ReplyReport{Cursor: state.NotifPointer}

	for {
		page, err := client.ListNotifications(ctx, state.NotifPointer, s.opts.NotificationLimit)
		if err != nil {
			return report, domain.NewError(domain.KindRequestFailed, fmt.Errorf("list notifications after %s: %w", state.NotifPointer, err))
		}

		page = newerThan(page, state.NotifPointer)
		if len(page) == 0 {
			return report, nil
		}

		for _, notification := range page {
			if err := s.handleNotification(ctx, client, grammar, rule, notification, &report); err != nil {
				return report, err
			}

			if !state.Advance(notification.ID) {
				continue
			}
			if err := s.state.Save(ctx, state); err != nil {
				return report, domain.NewError(domain.KindStatePersistFailed, err)
			}
			report.Cursor = state.NotifPointer
		}
	}
}

func (s *Service) handleNotification(ctx context.Context, client ports.SocialClient, grammar ports.Grammar, rule string, notification domain.Notification, report *ReplyReport) error {
	mention, ok := notification.Mention()
	if !ok {
		report.Skipped++
		s.logger.Debug("skipping notification", "notification_id", notification.ID.String(), "type", string(notification.Type))
		return nil
	}

	toot := domain.ReplyTo(mention, grammar.Expand(rule))
	status, err := client.PostStatus(ctx, toot)
	if err != nil {
		return domain.NewError(domain.KindRequestFailed, fmt.Errorf("reply to notification %s: %w", notification.ID, err))
	}
	report.Replied++
	s.logger.Info("replied to mention",
		"notification_id", notification.ID.String(),
		"in_reply_to", mention.StatusID,
		"status_id", status.ID,
		"visibility", string(toot.Visibility),
	)
	return nil
}

// newerThan drops notifications at or below cursor and sorts the rest by id.
func newerThan(page []domain.Notification, cursor domain.NotificationID) []domain.Notification {
	fresh := make([]domain.Notification, 0, len(page))
	for _, notification := range page {
		if notification.ID > cursor {
			fresh = append(fresh, notification)
		}
	}
	slices.SortStableFunc(fresh, func(a, b domain.Notification) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return fresh
}

// ClearNotifications moves the cursor to the newest notification so that
// mentions from before the bot existed are never answered. Only loading and
// verifying the session can fail; the rest is best effort.
func (s *Service) ClearNotifications(ctx context.Context) (domain.NotificationID, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return 0, err
	}
	defer s.release(unlock)

	state, client, err := s.session(ctx)
	if err != nil {
		return 0, err
	}

	notifications, err := client.ListNotifications(ctx, 0, 1)
	if err != nil {
		s.logger.Debug("clear notifications: list failed", "error", err)
		return state.NotifPointer, nil
	}
	if len(notifications) == 0 {
		s.logger.Debug("clear notifications: nothing to clear", "error", domain.ErrNoNotifications)
		return state.NotifPointer, nil
	}

	if !state.Advance(notifications[0].ID) {
		return state.NotifPointer, nil
	}
	if err := s.state.Save(ctx, state); err != nil {
		s.logger.Debug("clear notifications: save failed", "error", err)
	}

	return state.NotifPointer, nil
}

func (s *Service) session(ctx context.Context) (domain.State, ports.SocialClient, error) {
	state, err := s.state.Load(ctx)
	if err != nil {
		return domain.State{}, nil, domain.NewError(domain.KindStateUnavailable, err)
	}

	if !state.HasCredentials() {
		return domain.State{}, nil, domain.NewError(domain.KindSessionInvalid, errors.New("state is missing credentials"))
	}

	client := s.social.Connect(state)
	if _, err := client.VerifyCredentials(ctx); err != nil {
		return domain.State{}, nil, domain.NewError(domain.KindSessionInvalid, fmt.Errorf("verify credentials: %w", err))
	}

	return state, client, nil
}

func (s *Service) loadGrammar(path string) (ports.Grammar, error) {
	grammar, err := s.grammar.Load(path)
	if err != nil {
		return nil, domain.NewError(domain.KindGrammarUnreadable, err)
	}
	return grammar, nil
}

func (s *Service) lock(ctx context.Context) (func() error, error) {
	unlock, err := s.state.Lock(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrStateLocked) {
			return nil, domain.NewError(domain.KindStateLocked, err)
		}
		return nil, domain.NewError(domain.KindStateUnavailable, err)
	}
	return unlock, nil
}

func (s *Service) release(unlock func() error) {
	if unlock == nil {
		return
	}
	if err := unlock(); err != nil {
		s.logger.Warn("release state lock", "error", err)
	}
}
