package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/trastodon/internal/adapters/grammar"
	"github.com/bnema/trastodon/internal/adapters/mastodon"
	yamlrepo "github.com/bnema/trastodon/internal/adapters/repo/yaml"
	"github.com/bnema/trastodon/internal/application"
	"github.com/bnema/trastodon/internal/config"
	"github.com/bnema/trastodon/internal/logger"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errMissingStateFile = errors.New("missing state file: usage is trastodon STATE_FILE COMMAND")

type app struct {
	service *application.Service
	logger  *slog.Logger
	closer  io.Closer
}

func wireApp(statePath string, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, closer, err := logger.New(logger.Options{
		Level:     cfg.LogLevel,
		File:      cfg.LogFile,
		MaxSizeMB: cfg.LogMaxSizeMB,
	}, logOut)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := yamlrepo.NewRepository(statePath)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("wire state repository: %w", err)
	}

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = cfg.HTTPTimeout

	service := application.NewService(
		repo,
		mastodon.NewNetwork(httpClient),
		grammar.NewLoader(cfg.GrammarSeed),
		log,
		application.Options{
			AppName:           cfg.AppName,
			Website:           cfg.AppWebsite,
			NotificationLimit: cfg.NotificationLimit,
		},
	)

	return &app{service: service, logger: log, closer: closer}, nil
}

// appLoader defers wiring until a command that needs the state file runs,
// so help and version work without one.
type appLoader struct {
	statePath string
	app       *app
}

func (l *appLoader) get(cmd *cobra.Command) (*app, error) {
	if l.app != nil {
		return l.app, nil
	}
	if l.statePath == "" {
		return nil, errMissingStateFile
	}

	a, err := wireApp(l.statePath, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	l.app = a
	return a, nil
}

func (l *appLoader) close() {
	if l.app == nil {
		return
	}
	_ = l.app.closer.Close()
}
