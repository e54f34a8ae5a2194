package cmd

import (
	"github.com/bnema/trastodon/internal/application"
	"github.com/spf13/cobra"
)

func newTootCmd(loader *appLoader) *cobra.Command {
	var rule string

	cmd := &cobra.Command{
		Use:   "toot FILENAME",
		Short: "Post a toot",
		Long:  "Expands RULE from the Tracery grammar in FILENAME (YAML, JSON or TOML) and posts it unlisted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loader.get(cmd)
			if err != nil {
				return err
			}

			_, err = app.service.Toot(cmd.Context(), args[0], rule)
			return err
		},
	}

	cmd.Flags().StringVarP(&rule, "rule", "r", application.DefaultTootRule, "Grammar rule to expand")

	return cmd
}

func newReplyCmd(loader *appLoader) *cobra.Command {
	var rule string

	cmd := &cobra.Command{
		Use:   "reply FILENAME",
		Short: "Reply to mentions",
		Long: "Answers every mention received since the last run with an expansion of RULE. " +
			"Public mentions are answered unlisted; other visibilities are kept.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loader.get(cmd)
			if err != nil {
				return err
			}

			report, err := app.service.Reply(cmd.Context(), args[0], rule)
			app.logger.Info("reply run finished",
				"replied", report.Replied,
				"skipped", report.Skipped,
				"cursor", report.Cursor.String(),
			)
			return err
		},
	}

	cmd.Flags().StringVarP(&rule, "rule", "r", application.DefaultReplyRule, "Grammar rule to expand")

	return cmd
}

func newClearNotificationsCmd(loader *appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "clear_notifications",
		Short: "Ignore all notifications up to now",
		Long:  "Moves the notification cursor to the newest notification. Useful when first setting up a bot.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loader.get(cmd)
			if err != nil {
				return err
			}

			cursor, err := app.service.ClearNotifications(cmd.Context())
			if err != nil {
				return err
			}
			app.logger.Info("notifications cleared", "cursor", cursor.String())
			return nil
		},
	}
}
