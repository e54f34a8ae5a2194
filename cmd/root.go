package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bnema/trastodon/internal/domain"
	"github.com/spf13/cobra"
)

var commandNames = map[string]bool{
	"auth":                true,
	"toot":                true,
	"reply":               true,
	"clear_notifications": true,
	"version":             true,
	"help":                true,
	"completion":          true,
}

// sessionCommands operate on a state file.
var sessionCommands = map[string]bool{
	"auth":                true,
	"toot":                true,
	"reply":               true,
	"clear_notifications": true,
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	statePath, rest := splitStatePath(args)
	loader := &appLoader{statePath: statePath}
	defer loader.close()

	root := newRootCmd(loader)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(rest)

	err := root.ExecuteContext(ctx)
	if err != nil {
		reportError(out, errOut, loader, err)
	}
	return err
}

// splitStatePath takes the leading STATE_FILE operand off the command line.
// cobra has no notion of a positional argument in front of a subcommand.
// A state file may be named like a session command ("reply reply g.yaml")
// as long as a session command follows it; files named help, version or
// completion need a path prefix such as ./help.
func splitStatePath(args []string) (string, []string) {
	if len(args) == 0 {
		return "", args
	}
	first := args[0]
	if strings.HasPrefix(first, "-") {
		return "", args
	}
	if commandNames[first] && !(sessionCommands[first] && len(args) > 1 && sessionCommands[args[1]]) {
		return "", args
	}
	return first, args[1:]
}

func newRootCmd(loader *appLoader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trastodon STATE_FILE COMMAND",
		Short: "Tracery bot for Mastodon",
		Long: "trastodon posts statuses generated from a Tracery grammar to a Mastodon account and " +
			"answers mentions. STATE_FILE holds the server, app credentials, access token and the " +
			"notification cursor.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(loader),
		newTootCmd(loader),
		newReplyCmd(loader),
		newClearNotificationsCmd(loader),
	)

	return rootCmd
}

func reportError(out, errOut io.Writer, loader *appLoader, err error) {
	if loader.app != nil {
		loader.app.logger.Debug("command failed", "kind", domain.KindOf(err).String(), "error", err)
	}

	if msg, ok := operatorMessage(err); ok {
		_, _ = fmt.Fprintln(out, msg)
		return
	}
	if errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintln(errOut, "interrupted")
		return
	}
	_, _ = fmt.Fprintln(errOut, "Error:", err)
}
