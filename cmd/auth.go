package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/trastodon/internal/ports"
	"github.com/spf13/cobra"
)

var errEmptyAuthorizationCode = errors.New("empty authorization code")

func newAuthCmd(loader *appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "auth SERVER",
		Short: "Log into the bot's account",
		Long: "Registers trastodon as an application on SERVER, prints an authorization URL and " +
			"reads the code the server hands back. The verified session is written to STATE_FILE.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loader.get(cmd)
			if err != nil {
				return err
			}

			prompt := newTerminalPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			_, err = app.service.Authenticate(cmd.Context(), args[0], prompt)
			return err
		},
	}
}

type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ ports.Prompter = (*terminalPrompter)(nil)

func newTerminalPrompter(in io.Reader, out io.Writer) *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *terminalPrompter) Println(msg string) {
	_, _ = fmt.Fprintln(p.out, msg)
}

func (p *terminalPrompter) ReadAuthorizationCode(ctx context.Context) (string, error) {
	type line struct {
		text string
		err  error
	}

	read := make(chan line, 1)
	go func() {
		text, err := p.in.ReadString('\n')
		read <- line{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-read:
		code := strings.TrimSpace(l.text)
		if code != "" {
			return code, nil
		}
		if l.err != nil && !errors.Is(l.err, io.EOF) {
			return "", l.err
		}
		return "", errEmptyAuthorizationCode
	}
}
