package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/client"
	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Chat interactively",
	Long: `Read messages from stdin, one per line, and send them.

While compose runs your presence is kept online. Commands:

  /name NAME    change your display name
  /email EMAIL  change your email
  /email        forget your email
  /back         mark yourself active again after a break
  /quit         leave`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, path, err := loadPrefs(cmd)
		if err != nil {
			return err
		}
		c, err := dial(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		comp := client.NewComposer(c, prefs, path)
		comp.Start(cmd.Context())
		defer comp.Close()

		return runCompose(cmd.Context(), comp, bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
	},
}

// composer is the part of client.Composer the prompt loop drives.
type composer interface {
	Prefs() client.Prefs
	SetIdentity(name, email string) error
	ClearEmail() error
	Visible()
	Send(ctx context.Context, body string) error
}

// runCompose asks for a name if none is remembered, then sends each line.
func runCompose(ctx context.Context, comp composer, in *bufio.Reader, out io.Writer) error {
	if comp.Prefs().Name == "" {
		name, err := prompt(in, out, "Your name")
		if err != nil {
			return err
		}
		email, err := prompt(in, out, "Email (optional)")
		if err != nil {
			return err
		}
		if err := comp.SetIdentity(name, email); err != nil {
			fmt.Fprintf(out, "could not save prefs: %v\n", err)
		}
	}
	fmt.Fprintf(out, "Chatting as %s. Type /quit to leave.\n", comp.Prefs().Name)

	lines := readLines(ctx, in)
	for {
		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			line = strings.TrimSpace(l)
		}

		switch {
		case line == "":
		case line == "/quit":
			return nil
		case line == "/back":
			comp.Visible()
		case strings.HasPrefix(line, "/name "):
			if err := comp.SetIdentity(strings.TrimSpace(strings.TrimPrefix(line, "/name ")), ""); err != nil {
				fmt.Fprintf(out, "could not save prefs: %v\n", err)
			}
		case line == "/email":
			if err := comp.ClearEmail(); err != nil {
				fmt.Fprintf(out, "could not save prefs: %v\n", err)
			}
		case strings.HasPrefix(line, "/email "):
			if err := comp.SetIdentity("", strings.TrimSpace(strings.TrimPrefix(line, "/email "))); err != nil {
				fmt.Fprintf(out, "could not save prefs: %v\n", err)
			}
		default:
			if err := comp.Send(ctx, line); err != nil {
				fmt.Fprintln(out, err)
			}
		}
	}
}

// readLines feeds lines from in until EOF, a read error or ctx is done.
func readLines(ctx context.Context, in *bufio.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for {
			line, err := in.ReadString('\n')
			if line != "" {
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
