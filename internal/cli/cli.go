// Package cli implements the fintrack terminal client. The session is kept
// in a local bbolt file so it survives between invocations.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/session"
)

// ErrNotLoggedIn is returned by commands that need a stored session.
var ErrNotLoggedIn = errors.New(`not logged in, run "fintrack login"`)

// AuthService defines the use cases the CLI drives.
type AuthService interface {
	Login(ctx context.Context, sess *session.Session, creds model.Credentials) (model.User, error)
	Logout(ctx context.Context, sess *session.Session) error
	Profile(ctx context.Context, sess *session.Session) (model.User, error)
}

// App holds the dependencies shared by all commands.
type App struct {
	session *session.Session
	auth    AuthService
	logger  *logger.Logger
}

// NewApp binds sessions to storage.
func NewApp(sessions *session.Manager, storage model.Storage, auth AuthService, logger *logger.Logger) *App {
	return &App{session: sessions.Bind(storage), auth: auth, logger: logger}
}

// NewRootCommand builds the command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fintrack",
		Short:         "Terminal client for the fintrack finance API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newStatusCommand(app),
		newGetCommand(app),
	)
	return root
}

func newLoginCommand(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				p, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				password = p
			}

			user, err := app.auth.Login(cmd.Context(), app.session, model.Credentials{Email: email, Password: password})
			if err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password, read from stdin when empty")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Logout(cmd.Context(), app.session); err != nil {
				return fmt.Errorf("failed to log out: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			tokens := app.session.Store().Tokens(cmd.Context())
			if !tokens.HasAccess() && !tokens.HasRefresh() {
				fmt.Fprintln(out, "not logged in")
				return nil
			}

			user, err := app.auth.Profile(cmd.Context(), app.session)
			if err != nil {
				return explain(err)
			}
			fmt.Fprintf(out, "logged in as %s\n", user.Email)
			return nil
		},
	}
}

func newGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Call an API path with the stored session and print the JSON response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := app.session.Store().Tokens(cmd.Context())
			if !tokens.HasAccess() && !tokens.HasRefresh() {
				return ErrNotLoggedIn
			}

			requestID := uuid.NewString()
			app.logger.Debug("CLI: calling backend", "path", args[0], "request_id", requestID)

			cfg := &model.RequestConfig{Headers: http.Header{"X-Request-Id": {requestID}}}

			var raw json.RawMessage
			err := app.session.Do(cmd.Context(), func(ctx context.Context, client model.HTTPClient) error {
				return client.Get(ctx, args[0], &raw, cfg)
			})
			if err != nil {
				return explain(err)
			}

			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
}

func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Password: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printJSON(w io.Writer, raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, err = w.Write(append(raw, '\n'))
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// explain turns session and credential failures into actionable messages.
func explain(err error) error {
	switch {
	case errors.Is(err, model.ErrSessionExpired):
		return errors.New(`session expired, run "fintrack login"`)
	case errors.Is(err, model.ErrInvalidCredentials):
		return errors.New("invalid email or password")
	}
	return err
}
