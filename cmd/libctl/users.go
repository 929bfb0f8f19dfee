package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/sbilibin2017/gw-library/internal/services"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=main

// UserRegisterer creates accounts.
type UserRegisterer interface {
	Register(ctx context.Context, username, password, role string) (*models.User, error)
}

// passwordReader prompts on out and returns the entered password.
type passwordReader func(in io.Reader, out io.Writer) (string, error)

const minPasswordLength = 6

// readPassword masks input on a terminal and reads a plain line otherwise,
// so passwords can be piped in from scripts.
func readPassword(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func newCreateUserCmd(connect func(context.Context) (*backend, error), password passwordReader) *cobra.Command {
	var username, role string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an Admin or User account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if role != models.RoleAdmin && role != models.RoleUser {
				return services.ErrInvalidRole
			}

			pass, err := password(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			if len(pass) < minPasswordLength {
				return fmt.Errorf("password must be at least %d characters", minPasswordLength)
			}

			b, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer b.close()

			user, err := b.users.Register(cmd.Context(), username, pass, role)
			if err != nil {
				if errors.Is(err, services.ErrUserAlreadyExists) {
					return fmt.Errorf("user %q already exists", username)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (id %d, role %s)\n", user.Username, user.ID, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&role, "role", "r", models.RoleUser, "Role, Admin or User")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}
