package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/auth"
)

type loginInput struct {
	Email    string `flag:"email" validate:"required,email"`
	Password string `flag:"password" validate:"required"`
}

// NewLoginCmd creates the login command
func NewLoginCmd(open Opener) *cobra.Command {
	var input loginInput

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the admin API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, open, input)
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "Email address (or set PLAYERA_EMAIL)")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password (or set PLAYERA_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(cmd *cobra.Command, open Opener, input loginInput) error {
	// Check for environment variables (useful for CI/CD)
	if input.Email == "" {
		input.Email = os.Getenv("PLAYERA_EMAIL")
	}
	if input.Password == "" {
		input.Password = os.Getenv("PLAYERA_PASSWORD")
	}

	if input.Email == "" {
		return fmt.Errorf("email is required (use --email flag or PLAYERA_EMAIL env var)")
	}

	if input.Password == "" {
		password, err := promptPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		input.Password = password
	}

	if err := checkInput(input); err != nil {
		return err
	}

	env, err := open(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Logging in to %s...\n", env.BaseURL)

	result := env.Session.Login(cmd.Context(), input.Email, input.Password)
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Error)
	}

	fmt.Fprintln(env.Out, "✓ Login successful!")
	if admin := env.Session.CurrentUser(); admin != nil {
		fmt.Fprintf(env.Out, "  User: %s (%s)\n", admin.Name, admin.Email)
		fmt.Fprintf(env.Out, "  Role: %s\n", admin.Role)
	}

	return nil
}

// promptPassword reads a password without echo when stdin is a terminal
func promptPassword(in io.Reader, prompt io.Writer) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("password is required in non-interactive mode (use --password flag or PLAYERA_PASSWORD env var)")
	}

	fmt.Fprint(prompt, "Password: ")
	bytePassword, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(prompt) // New line after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(bytePassword), nil
}

// NewLogoutCmd creates the logout command
func NewLogoutCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := open(cmd)
			if err != nil {
				return err
			}

			if err := env.Session.Logout(); err != nil {
				return fmt.Errorf("failed to remove stored credentials: %w", err)
			}

			fmt.Fprintf(env.Out, "✓ Logged out of %s\n", env.BaseURL)
			return nil
		},
	}
}

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			admin := env.Session.CurrentUser()
			if admin == nil {
				return errors.New("no admin profile available")
			}
			printAdmin(env.Out, env.BaseURL, admin, env.Session.Token())
			return nil
		},
	}
}

func printAdmin(out io.Writer, baseURL string, admin *auth.AdminProfile, token string) {
	w := bufio.NewWriter(out)
	defer w.Flush()

	fmt.Fprintf(w, "API:         %s\n", baseURL)
	fmt.Fprintf(w, "Name:        %s\n", admin.Name)
	fmt.Fprintf(w, "Email:       %s\n", admin.Email)
	fmt.Fprintf(w, "Role:        %s\n", admin.Role)
	if len(admin.Permissions) > 0 {
		fmt.Fprintf(w, "Permissions: %s\n", strings.Join(admin.Permissions, ", "))
	}
	if last, ok := admin.LastLoginTime(); ok {
		fmt.Fprintf(w, "Last login:  %s\n", last.Local().Format(time.RFC1123))
	}
	if exp, ok := auth.TokenExpiry(token); ok {
		fmt.Fprintf(w, "Token:       expires %s (in %s)\n", exp.Local().Format(time.RFC1123), time.Until(exp).Round(time.Minute))
	}
}
