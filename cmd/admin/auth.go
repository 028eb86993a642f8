package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"animal-control-admin/internal/adapters/auth/recordsapi"
	"animal-control-admin/internal/modal"
	"animal-control-admin/internal/ports/auth"
)

// passwordFrom: flag, o ADMIN_PASSWORD para no dejarlo en el historial del shell.
func passwordFrom(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv("ADMIN_PASSWORD"); env != "" {
		return env, nil
	}
	return "", errors.New("password required (--password or ADMIN_PASSWORD)")
}

func loginCommand(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordFrom(password)
			if err != nil {
				return err
			}
			in := auth.Credentials{Email: strings.TrimSpace(email), Password: pw}
			if err := modal.Validate(in); err != nil {
				return err
			}

			var authn auth.Authenticator = recordsapi.NewClient(a.api)
			sess, err := authn.Login(cmd.Context(), in)
			if err != nil {
				return err
			}
			if err := a.sessions.Save(sess); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			a.sess = sess

			fmt.Fprintf(a.out, "Logged in as %s\n", sess.User)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func logoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func signupCommand(a *app) *cobra.Command {
	var in auth.SignupInput

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account on the records API",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordFrom(in.Password)
			if err != nil {
				return err
			}
			in.Password = pw
			if err := modal.Validate(in); err != nil {
				return err
			}
			if err := recordsapi.NewClient(a.api).Signup(cmd.Context(), in); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Account created for %s; run `admin login` next\n", in.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&in.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "Last name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
