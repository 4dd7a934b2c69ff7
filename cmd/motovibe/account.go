package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umithief/motovibe6/internal/usecase"
)

func registerCmd(sh *shell) *cobra.Command {
	var (
		input    usecase.RegisterInput
		remember bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := sh.app.Register(cmd.Context(), &input, remember)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", user.Name, user.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&input.Email, "email", "", "E-mail address")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&input.Address, "address", "", "Delivery address")
	cmd.Flags().BoolVar(&remember, "remember", true, "Keep the session for later commands")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func loginCmd(sh *shell) *cobra.Command {
	var (
		email    string
		password string
		remember bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := sh.app.Login(cmd.Context(), email, password, remember)
			if err != nil {
				return err
			}

			role := "customer"
			if user.IsAdmin {
				role = "admin"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s> (%s)\n", user.Name, user.Email, role)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "E-mail address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().BoolVar(&remember, "remember", true, "Keep the session for later commands")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func logoutCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return sh.app.Logout()
		},
	}
}

func whoamiCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := sh.app.Session()
			if session == nil || session.User == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}

			u := session.User
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", u.Name, u.Email)
			if u.IsAdmin {
				fmt.Fprintln(cmd.OutOrStdout(), "role: admin")
			}

			return nil
		},
	}
}
