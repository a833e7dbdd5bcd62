package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/labelforge/labelforge/pkg/db"
	gormstore "github.com/labelforge/labelforge/pkg/server/store/gorm"
)

// userResetPasswordCmd represents the user reset-password command
var userResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <login>",
	Short: "Reset a user's password",
	Long: `Reset the password for a user.

The new password is generated and printed to stdout.

Example:
  labelctl user reset-password alice`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		login := args[0]

		password, err := resetPassword(login)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reset password: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Password reset for '%s'\n", login)
		fmt.Printf("New password: %s\n", password)
	},
}

func init() {
	userCmd.AddCommand(userResetPasswordCmd)
}

func resetPassword(login string) (string, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	principals := gormstore.NewPrincipalsStore(database)

	principal, err := principals.FetchPrincipalByLogin(ctx, login)
	if err != nil {
		return "", err
	}
	if principal == nil {
		return "", fmt.Errorf("user not found: %s", login)
	}

	password, err := generatePassword()
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := principals.UpdatePasswordHash(ctx, principal.ID, hash); err != nil {
		return "", fmt.Errorf("failed to update credentials: %w", err)
	}

	return password, nil
}
