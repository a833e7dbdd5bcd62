package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/labelforge/labelforge/pkg/db"
	"github.com/labelforge/labelforge/pkg/model"
	gormstore "github.com/labelforge/labelforge/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create <login>",
	Short: "Create a user",
	Long: `Create a user with the given login.

This is the only way to create an admin; the HTTP signup endpoint only
accepts the annotator and reviewer roles.

If no password is provided, a random one is generated and printed to STDOUT.

Example:
  labelctl user create alice
  labelctl user create admin --role admin
  labelctl user create bob --role reviewer --password s3cret`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		login := args[0]
		role, _ := cmd.Flags().GetString("role")
		password, _ := cmd.Flags().GetString("password")

		generated := password == ""
		id, password, err := createUser(login, role, password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created user '%s' (role: %s, id: %s)\n", login, role, id)
		if generated {
			fmt.Printf("Password for %s: %s\n", login, password)
		}
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().StringP("role", "r", model.RoleAnnotator, "User role (annotator, reviewer, or admin)")
	userCreateCmd.Flags().StringP("password", "p", "", "Password (generated if omitted)")
}

func createUser(login, role, password string) (id string, pw string, err error) {
	switch role {
	case model.RoleAnnotator, model.RoleReviewer, model.RoleAdmin:
	default:
		return "", "", fmt.Errorf("invalid role: %s", role)
	}

	if password == "" {
		password, err = generatePassword()
		if err != nil {
			return "", "", fmt.Errorf("failed to generate password: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", "", err
	}

	principal := &model.Principal{
		ID:    uuid.NewString(),
		Login: login,
		Role:  role,
	}

	principals := gormstore.NewPrincipalsStore(database)
	if err := principals.CreatePrincipal(context.Background(), principal, hash); err != nil {
		return "", "", err
	}

	return principal.ID, password, nil
}

func generatePassword() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
