package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"conduit-in-go/pkg/db"
	"conduit-in-go/pkg/model"
	gormstore "conduit-in-go/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create USERNAME EMAIL",
	Short: "Create a new user",
	Long: `Create a new user with a profile and an authentication token.

The generated token is printed on success. It is the user's API
credential and does not expire.

Example:
  conduitctl user create jake jake@jake.jake --password secret`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]
		email := args[1]
		password, _ := cmd.Flags().GetString("password")
		bio, _ := cmd.Flags().GetString("bio")

		if password == "" {
			fmt.Fprintln(os.Stderr, "--password is required")
			os.Exit(1)
		}

		if err := createUser(username, email, password, bio); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)

	userCreateCmd.Flags().String("password", "", "password for the new user")
	userCreateCmd.Flags().String("bio", "", "profile bio for the new user")
}

func createUser(username, email, password, bio string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := model.GenerateToken()
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	conn, err := db.Connect(db.Config{URL: db.URL()})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Token:        token,
		Profile:      &model.Profile{Bio: bio},
	}

	users := gormstore.NewUsersStore(conn)
	if err := users.CreateUser(user); err != nil {
		return err
	}

	fmt.Printf("Created user %s\n", username)
	fmt.Printf("Token: %s\n", token)
	return nil
}
