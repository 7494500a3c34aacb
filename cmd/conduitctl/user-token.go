package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conduit-in-go/pkg/db"
	gormstore "conduit-in-go/pkg/server/store/gorm"
)

// userTokenCmd represents the user token command
var userTokenCmd = &cobra.Command{
	Use:   "token USERNAME",
	Short: "Retrieve a user's authentication token",
	Long: `Retrieve the authentication token for an existing user.

Example:
  conduitctl user token jake`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]

		conn, err := db.Connect(db.Config{URL: db.URL()})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			os.Exit(1)
		}

		users := gormstore.NewUsersStore(conn)
		user, err := users.FindByUsername(username)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to find user %s: %v\n", username, err)
			os.Exit(1)
		}

		fmt.Println(user.Token)
	},
}

func init() {
	userCmd.AddCommand(userTokenCmd)
}
