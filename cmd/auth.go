package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johngriebel/griddy-go/auth"
	"github.com/johngriebel/griddy-go/griddy"
)

var (
	refreshToken string
	expiresAt    string
)

// authCmd represents the auth command group
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Inspect and replace the stored API token",
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the configured token is accepted by the API",
	RunE:  runAuthStatus,
}

var authSetTokenCmd = &cobra.Command{
	Use:   "set-token TOKEN",
	Short: "Replace the access token for this invocation and verify it",
	Long: `Replace the access token in the in-memory credential store and verify it
against the API. Tokens are not persisted; update api.access_token in your
config file to keep the new token across runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runAuthSetToken,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authSetTokenCmd)

	authSetTokenCmd.Flags().StringVar(&refreshToken, "refresh-token", "", "refresh token for external re-auth flows")
	authSetTokenCmd.Flags().StringVar(&expiresAt, "expires-at", "", "token expiry (RFC 3339)")
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	creds, err := store.Get()
	if err != nil {
		return err
	}

	if creds.Expired(time.Now()) {
		fmt.Println("✗ Token is expired.")
		return nil
	}

	if err := verifyToken(context.Background()); err != nil {
		if griddy.IsUnauthorized(err) {
			fmt.Println("✗ Token was rejected by the API.")
			return nil
		}
		return err
	}

	fmt.Println("✓ Token is valid.")
	return nil
}

func runAuthSetToken(cmd *cobra.Command, args []string) error {
	creds := auth.Credentials{
		AccessToken:  args[0],
		RefreshToken: refreshToken,
	}
	if expiresAt != "" {
		parsed, err := time.Parse(time.RFC3339, expiresAt)
		if err != nil {
			return fmt.Errorf("invalid --expires-at value: %w", err)
		}
		creds.ExpiresAt = parsed
	}

	if err := store.Replace(creds); err != nil {
		return err
	}

	if err := verifyToken(context.Background()); err != nil {
		if griddy.IsUnauthorized(err) {
			fmt.Println("✗ New token was rejected by the API.")
			return nil
		}
		return err
	}

	fmt.Println("✓ Token accepted. Update api.access_token in your config to persist it.")
	return nil
}

// verifyToken makes a cheap authenticated call to prove the token works.
func verifyToken(ctx context.Context) error {
	_, err := client.Teams().List(ctx)
	return err
}
