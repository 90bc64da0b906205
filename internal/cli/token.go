package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"photo-backend/internal/services"
)

var (
	tokenUserID uint
	tokenEmail  string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a session token for a user",
	Long:  `Signs a bearer token with JWT_SECRET for the given user id and email, for calling the API by hand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := services.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL).Sign(tokenUserID, tokenEmail)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().UintVar(&tokenUserID, "id", 0, "user id")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "user email")
	_ = tokenCmd.MarkFlagRequired("id")
	_ = tokenCmd.MarkFlagRequired("email")
}
