package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/auth"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/config"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token signed with JWT_SECRET",
		Example: `  pizzactl token --subject admin
  curl -H "Authorization: Bearer $(pizzactl token)" localhost:8080/pizza`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("JWT_SECRET") == "" {
				return errors.New("JWT_SECRET must be set; a generated key would not match the server's")
			}
			conf, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if ttl == 0 {
				ttl = conf.TokenTTL
			}
			if subject == "" {
				subject = conf.AuthUsername
			}

			tokens, err := auth.NewTokenService([]byte(conf.JWTSecret), ttl)
			if err != nil {
				return err
			}
			token, err := tokens.Issue(subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Token subject (defaults to AUTH_USERNAME)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to TOKEN_TTL)")
	return cmd
}
