package commands

import (
	"fmt"
	"os"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/config"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/database"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// Global flags
	envFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pizzactl",
	Short: "Operator tooling for the pizza menu API",
	Long: `pizzactl reads the same environment (and optional .env file) as the API server.

Commands:
  - token    issue a bearer token accepted by the auth gate
  - migrate  create or update the database schema
  - seed     migrate and insert the sample pizzas into an empty database`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if envFile != "" {
			_ = godotenv.Load(envFile)
		}
		level := "warn"
		if verbose {
			level = "debug"
		}
		logging.Setup(os.Getenv("APP_ENV"), level)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newTokenCmd(), newMigrateCmd(), newSeedCmd())
}

// openDatabase loads configuration and connects to the configured database
func openDatabase() (*gorm.DB, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return database.InitDatabase(database.ConfigFrom(conf))
}
