package cli

import (
	"fmt"

	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/repository"
	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/service"
	"github.com/PullStackDeveloper/ntd-calculator-user/internal/infrastructure/sqlite"
	"github.com/PullStackDeveloper/ntd-calculator-user/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ntd-user",
	Short: "User account and authentication service",
	Long: `A minimal user-account service.

It provides:
- User registration with salted password hashing
- Username/password authentication
- Signed bearer tokens for stateless sessions
- Account status management (active/inactive)
- REST API with token-gated routes`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/ntd-user/config.yml)")
}

// initServices initializes all services
func initServices() (*Services, error) {
	// Initialize database
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	userRepo := sqlite.NewUserRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userService, cfg.JWTSecretKey, cfg.JWTAlgorithm, cfg.TokenExpiry())

	return &Services{
		DB:          db,
		UserRepo:    userRepo,
		UserService: userService,
		AuthService: authService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB          *sqlite.DB
	UserRepo    repository.UserRepository
	UserService *service.UserService
	AuthService *service.AuthService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
