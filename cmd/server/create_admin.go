package main

import (
	"errors"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/auth"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/constants"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/database"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/logging"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/models"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

type adminOptions struct {
	username  string
	password  string
	firstName string
	lastName  string
}

// NewCreateAdminCmd creates the create-admin subcommand. User creation over
// HTTP requires an Admin, so the first one is created here.
func NewCreateAdminCmd(configFile *string) *cobra.Command {
	var opts adminOptions

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an enabled Admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreateAdmin(cmd, *configFile, opts)
		},
	}

	cmd.Flags().StringVar(&opts.username, "username", "", "admin user name (email)")
	cmd.Flags().StringVar(&opts.password, "password", "", "admin password")
	cmd.Flags().StringVar(&opts.firstName, "first-name", "Admin", "admin first name")
	cmd.Flags().StringVar(&opts.lastName, "last-name", "Admin", "admin last name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runCreateAdmin(cmd *cobra.Command, configFile string, opts adminOptions) error {
	if len(opts.password) < constants.MinPasswordLength {
		return oops.Code("INVALID_PASSWORD").Errorf("password must be at least %d characters", constants.MinPasswordLength)
	}

	cfg, err := loadConfig(cmd, configFile)
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}
	logger := logging.Init(cfg.Log.Level, cfg.Log.Format)

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := database.Migrate(a.db); err != nil {
		return oops.Code("MIGRATION_FAILED").With("operation", "run migrations").Wrap(err)
	}

	ctx := cmd.Context()
	users := a.services.Users

	role, err := a.services.Roles.FindByDescription(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}

	user, err := users.Create(ctx, services.CreateUserInput{
		UserName:  opts.username,
		Password:  opts.password,
		FirstName: opts.firstName,
		LastName:  opts.lastName,
		RoleID:    role.ID,
		Enabled:   true,
	})
	if errors.Is(err, services.ErrDuplicateUser) {
		existing, findErr := users.FindByUsername(ctx, auth.Identity{Role: models.RoleAdmin}, opts.username)
		if findErr != nil {
			return findErr
		}
		if !existing.Enabled {
			if err := users.Confirm(ctx, existing); err != nil {
				return err
			}
			cmd.Printf("Enabled existing user %s\n", existing.UserName)
			return nil
		}
		cmd.Printf("User %s already exists\n", existing.UserName)
		return nil
	}
	if err != nil {
		return err
	}

	cmd.Printf("Created admin %s (id %d)\n", user.UserName, user.ID)
	return nil
}
