package main

import (
	"log/slog"

	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/auth"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/config"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/database"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/handlers"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/mail"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/repository"
	"github.com/GeorgeR-1/jd-ticketing-project-rest/internal/services"
	"github.com/samber/oops"
	"gorm.io/gorm"
)

// app holds the connected datastore and the services built on it.
type app struct {
	db       *gorm.DB
	services handlers.Services
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	db, err := database.Connect(cfg.DB)
	if err != nil {
		return nil, oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
	}

	var mailer mail.Mailer
	if cfg.Mail.Host == "" {
		logger.Warn("mail.host is empty, confirmation emails are only logged")
		mailer = mail.NewLogMailer(logger)
	} else {
		mailer = mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		})
	}

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokenRepo := repository.NewConfirmationTokenRepository(db)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	confirmations := services.NewConfirmationService(tokenRepo, mailer, cfg.Server.BaseURL)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)

	return &app{
		db: db,
		services: handlers.Services{
			Auth:          services.NewAuthService(userRepo, tokens),
			Confirmations: confirmations,
			Users:         services.NewUserService(userRepo, roleRepo, projectRepo, taskRepo, confirmations),
			Roles:         services.NewRoleService(roleRepo),
			Projects:      services.NewProjectService(projectRepo, userRepo, taskService),
			Tasks:         taskService,
		},
	}, nil
}

func (a *app) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
