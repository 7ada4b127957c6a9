// Package app wires configuration, storage, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mkholodov/wuguan-backend/internal/adapter/mailer"
	"github.com/mkholodov/wuguan-backend/internal/adapter/postgres"
	activityrepo "github.com/mkholodov/wuguan-backend/internal/adapter/postgres/activity"
	bookmarkrepo "github.com/mkholodov/wuguan-backend/internal/adapter/postgres/bookmark"
	postrepo "github.com/mkholodov/wuguan-backend/internal/adapter/postgres/post"
	profilerepo "github.com/mkholodov/wuguan-backend/internal/adapter/postgres/profile"
	revisionrepo "github.com/mkholodov/wuguan-backend/internal/adapter/postgres/revision"
	sectionrepo "github.com/mkholodov/wuguan-backend/internal/adapter/postgres/section"
	userrepo "github.com/mkholodov/wuguan-backend/internal/adapter/postgres/user"
	"github.com/mkholodov/wuguan-backend/internal/auth"
	"github.com/mkholodov/wuguan-backend/internal/config"
	"github.com/mkholodov/wuguan-backend/internal/notify"
	authsvc "github.com/mkholodov/wuguan-backend/internal/service/auth"
	bookmarksvc "github.com/mkholodov/wuguan-backend/internal/service/bookmark"
	feedsvc "github.com/mkholodov/wuguan-backend/internal/service/feed"
	postsvc "github.com/mkholodov/wuguan-backend/internal/service/post"
	profilesvc "github.com/mkholodov/wuguan-backend/internal/service/profile"
	sectionsvc "github.com/mkholodov/wuguan-backend/internal/service/section"
	"github.com/mkholodov/wuguan-backend/internal/transport/middleware"
	"github.com/mkholodov/wuguan-backend/internal/transport/rest"
)

// mailSender abstracts the outbound mail transport so the SMTP sender and
// the logging stub are interchangeable at wiring time.
type mailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(ctx, logger, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	sections := sectionrepo.New(pool)
	posts := postrepo.New(pool)
	revisions := revisionrepo.New(pool)
	activity := activityrepo.New(pool)
	bookmarks := bookmarkrepo.New(pool)
	profiles := profilerepo.New(pool)
	users := userrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	tokens := auth.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTIssuer,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.EmailTokenTTL,
	)

	sender := newMailSender(logger, cfg.Notify)
	dispatcher := notify.NewDispatcher(logger, profiles, sender, cfg.Notify.SiteURL, cfg.Notify.RecentWindow)

	// Services.
	sectionService := sectionsvc.NewService(logger, sections, posts)
	postService := postsvc.NewService(logger, posts, revisions, sections, activity, txManager, dispatcher)
	feedService := feedsvc.NewService(logger, sections, posts, feedsvc.Options{
		PageSize:         cfg.Content.SectionPageSize,
		QuickSearchLimit: cfg.Content.QuickSearchLimit,
		SnippetRadius:    cfg.Content.SnippetRadius,
	})
	bookmarkService := bookmarksvc.NewService(logger, bookmarks, posts)
	profileService := profilesvc.NewService(logger, profiles, tokens, sender, cfg.Notify.SiteURL)
	authService := authsvc.NewService(logger, users, tokens)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Auth:      rest.NewAuthHandler(authService, logger),
		Sections:  rest.NewSectionHandler(sectionService, logger),
		Posts:     rest.NewPostHandler(postService, logger),
		Feed:      rest.NewFeedHandler(feedService, logger),
		Bookmarks: rest.NewBookmarkHandler(bookmarkService, logger),
		Profile:   rest.NewProfileHandler(profileService, logger),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// newMailSender picks the outbound mail transport. Without an SMTP host, or
// with notifications disabled, mail is logged instead of sent so local
// development does not require a mail server.
func newMailSender(logger *slog.Logger, cfg config.NotifyConfig) mailSender {
	if !cfg.Enabled || cfg.SMTPHost == "" {
		logger.Info("mail delivery disabled, using logging stub")
		return mailer.NewStub(logger)
	}
	return mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.From)
}
