package app

import (
	"context"

	"github.com/CreativeMB/Server/internal/config"
	"github.com/CreativeMB/Server/internal/directory"
	"github.com/CreativeMB/Server/internal/docs"
	"github.com/CreativeMB/Server/internal/handler"
	"github.com/CreativeMB/Server/internal/mail"
	"github.com/CreativeMB/Server/internal/middleware"
	"github.com/CreativeMB/Server/internal/notify"
	"github.com/CreativeMB/Server/internal/presence"
	"github.com/CreativeMB/Server/internal/user"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	directoryStore := directory.NewPostgresStore(infra.DB)
	presenceStore := presence.NewRedisStore(infra.Redis.Client)
	docStore := docs.NewMongoStore(infra.Mongo.Database(cfg.MongoDatabase))

	resolver := user.NewResolver(
		user.KeyScheme(cfg.PresenceKeyScheme),
		directoryStore,
		presenceStore,
	)

	deleter := user.NewDeleter(
		directoryStore,
		presenceStore,
		docStore,
		resolver,
	)

	transport := mail.NewSMTPTransport(
		cfg.BrevoHost,
		cfg.BrevoPort,
		cfg.BrevoUser,
		cfg.BrevoPass,
	)

	dispatcher := notify.NewDispatcher(transport, cfg.MailFrom, cfg.MailTo)

	h := handler.NewHandler(deleter, dispatcher)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	h.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, infra.close, nil
}
