package main

import (
	"context"
	"fmt"
	"time"

	"github.com/internlink/internlink/board/account/accountapi"
	"github.com/internlink/internlink/board/account/accountinfra"
	"github.com/internlink/internlink/board/account/accountsrv"
	"github.com/internlink/internlink/board/application/applicationapi"
	"github.com/internlink/internlink/board/application/applicationinfra"
	"github.com/internlink/internlink/board/application/applicationsrv"
	"github.com/internlink/internlink/board/message/messageapi"
	"github.com/internlink/internlink/board/message/messageinfra"
	"github.com/internlink/internlink/board/message/messagesrv"
	"github.com/internlink/internlink/board/posting/postingapi"
	"github.com/internlink/internlink/board/posting/postinginfra"
	"github.com/internlink/internlink/board/posting/postingsrv"
	"github.com/internlink/internlink/board/seeker/seekerapi"
	"github.com/internlink/internlink/board/seeker/seekerinfra"
	"github.com/internlink/internlink/board/seeker/seekersrv"
	"github.com/internlink/internlink/pkg/auth"
	"github.com/internlink/internlink/pkg/logx"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config Config

	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Services
	TokenService       auth.TokenService
	AccountService     *accountsrv.AccountService
	PostingService     *postingsrv.PostingService
	ApplicationService *applicationsrv.ApplicationService
	SeekerService      *seekersrv.SeekerService
	MessageService     *messagesrv.MessageService

	// API Handlers
	AccountHandlers     *accountapi.Handlers
	PostingHandlers     *postingapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	SeekerHandlers      *seekerapi.Handlers
	MessageHandlers     *messageapi.Handlers

	// Middleware
	AuthMiddleware *auth.Middleware
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Config.DBHost, c.Config.DBPort, c.Config.DBUser, c.Config.DBPass, c.Config.DBName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection. The view counter degrades gracefully without it.
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	accountRepo := accountinfra.NewPostgresAccountRepository(c.DB)
	postingRepo := postinginfra.NewPostgresPostingRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	seekerRepo := seekerinfra.NewPostgresSeekerRepository(c.DB)
	messageRepo := messageinfra.NewPostgresMessageRepository(c.DB)
	viewCounter := postinginfra.NewRedisViewCounter(c.Redis)

	// --- Token Service ---
	c.TokenService = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.TokenTTL,
		c.Config.JWTIssuer,
	)

	// --- Domain Services ---
	c.AccountService = accountsrv.NewAccountService(accountRepo, c.TokenService)
	c.PostingService = postingsrv.NewPostingService(postingRepo, viewCounter)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, postingRepo)
	c.SeekerService = seekersrv.NewSeekerService(seekerRepo)
	c.MessageService = messagesrv.NewMessageService(messageRepo)

	// --- Handlers ---
	c.AccountHandlers = accountapi.NewHandlers(c.AccountService)
	c.PostingHandlers = postingapi.NewHandlers(c.PostingService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.SeekerHandlers = seekerapi.NewHandlers(c.SeekerService)
	c.MessageHandlers = messageapi.NewHandlers(c.MessageService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewMiddleware(c.TokenService)
}
