package initialize

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"recipe-book/backend/app/controllers"
	"recipe-book/backend/app/db"
	"recipe-book/backend/app/mailer"
	"recipe-book/backend/app/middleware"
	"recipe-book/backend/app/repo"
	"recipe-book/backend/app/seed"
	"recipe-book/backend/app/services"
	"recipe-book/backend/app/session"
	"recipe-book/backend/app/worker"
	"recipe-book/backend/config"
	"recipe-book/backend/global"
	"recipe-book/backend/router"
)

type App struct {
	Cfg      *config.Config
	Store    *repo.Store
	Sessions *session.Registry
	Pool     *worker.Pool
	Router   http.Handler
	Users    *services.UserService
}

// Build loads the config file, keeps watching it for log level changes and
// wires the application.
func Build(configPath string) (*App, error) {
	cfg, err := config.Watch(configPath, applyLogLevel)
	if err != nil {
		return nil, err
	}
	SetupLogger(cfg.Log)
	return New(context.Background(), cfg)
}

// OpenStore connects to the configured database and migrates the schema.
func OpenStore(cfg config.DB) (*repo.Store, error) {
	gdb, err := db.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := db.Migrate(gdb); err != nil {
		return nil, err
	}
	global.Mdb = gdb
	return repo.NewStore(gdb), nil
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	global.Config = cfg

	store, err := OpenStore(cfg.DB)
	if err != nil {
		return nil, err
	}

	pool := worker.New(worker.Config{
		Core:            cfg.Mail.Pool.Core,
		Max:             cfg.Mail.Pool.Max,
		Queue:           cfg.Mail.Pool.Queue,
		KeepAlive:       cfg.Mail.Pool.KeepAlive,
		ShutdownTimeout: cfg.Mail.Pool.ShutdownTimeout,
	})
	sessions := session.NewRegistry()
	repos := store.Repos()

	// Services
	guard := services.NewGuard(sessions, repos.Users, repos.Recipes)
	authSvc := services.NewAuthService(repos.Users, sessions)
	userSvc := services.NewUserService(store, mailer.New(cfg.Mail, pool))
	recipeSvc := services.NewRecipeService(store)
	commentSvc := services.NewCommentService(store)

	if err := prepareData(ctx, cfg, store, userSvc); err != nil {
		return nil, err
	}

	// Router
	h := router.NewRouter(router.Controllers{
		HTTP:     controllers.NewHTTPController(),
		Auth:     controllers.NewAuthController(authSvc),
		Users:    controllers.NewUserController(guard, userSvc),
		Recipes:  controllers.NewRecipeController(guard, recipeSvc),
		Comments: controllers.NewCommentController(guard, commentSvc),
	}, &middleware.Session{Guard: guard, Header: cfg.Session.Header}, cfg.CORS.Origins)

	return &App{Cfg: cfg, Store: store, Sessions: sessions, Pool: pool, Router: h, Users: userSvc}, nil
}

// prepareData seeds an empty store when asked to, makes sure the bootstrap
// admin exists and logs what the store holds.
func prepareData(ctx context.Context, cfg *config.Config, store *repo.Store, users *services.UserService) error {
	empty, err := seed.Empty(ctx, store)
	if err != nil {
		return err
	}
	if empty && cfg.Seed.OnStart {
		fx, err := seed.Load(cfg.Seed.Path)
		if err != nil {
			return err
		}
		if err := seed.Apply(ctx, store, fx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	if err := users.EnsureAdmin(ctx, cfg.Admin.User, cfg.Admin.Password, cfg.Admin.Email); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	return seed.Dump(ctx, store)
}

// Close drains pending emails and closes the database.
func (a *App) Close() error {
	poolErr := a.Pool.Shutdown()
	var dbErr error
	if sqlDB, err := a.Store.DB().DB(); err == nil {
		dbErr = sqlDB.Close()
	}
	return errors.Join(poolErr, dbErr)
}
