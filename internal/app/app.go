package app

import (
	"context"
	"net/http"

	"github.com/cemtras/authgate/internal/pkg/clock"
	"github.com/cemtras/authgate/internal/pkg/config"
	"github.com/cemtras/authgate/internal/pkg/goroutine"
	"github.com/cemtras/authgate/internal/pkg/instrument"
	"github.com/cemtras/authgate/internal/pkg/kv"
	"github.com/cemtras/authgate/internal/pkg/mail"
	"github.com/cemtras/authgate/internal/pkg/router"
	"github.com/cemtras/authgate/internal/pkg/uid"
	"github.com/cemtras/authgate/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	mail      mail.Mail
	kv        kv.Store

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initKV()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
