// Package auth wires the OTP verification, account, and session module:
// inbound HTTP endpoints, the usecase layer, and the outbound stores and
// delivery channels.
package auth

import (
	"context"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/auth/inbound"
	"github.com/cemtras/authgate/internal/auth/outbound/codestore"
	"github.com/cemtras/authgate/internal/auth/outbound/delivery"
	"github.com/cemtras/authgate/internal/auth/outbound/store"
	"github.com/cemtras/authgate/internal/auth/usecase"
	"github.com/cemtras/authgate/internal/pkg/clock"
	"github.com/cemtras/authgate/internal/pkg/config"
	"github.com/cemtras/authgate/internal/pkg/goroutine"
	"github.com/cemtras/authgate/internal/pkg/instrument"
	"github.com/cemtras/authgate/internal/pkg/kv"
	"github.com/cemtras/authgate/internal/pkg/mail"
	"github.com/cemtras/authgate/internal/pkg/router"
	"github.com/cemtras/authgate/internal/pkg/uid"
	"github.com/cemtras/authgate/internal/pkg/validator"
	"github.com/redis/go-redis/v9"
)

type Dependency struct {
	KV         kv.Store                   `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`

	// CacheConn backs the shared code store; nil selects the in-process one.
	CacheConn *redis.Client
	// Mailer backs email code delivery; nil selects the demo log channel.
	Mailer mail.Mail
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoStore := store.NewStore(
		dep.KV,
		dep.Instrument,
		dep.Config.GetString("modules.auth.accounts_key"),
		dep.Config.GetString("modules.auth.session_key"),
	)

	codes := buildCodeStore(dep)
	channel := buildDelivery(dep)

	uc := usecase.New(usecase.Dependency{
		Store:      repoStore,
		Codes:      codes,
		Delivery:   channel,
		Validator:  dep.Validator,
		Config:     dep.Config,
		UUID:       dep.UUID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		Goroutine:  dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

type codeStore interface {
	Get(ctx context.Context, identifier string) (*entity.CodeEntry, error)
	Put(ctx context.Context, identifier string, entry entity.CodeEntry) error
	Delete(ctx context.Context, identifier string) error
}

type deliveryChannel interface {
	Send(ctx context.Context, identifier, code string) error
}

func buildCodeStore(dep Dependency) codeStore {
	if dep.Config.GetString("modules.auth.code_store") == "redis" && dep.CacheConn != nil {
		return codestore.NewRedis(dep.CacheConn, dep.Clock, dep.Config.GetString("modules.auth.code_prefix"))
	}
	return codestore.NewMemory()
}

func buildDelivery(dep Dependency) deliveryChannel {
	if dep.Config.GetString("modules.auth.delivery") == "smtp" && dep.Mailer != nil {
		return delivery.NewSMTP(dep.Mailer)
	}
	return delivery.NewLog()
}
