package usecase

import (
	"context"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/clock"
	"github.com/cemtras/authgate/internal/pkg/config"
	"github.com/cemtras/authgate/internal/pkg/goroutine"
	"github.com/cemtras/authgate/internal/pkg/instrument"
	"github.com/cemtras/authgate/internal/pkg/uid"
	"github.com/cemtras/authgate/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoStore interface {
	CreateAccount(ctx context.Context, cred entity.Credential) error
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Credential, error)

	GetSession(ctx context.Context) (*entity.User, error)
	SaveSession(ctx context.Context, user entity.User) error
	DeleteSession(ctx context.Context) error
}

type repoCodes interface {
	Get(ctx context.Context, identifier string) (*entity.CodeEntry, error)
	Put(ctx context.Context, identifier string, entry entity.CodeEntry) error
	Delete(ctx context.Context, identifier string) error
}

type repoDelivery interface {
	Send(ctx context.Context, identifier, code string) error
}

type Usecase struct {
	store     repoStore
	codes     repoCodes
	delivery  repoDelivery
	validator validator.Validator
	cfg       config.Config
	uuid      uid.StringID
	clock     clock.Clocker
	ins       instrument.Instrumentation
	goroutine *goroutine.Manager
}

type Dependency struct {
	Store      repoStore
	Codes      repoCodes
	Delivery   repoDelivery
	Validator  validator.Validator
	Config     config.Config
	UUID       uid.StringID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
	Goroutine  *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		store:     dep.Store,
		codes:     dep.Codes,
		delivery:  dep.Delivery,
		validator: dep.Validator,
		cfg:       dep.Config,
		uuid:      dep.UUID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
		goroutine: dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}
