package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/config"
	"github.com/cemtras/authgate/internal/pkg/goerror"
	"github.com/cemtras/authgate/internal/pkg/goroutine"
	"github.com/cemtras/authgate/internal/pkg/instrument"
	"github.com/cemtras/authgate/internal/pkg/validator"
)

const testConfigYAML = `
modules:
  auth:
    otp_ttl_seconds: 60
    expose_otp_code: true
`

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type stubUUID struct {
	id string
}

func (s stubUUID) Generate() string { return s.id }

type fakeStore struct {
	createErr error
	findErr   error
	getErr    error
	saveErr   error
	deleteErr error

	creds   map[string]entity.Credential
	created []entity.Credential
	session *entity.User
	cleared bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{creds: make(map[string]entity.Credential)}
}

func (f *fakeStore) CreateAccount(_ context.Context, cred entity.Credential) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, cred)
	f.creds[cred.Email] = cred
	f.creds[cred.Mobile] = cred
	return nil
}

func (f *fakeStore) FindByIdentifier(_ context.Context, identifier string) (*entity.Credential, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	cred, ok := f.creds[identifier]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &cred, nil
}

func (f *fakeStore) GetSession(_ context.Context) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.session == nil {
		return nil, goerror.ErrNotFound
	}
	return f.session, nil
}

func (f *fakeStore) SaveSession(_ context.Context, user entity.User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.session = &user
	return nil
}

func (f *fakeStore) DeleteSession(_ context.Context) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.session = nil
	f.cleared = true
	return nil
}

type fakeCodes struct {
	getErr    error
	putErr    error
	deleteErr error

	mu      sync.Mutex
	entries map[string]entity.CodeEntry
}

func newFakeCodes() *fakeCodes {
	return &fakeCodes{entries: make(map[string]entity.CodeEntry)}
}

func (f *fakeCodes) Get(_ context.Context, identifier string) (*entity.CodeEntry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[identifier]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &entry, nil
}

func (f *fakeCodes) Put(_ context.Context, identifier string, entry entity.CodeEntry) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[identifier] = entry
	return nil
}

func (f *fakeCodes) Delete(_ context.Context, identifier string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, identifier)
	return nil
}

type sentCode struct {
	identifier string
	code       string
}

type fakeDelivery struct {
	sendErr error

	mu   sync.Mutex
	sent []sentCode
}

func (f *fakeDelivery) Send(_ context.Context, identifier, code string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentCode{identifier: identifier, code: code})
	return nil
}

func (f *fakeDelivery) all() []sentCode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentCode(nil), f.sent...)
}

type testDeps struct {
	store     *fakeStore
	codes     *fakeCodes
	delivery  *fakeDelivery
	goroutine *goroutine.Manager
}

func newTestUsecase(t *testing.T, cfgYAML string) (*Usecase, *testDeps) {
	t.Helper()

	if cfgYAML == "" {
		cfgYAML = testConfigYAML
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(cfgYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	deps := &testDeps{
		store:     newFakeStore(),
		codes:     newFakeCodes(),
		delivery:  &fakeDelivery{},
		goroutine: goroutine.NewManager(4),
	}

	uc := New(Dependency{
		Store:      deps.store,
		Codes:      deps.codes,
		Delivery:   deps.delivery,
		Validator:  v10,
		Config:     cfg,
		UUID:       stubUUID{id: "user-1"},
		Clock:      &fixedClock{now: testNow},
		Instrument: instrument.NewNoop(),
		Goroutine:  deps.goroutine,
	})

	return uc, deps
}

func assertGoError(t *testing.T, err error, wantCode goerror.Code) *goerror.Error {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	gerr := &goerror.Error{}
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	if gerr.Code() != wantCode {
		t.Fatalf("expected code %v, got %v (%v)", wantCode, gerr.Code(), gerr)
	}

	return gerr
}
