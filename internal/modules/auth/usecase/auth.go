package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"skillbridge/internal/modules/auth/domain"
	"skillbridge/internal/modules/auth/dto"
	authout "skillbridge/internal/modules/auth/port/out"
	"skillbridge/internal/modules/auth/service"
)

// Interactor owns the one Session in the process. Every mutation writes
// through to the durable store before returning, so the in-memory pair
// and the persisted pair never diverge. Bubble Tea runs commands on
// their own goroutines, hence the mutex around the session value.
type Interactor struct {
	svc    *service.AuthService
	store  authout.SessionStore
	api    authout.AuthAPI
	logger *zap.Logger

	mu      sync.RWMutex
	session domain.Session
}

func NewInteractor(svc *service.AuthService, store authout.SessionStore, api authout.AuthAPI, logger *zap.Logger) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{svc: svc, store: store, api: api, logger: logger}
}

func (i *Interactor) Restore(ctx context.Context) (dto.SessionOutput, bool) {
	session, err := i.store.Load(ctx)
	if err != nil || !session.Valid() {
		// Partial or corrupt entries are scrubbed so the next restore
		// starts clean.
		_ = i.store.Clear(ctx)
		return dto.SessionOutput{}, false
	}
	if !i.svc.TokenUsable(session.Token) {
		i.logger.Info("discarding expired session", zap.Int("user_id", session.User.ID))
		_ = i.store.Clear(ctx)
		return dto.SessionOutput{}, false
	}
	i.setSession(session)
	return sessionOutput(session), true
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error) {
	if err := i.svc.ValidateLogin(input.Email, input.Password); err != nil {
		return dto.LoginOutput{}, err
	}

	session, err := i.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		// Fail closed: a rejected login invalidates whatever session
		// existed before the attempt.
		i.setSession(domain.Session{})
		_ = i.store.Clear(ctx)
		return dto.LoginOutput{}, err
	}

	i.setSession(session)
	if err := i.store.Save(ctx, session); err != nil {
		// A half-written pair must not survive either.
		i.setSession(domain.Session{})
		_ = i.store.Clear(ctx)
		return dto.LoginOutput{}, err
	}
	i.logger.Info("logged in", zap.Int("user_id", session.User.ID))
	return dto.LoginOutput{UserID: session.User.ID, Email: session.User.Email, Message: "Login successful!"}, nil
}

func (i *Interactor) Logout(ctx context.Context) {
	i.setSession(domain.Session{})
	_ = i.store.Clear(ctx)
	i.logger.Info("logged out")
}

func (i *Interactor) Signup(ctx context.Context, input dto.SignupInput) (dto.SignupOutput, error) {
	if err := i.svc.ValidateSignup(input.FirstName, input.LastName, input.Email, input.Password, input.ConfirmPassword); err != nil {
		return dto.SignupOutput{}, err
	}
	message, err := i.api.Signup(ctx, input)
	if err != nil {
		return dto.SignupOutput{}, err
	}
	// Signup does not authenticate; login stays a separate step.
	return dto.SignupOutput{Message: message}, nil
}

func (i *Interactor) RequestOTP(ctx context.Context, email string) (dto.MessageOutput, error) {
	if err := i.svc.ValidateEmail(email); err != nil {
		return dto.MessageOutput{}, err
	}
	message, err := i.api.RequestOTP(ctx, email)
	if err != nil {
		return dto.MessageOutput{}, err
	}
	return dto.MessageOutput{Message: message}, nil
}

func (i *Interactor) VerifyOTP(ctx context.Context, email, code string) (dto.MessageOutput, error) {
	if err := i.svc.ValidateEmail(email); err != nil {
		return dto.MessageOutput{}, err
	}
	message, err := i.api.VerifyOTP(ctx, email, code)
	if err != nil {
		return dto.MessageOutput{}, err
	}
	return dto.MessageOutput{Message: message}, nil
}

func (i *Interactor) Current(_ context.Context) (dto.SessionOutput, bool) {
	session := i.currentSession()
	if !session.Valid() {
		return dto.SessionOutput{}, false
	}
	return sessionOutput(session), true
}

func (i *Interactor) Invalidate(ctx context.Context) {
	i.setSession(domain.Session{})
	_ = i.store.Clear(ctx)
	i.logger.Warn("session invalidated by backend")
}

// Token and UserID implement api.TokenSource so outbound protected
// calls carry the current credential.

func (i *Interactor) Token() string {
	return i.currentSession().Token
}

func (i *Interactor) UserID() int {
	return i.currentSession().User.ID
}

func (i *Interactor) setSession(session domain.Session) {
	i.mu.Lock()
	i.session = session
	i.mu.Unlock()
}

func (i *Interactor) currentSession() domain.Session {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.session
}

func sessionOutput(session domain.Session) dto.SessionOutput {
	return dto.SessionOutput{Token: session.Token, UserID: session.User.ID, Email: session.User.Email}
}
