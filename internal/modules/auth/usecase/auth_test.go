package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"skillbridge/internal/modules/auth/domain"
	"skillbridge/internal/modules/auth/dto"
	"skillbridge/internal/modules/auth/service"
	"skillbridge/internal/modules/auth/usecase"
	"skillbridge/internal/platform/clock"
	apperrors "skillbridge/internal/platform/errors"
)

type fakeStore struct {
	session    domain.Session
	saved      bool
	saveErr    error
	clearCalls int
}

func (f *fakeStore) Save(_ context.Context, session domain.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.session = session
	f.saved = true
	return nil
}

func (f *fakeStore) Load(context.Context) (domain.Session, error) {
	if !f.session.Valid() {
		return domain.Session{}, apperrors.ErrNoSession
	}
	return f.session, nil
}

func (f *fakeStore) Clear(context.Context) error {
	f.session = domain.Session{}
	f.saved = false
	f.clearCalls++
	return nil
}

type fakeAPI struct {
	loginCalls int
	loginErr   error
	session    domain.Session
}

func (f *fakeAPI) Login(context.Context, string, string) (domain.Session, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return domain.Session{}, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAPI) Signup(context.Context, dto.SignupInput) (string, error) {
	return "User created successfully! Please log in.", nil
}

func (f *fakeAPI) RequestOTP(context.Context, string) (string, error) {
	return "OTP sent", nil
}

func (f *fakeAPI) VerifyOTP(context.Context, string, string) (string, error) {
	return "Email verified", nil
}

func newInteractor(store *fakeStore, api *fakeAPI) *usecase.Interactor {
	return usecase.NewInteractor(service.NewAuthService(clock.SystemClock{}), store, api, nil)
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": expiresAt.Unix(),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestLoginPersistsSession(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	api := &fakeAPI{session: domain.Session{
		Token: "tok-1",
		User:  domain.User{ID: 7, Email: "a@b.c"},
	}}
	uc := newInteractor(store, api)

	out, err := uc.Login(context.Background(), dto.LoginInput{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.UserID != 7 || out.Email != "a@b.c" {
		t.Fatalf("unexpected output %+v", out)
	}
	if !store.saved {
		t.Fatal("session must be written through to the store")
	}
	if uc.Token() != "tok-1" || uc.UserID() != 7 {
		t.Fatal("token source must expose the live session")
	}
	if _, ok := uc.Current(context.Background()); !ok {
		t.Fatal("current session expected after login")
	}
}

func TestLoginValidationSkipsNetwork(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := newInteractor(&fakeStore{}, api)

	_, err := uc.Login(context.Background(), dto.LoginInput{Email: "  ", Password: "pw"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if api.loginCalls != 0 {
		t.Fatal("validation failure must not reach the backend")
	}
}

func TestLoginFailsClosed(t *testing.T) {
	t.Parallel()
	store := &fakeStore{session: domain.Session{
		Token: "stale",
		User:  domain.User{ID: 1, Email: "old@b.c"},
	}}
	api := &fakeAPI{loginErr: errors.New("bad credentials")}
	uc := newInteractor(store, api)
	if _, ok := uc.Restore(context.Background()); !ok {
		t.Fatal("restore of seeded session should succeed")
	}

	if _, err := uc.Login(context.Background(), dto.LoginInput{Email: "a@b.c", Password: "wrong"}); err == nil {
		t.Fatal("expected login error")
	}
	if uc.Token() != "" {
		t.Fatal("rejected login must clear the in-memory session")
	}
	if store.session.Valid() {
		t.Fatal("rejected login must clear the stored session")
	}
}

func TestLoginClearsMemoryWhenSaveFails(t *testing.T) {
	t.Parallel()
	store := &fakeStore{saveErr: errors.New("disk full")}
	api := &fakeAPI{session: domain.Session{
		Token: "tok",
		User:  domain.User{ID: 2, Email: "a@b.c"},
	}}
	uc := newInteractor(store, api)

	if _, err := uc.Login(context.Background(), dto.LoginInput{Email: "a@b.c", Password: "pw"}); err == nil {
		t.Fatal("expected save error to surface")
	}
	if uc.Token() != "" {
		t.Fatal("memory and store must not diverge after a failed save")
	}
	if store.clearCalls == 0 {
		t.Fatal("a partially written pair must be scrubbed from the store")
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := &fakeStore{session: domain.Session{
		Token: signedToken(t, time.Now().Add(time.Hour)),
		User:  domain.User{ID: 9, Email: "x@y.z"},
	}}
	uc := newInteractor(store, &fakeAPI{})

	session, ok := uc.Restore(context.Background())
	if !ok {
		t.Fatal("expected restore to succeed")
	}
	if session.UserID != 9 || session.Email != "x@y.z" {
		t.Fatalf("unexpected session %+v", session)
	}
}

func TestRestoreDiscardsExpiredToken(t *testing.T) {
	t.Parallel()
	store := &fakeStore{session: domain.Session{
		Token: signedToken(t, time.Now().Add(-time.Hour)),
		User:  domain.User{ID: 9, Email: "x@y.z"},
	}}
	uc := newInteractor(store, &fakeAPI{})

	if _, ok := uc.Restore(context.Background()); ok {
		t.Fatal("expired token must not restore")
	}
	if store.session.Valid() {
		t.Fatal("expired session must be scrubbed from the store")
	}
	if _, ok := uc.Current(context.Background()); ok {
		t.Fatal("no in-memory session expected")
	}
}

func TestRestoreAcceptsOpaqueToken(t *testing.T) {
	t.Parallel()
	store := &fakeStore{session: domain.Session{
		Token: "not-a-jwt",
		User:  domain.User{ID: 3, Email: "o@p.q"},
	}}
	uc := newInteractor(store, &fakeAPI{})

	if _, ok := uc.Restore(context.Background()); !ok {
		t.Fatal("opaque tokens carry no expiry and must restore")
	}
}

func TestLogoutClearsBothCopies(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	api := &fakeAPI{session: domain.Session{
		Token: "tok",
		User:  domain.User{ID: 4, Email: "a@b.c"},
	}}
	uc := newInteractor(store, api)
	if _, err := uc.Login(context.Background(), dto.LoginInput{Email: "a@b.c", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	uc.Logout(context.Background())
	if uc.Token() != "" || store.session.Valid() {
		t.Fatal("logout must clear memory and store")
	}
}

func TestInvalidateAfterBackendRejection(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	api := &fakeAPI{session: domain.Session{
		Token: "tok",
		User:  domain.User{ID: 5, Email: "a@b.c"},
	}}
	uc := newInteractor(store, api)
	if _, err := uc.Login(context.Background(), dto.LoginInput{Email: "a@b.c", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	uc.Invalidate(context.Background())
	if _, ok := uc.Current(context.Background()); ok {
		t.Fatal("invalidate must drop the session")
	}
	if store.session.Valid() {
		t.Fatal("invalidate must clear the store")
	}
}

func TestSignupDoesNotAuthenticate(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	uc := newInteractor(store, &fakeAPI{})

	out, err := uc.Signup(context.Background(), dto.SignupInput{
		FirstName: "Ada", LastName: "L", Email: "ada@b.c",
		Password: "pw", ConfirmPassword: "pw",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if out.Message == "" {
		t.Fatal("expected confirmation message")
	}
	if _, ok := uc.Current(context.Background()); ok {
		t.Fatal("signup must not create a session")
	}
}

func TestSignupRejectsMismatchedPasswords(t *testing.T) {
	t.Parallel()
	uc := newInteractor(&fakeStore{}, &fakeAPI{})
	_, err := uc.Signup(context.Background(), dto.SignupInput{
		FirstName: "Ada", LastName: "L", Email: "ada@b.c",
		Password: "pw", ConfirmPassword: "other",
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
