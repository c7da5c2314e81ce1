package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	authdto "skillbridge/internal/modules/auth/dto"
	knowledgedto "skillbridge/internal/modules/knowledge/dto"
	librarydto "skillbridge/internal/modules/library/dto"
	pathdto "skillbridge/internal/modules/path/dto"
	profiledto "skillbridge/internal/modules/profile/dto"
	"skillbridge/internal/ui/components"
	"skillbridge/internal/ui/nav"
)

type fakeAuth struct {
	loggedOut   bool
	invalidated bool
}

func (f *fakeAuth) Login(context.Context, authdto.LoginInput) (authdto.LoginOutput, error) {
	return authdto.LoginOutput{UserID: 1, Email: "a@b.c", Message: "Login successful!"}, nil
}
func (f *fakeAuth) Signup(context.Context, authdto.SignupInput) (authdto.SignupOutput, error) {
	return authdto.SignupOutput{Message: "User created"}, nil
}
func (f *fakeAuth) RequestOTP(context.Context, string) (authdto.MessageOutput, error) {
	return authdto.MessageOutput{}, nil
}
func (f *fakeAuth) VerifyOTP(context.Context, string, string) (authdto.MessageOutput, error) {
	return authdto.MessageOutput{}, nil
}
func (f *fakeAuth) Logout(context.Context)     { f.loggedOut = true }
func (f *fakeAuth) Invalidate(context.Context) { f.invalidated = true }

type fakeLibrary struct{ listCalls int }

func (f *fakeLibrary) ListResources(context.Context) ([]librarydto.ResourceOutput, error) {
	f.listCalls++
	return nil, nil
}
func (f *fakeLibrary) Contribute(context.Context, librarydto.ContributeInput) (librarydto.ContributeOutput, error) {
	return librarydto.ContributeOutput{}, nil
}

type fakeKnowledge struct{}

func (fakeKnowledge) Update(context.Context, knowledgedto.UpdateInput) (knowledgedto.UpdateOutput, error) {
	return knowledgedto.UpdateOutput{}, nil
}

type fakePath struct{}

func (fakePath) Generate(context.Context, pathdto.GenerateInput) (pathdto.GenerateOutput, error) {
	return pathdto.GenerateOutput{}, nil
}

type fakeProfile struct{ fetchCalls int }

func (f *fakeProfile) Fetch(context.Context) (profiledto.ProfileOutput, error) {
	f.fetchCalls++
	return profiledto.ProfileOutput{}, nil
}
func (f *fakeProfile) Update(context.Context, profiledto.UpdateInput) (profiledto.UpdateOutput, error) {
	return profiledto.UpdateOutput{}, nil
}
func (f *fakeProfile) ChangePassword(context.Context, profiledto.ChangePasswordInput) (profiledto.ChangePasswordOutput, error) {
	return profiledto.ChangePasswordOutput{}, nil
}

type fakePrefs struct{ dark bool }

func (f *fakePrefs) DarkMode(context.Context) bool { return f.dark }
func (f *fakePrefs) ToggleDarkMode(context.Context) (bool, error) {
	f.dark = !f.dark
	return f.dark, nil
}

func testPorts() (Ports, *fakeAuth, *fakeProfile) {
	auth := &fakeAuth{}
	profile := &fakeProfile{}
	return Ports{
		Auth:      auth,
		Knowledge: fakeKnowledge{},
		Path:      fakePath{},
		Library:   &fakeLibrary{},
		Profile:   profile,
		Prefs:     &fakePrefs{},
	}, auth, profile
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestStartsOnLoginWithoutSession(t *testing.T) {
	t.Parallel()
	ports, _, _ := testPorts()
	m := New(ports, false, "")
	if m.active != nav.Login {
		t.Fatalf("expected Login, got %s", m.active)
	}
}

func TestStartsOnDashboardWithRestoredSession(t *testing.T) {
	t.Parallel()
	ports, _, _ := testPorts()
	m := New(ports, true, "a@b.c")
	if m.active != nav.Dashboard {
		t.Fatalf("expected Dashboard, got %s", m.active)
	}
}

func TestProtectedViewFallsBackToLogin(t *testing.T) {
	t.Parallel()
	ports, _, _ := testPorts()
	m := New(ports, false, "")

	m, _ = update(t, m, nav.GoMsg{View: nav.Dashboard})
	if m.active != nav.Login {
		t.Fatalf("unauthenticated navigation must land on Login, got %s", m.active)
	}
}

func TestLoginRoutesToDashboard(t *testing.T) {
	t.Parallel()
	ports, _, _ := testPorts()
	m := New(ports, false, "")

	m, _ = update(t, m, nav.LoggedInMsg{Email: "a@b.c"})
	if m.active != nav.Dashboard {
		t.Fatalf("expected Dashboard after login, got %s", m.active)
	}
	if !m.authenticated || m.email != "a@b.c" {
		t.Fatal("shell must record the authenticated identity")
	}
}

func TestSessionExpiryForcesLogout(t *testing.T) {
	t.Parallel()
	ports, auth, _ := testPorts()
	m := New(ports, true, "a@b.c")

	m, _ = update(t, m, nav.SessionExpiredMsg{})
	if !auth.invalidated {
		t.Fatal("expiry must invalidate the session")
	}
	if m.active != nav.Login || m.authenticated {
		t.Fatalf("expected unauthenticated Login, got %s", m.active)
	}
}

func TestMenuLogout(t *testing.T) {
	t.Parallel()
	ports, auth, _ := testPorts()
	m := New(ports, true, "a@b.c")

	m, _ = update(t, m, components.MenuSelectMsg{Item: menuLogout})
	if !auth.loggedOut {
		t.Fatal("menu logout must call the session manager")
	}
	if m.active != nav.Login || m.authenticated {
		t.Fatalf("expected Login after logout, got %s", m.active)
	}
}

func TestSettleReachesViewUnderOpenMenu(t *testing.T) {
	t.Parallel()
	ports, _, _ := testPorts()
	m := New(ports, true, "a@b.c")

	// Focus the target field and kick off a generation.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("algebra")})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected an in-flight generation")
	}
	if !strings.Contains(m.dashboardView.View(), "Generating path") {
		t.Fatal("generation must be pending before the settle")
	}
	settle := cmd()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if !m.menu.Visible() {
		t.Fatal("ctrl+p must open the profile menu")
	}

	// The overlay owns input only; the settle must still reach the view.
	m, _ = update(t, m, settle)
	if strings.Contains(m.dashboardView.View(), "Generating path") {
		t.Fatal("settle arriving under an open menu must resolve the operation")
	}
	if !m.menu.Visible() {
		t.Fatal("delivering a settle must not dismiss the menu")
	}
}

func TestEnteringViewsFiresRefresh(t *testing.T) {
	t.Parallel()
	ports, _, _ := testPorts()
	m := New(ports, true, "a@b.c")

	m, cmd := update(t, m, nav.GoMsg{View: nav.AllResources})
	if m.active != nav.AllResources {
		t.Fatalf("expected AllResources, got %s", m.active)
	}
	if cmd == nil {
		t.Fatal("entering the catalog must kick off a refresh")
	}

	_, cmd = update(t, m, nav.GoMsg{View: nav.ProfileSettings})
	if cmd == nil {
		t.Fatal("entering profile settings must kick off a refresh")
	}
}
