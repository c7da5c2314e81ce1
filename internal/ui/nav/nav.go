// Package nav defines the closed set of views and the messages views
// bubble up to the app shell for routing and session lifecycle events.
package nav

import tea "github.com/charmbracelet/bubbletea"

// View identifies one screen of the single-page shell. Exactly one is
// active at a time.
type View int

const (
	Login View = iota
	Signup
	Dashboard
	AllResources
	Contribute
	ProfileSettings
	AppSettings
)

func (v View) String() string {
	switch v {
	case Login:
		return "Login"
	case Signup:
		return "Sign Up"
	case Dashboard:
		return "Dashboard"
	case AllResources:
		return "All Resources"
	case Contribute:
		return "Contribute"
	case ProfileSettings:
		return "Profile Settings"
	case AppSettings:
		return "App Settings"
	}
	return "Unknown"
}

// Protected reports whether the view requires a session.
func (v View) Protected() bool {
	return v != Login && v != Signup
}

// GoMsg asks the shell to activate a view. The shell gates protected
// views and may substitute Login.
type GoMsg struct {
	View View
}

// LoggedInMsg bubbles up from the login view after the session manager
// accepted the credentials.
type LoggedInMsg struct {
	Email string
}

// SessionExpiredMsg is emitted when a protected call settled with an
// authorization failure; the shell invalidates the session and returns
// to Login.
type SessionExpiredMsg struct{}

// Go builds the command form of GoMsg for use inside view Update loops.
func Go(view View) tea.Cmd {
	return func() tea.Msg { return GoMsg{View: view} }
}

// SessionExpired is the command form of SessionExpiredMsg.
func SessionExpired() tea.Msg {
	return SessionExpiredMsg{}
}
