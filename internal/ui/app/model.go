// Package app hosts the root Bubble Tea model: one active view, the
// navigation drawer and profile menu overlays, and the session-aware
// routing between them.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skillbridge/internal/ui/components"
	"skillbridge/internal/ui/nav"
	"skillbridge/internal/ui/theme"
	"skillbridge/internal/ui/views/contribute"
	"skillbridge/internal/ui/views/dashboard"
	"skillbridge/internal/ui/views/login"
	"skillbridge/internal/ui/views/profile"
	"skillbridge/internal/ui/views/resources"
	"skillbridge/internal/ui/views/settings"
	"skillbridge/internal/ui/views/signup"
)

// AuthPort is the slice of the auth module the shell itself needs on
// top of what the login and signup views already consume.
type AuthPort interface {
	login.AuthPort
	signup.AuthPort
	Logout(ctx context.Context)
	Invalidate(ctx context.Context)
}

// Ports carries every usecase the shell and its views depend on.
type Ports struct {
	Auth      AuthPort
	Knowledge dashboard.KnowledgePort
	Path      dashboard.PathPort
	Library   interface {
		resources.LibraryPort
		contribute.LibraryPort
	}
	Profile profile.ProfilePort
	Prefs   settings.PrefsPort
}

const (
	menuProfile  = "Profile Settings"
	menuSettings = "App Settings"
	menuLogout   = "Log Out"
)

type Model struct {
	ports Ports

	active        nav.View
	authenticated bool
	email         string
	status        string

	loginView      login.Model
	signupView     signup.Model
	dashboardView  dashboard.Model
	resourcesView  resources.Model
	contributeView contribute.Model
	profileView    profile.Model
	settingsView   settings.Model

	drawer components.Drawer
	menu   components.Menu

	width  int
	height int
}

// New builds the shell. Session restoration happens before the program
// starts: a restored session lands on the dashboard, otherwise Login.
func New(ports Ports, authenticated bool, email string) Model {
	m := Model{
		ports:         ports,
		authenticated: authenticated,
		email:         email,
		drawer: components.NewDrawer([]nav.View{
			nav.Dashboard, nav.AllResources, nav.Contribute,
		}),
		menu: components.NewMenu([]string{menuProfile, menuSettings, menuLogout}),
	}
	m.buildViews()
	if authenticated {
		m.active = nav.Dashboard
		m.status = "Welcome back, " + email
	} else {
		m.active = nav.Login
	}
	return m
}

func (m *Model) buildViews() {
	m.loginView = login.New(m.ports.Auth)
	m.signupView = signup.New(m.ports.Auth)
	m.dashboardView = dashboard.New(m.ports.Knowledge, m.ports.Path)
	m.resourcesView = resources.New(m.ports.Library)
	m.contributeView = contribute.New(m.ports.Library)
	m.profileView = profile.New(m.ports.Profile)
	m.settingsView = settings.New(m.ports.Prefs)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Body views see the region below the header and above the
		// status bar.
		body := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 2}
		cmd := m.broadcast(body)
		return m, cmd

	case nav.GoMsg:
		cmd := m.navigate(msg.View)
		return m, cmd

	case nav.LoggedInMsg:
		m.authenticated = true
		m.email = msg.Email
		m.status = "Welcome, " + msg.Email
		cmd := m.navigate(nav.Dashboard)
		return m, cmd

	case signup.DoneMsg:
		m.status = msg.Message
		m.loginView.SetNotice(msg.Message)
		cmd := m.navigate(nav.Login)
		return m, cmd

	case nav.SessionExpiredMsg:
		m.ports.Auth.Invalidate(context.Background())
		m.authenticated = false
		m.email = ""
		m.status = "Session expired."
		m.loginView.SetNotice("Your session has expired. Please log in again.")
		cmd := m.navigate(nav.Login)
		return m, cmd

	case settings.ToggledMsg:
		theme.Apply(msg.Dark)
		if msg.Dark {
			m.status = "Dark mode on."
		} else {
			m.status = "Dark mode off."
		}
		return m, nil

	case components.MenuSelectMsg:
		switch msg.Item {
		case menuProfile:
			cmd := m.navigate(nav.ProfileSettings)
			return m, cmd
		case menuSettings:
			cmd := m.navigate(nav.AppSettings)
			return m, cmd
		case menuLogout:
			cmd := m.logout()
			return m, cmd
		}
		return m, nil

	case components.MenuDismissMsg, components.DrawerDismissMsg:
		return m, nil
	}

	// Overlays own the keyboard and mouse while visible. Only input
	// events are captured: settle messages, ticks, and blinks keep
	// flowing to the views so nothing stays pending under an open menu.
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		if m.menu.Visible() {
			var cmd tea.Cmd
			m.menu, cmd = m.menu.Update(msg)
			return m, cmd
		}
		if m.drawer.Visible() {
			var cmd tea.Cmd
			m.drawer, cmd = m.drawer.Update(msg)
			return m, cmd
		}
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}

	// Everything else (async settle messages, ticks, cursor blinks) is
	// fanned out so a view the user navigated away from still settles.
	cmd := m.broadcast(msg)
	return m, cmd
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := m.active == nav.AllResources && m.resourcesView.Filtering()

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+b":
		if m.authenticated && !filtering {
			m.drawer.Open()
			return m, nil
		}
	case "ctrl+p":
		if m.authenticated && !filtering {
			m.menu.Open()
			menuView := m.menu.View()
			w := lipgloss.Width(menuView)
			h := lipgloss.Height(menuView)
			x := m.width - w - 2
			if x < 0 {
				x = 0
			}
			m.menu.SetBounds(x, 1, w, h)
			return m, nil
		}
	}

	cmd := m.dispatch(key)
	return m, cmd
}

// dispatch routes a message to the active view only.
func (m *Model) dispatch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.active {
	case nav.Login:
		m.loginView, cmd = m.loginView.Update(msg)
	case nav.Signup:
		m.signupView, cmd = m.signupView.Update(msg)
	case nav.Dashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case nav.AllResources:
		m.resourcesView, cmd = m.resourcesView.Update(msg)
	case nav.Contribute:
		m.contributeView, cmd = m.contributeView.Update(msg)
	case nav.ProfileSettings:
		m.profileView, cmd = m.profileView.Update(msg)
	case nav.AppSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return cmd
}

// broadcast routes a message to every view.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, 7)
	var cmd tea.Cmd
	m.loginView, cmd = m.loginView.Update(msg)
	cmds = append(cmds, cmd)
	m.signupView, cmd = m.signupView.Update(msg)
	cmds = append(cmds, cmd)
	m.dashboardView, cmd = m.dashboardView.Update(msg)
	cmds = append(cmds, cmd)
	m.resourcesView, cmd = m.resourcesView.Update(msg)
	cmds = append(cmds, cmd)
	m.contributeView, cmd = m.contributeView.Update(msg)
	cmds = append(cmds, cmd)
	m.profileView, cmd = m.profileView.Update(msg)
	cmds = append(cmds, cmd)
	m.settingsView, cmd = m.settingsView.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// navigate activates a view, substituting Login when a protected view
// is requested without a session, and fires the view's entry hook.
func (m *Model) navigate(view nav.View) tea.Cmd {
	if view.Protected() && !m.authenticated {
		view = nav.Login
		m.status = "Please log in first."
	}
	m.active = view
	switch view {
	case nav.AllResources:
		return m.resourcesView.Refresh()
	case nav.ProfileSettings:
		return m.profileView.Refresh()
	}
	return nil
}

// logout tears the session down and rebuilds every view so no stale
// per-view state survives into the next login.
func (m *Model) logout() tea.Cmd {
	m.ports.Auth.Logout(context.Background())
	m.authenticated = false
	m.email = ""
	m.buildViews()
	m.status = "Logged out."
	m.loginView.SetNotice("You have been logged out.")
	cmd := m.navigate(nav.Login)
	return tea.Batch(cmd, textinput.Blink)
}

func (m Model) View() string {
	header := m.headerView()
	status := theme.Muted.Render(" " + m.status)

	var body string
	switch {
	case m.drawer.Visible():
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, m.drawer.View())
	case m.menu.Visible():
		overlay := lipgloss.NewStyle().PaddingLeft(max(0, m.width-lipgloss.Width(m.menu.View())-2)).Render(m.menu.View())
		body = overlay + "\n" + m.activeView()
	default:
		body = m.activeView()
	}

	return header + "\n" + body + "\n" + status
}

func (m Model) bodyHeight() int {
	h := m.height - 2
	if h < 0 {
		return 0
	}
	return h
}

func (m Model) activeView() string {
	switch m.active {
	case nav.Login:
		return m.loginView.View()
	case nav.Signup:
		return m.signupView.View()
	case nav.Dashboard:
		return m.dashboardView.View()
	case nav.AllResources:
		return m.resourcesView.View()
	case nav.Contribute:
		return m.contributeView.View()
	case nav.ProfileSettings:
		return m.profileView.View()
	case nav.AppSettings:
		return m.settingsView.View()
	}
	return ""
}

func (m Model) headerView() string {
	left := theme.Title.Render(" SkillBridge ") + theme.Muted.Render("• "+m.active.String())
	right := ""
	if m.authenticated {
		right = theme.Accent.Render(m.email+" ") + theme.Muted.Render("ctrl+p: menu  ctrl+b: nav ")
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
