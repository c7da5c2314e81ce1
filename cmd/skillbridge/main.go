package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"skillbridge/internal/bootstrap"
	profiledto "skillbridge/internal/modules/profile/dto"
	"skillbridge/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string
	var debug bool

	root := &cobra.Command{
		Use:           "skillbridge",
		Short:         "Personalized learning path navigator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default ~/.skillbridge)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")

	root.AddCommand(newTUICmd(&dataDir, &debug))
	root.AddCommand(newLoginCmd(&dataDir, &debug))
	root.AddCommand(newLogoutCmd(&dataDir, &debug))
	root.AddCommand(newWhoamiCmd(&dataDir, &debug))
	root.AddCommand(newSignupCmd(&dataDir, &debug))
	root.AddCommand(newOTPCmd(&dataDir, &debug))
	root.AddCommand(newPathCmd(&dataDir, &debug))
	root.AddCommand(newKnowledgeCmd(&dataDir, &debug))
	root.AddCommand(newResourcesCmd(&dataDir, &debug))
	root.AddCommand(newProfileCmd(&dataDir, &debug))
	root.AddCommand(newPrefsCmd(&dataDir, &debug))
	return root
}

func loadApp(dataDir string, debug bool) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, debug)
}

func newTUICmd(dataDir *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

// readPassword prompts without echo when stdin is a terminal.
func readPassword(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		_, _ = fmt.Fprintln(os.Stderr)
		return string(raw), err
	}
	var password string
	_, err := fmt.Scanln(&password)
	return password, err
}

func newLoginCmd(dataDir *string, debug *bool) *cobra.Command {
	var email, password string
	login := &cobra.Command{
		Use:   "login --email <email>",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("--email is required")
			}
			if password == "" {
				var err error
				password, err = readPassword("password: ")
				if err != nil {
					return err
				}
			}
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AuthCLI.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (user %d, %s)\n", out.Message, out.UserID, out.Email)
			return nil
		},
	}
	login.Flags().StringVar(&email, "email", "", "account email")
	login.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return login
}

func newLogoutCmd(dataDir *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			app.AuthCLI.Logout(context.Background())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(dataDir *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the restored session, if any",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			session, ok := app.AuthCLI.Restore(context.Background())
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user %d <%s>\n", session.UserID, session.Email)
			return nil
		},
	}
}

func newSignupCmd(dataDir *string, debug *bool) *cobra.Command {
	var first, last, email, password string
	signup := &cobra.Command{
		Use:   "signup --first-name <name> --email <email>",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				password, err = readPassword("password: ")
				if err != nil {
					return err
				}
			}
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AuthCLI.Signup(context.Background(), first, last, email, password, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
	signup.Flags().StringVar(&first, "first-name", "", "first name")
	signup.Flags().StringVar(&last, "last-name", "", "last name")
	signup.Flags().StringVar(&email, "email", "", "account email")
	signup.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return signup
}

func newOTPCmd(dataDir *string, debug *bool) *cobra.Command {
	otp := &cobra.Command{Use: "otp", Short: "Email verification codes"}

	var email string
	request := &cobra.Command{
		Use:   "request --email <email>",
		Short: "Email a one-time verification code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("--email is required")
			}
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AuthCLI.RequestOTP(context.Background(), email)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
	request.Flags().StringVar(&email, "email", "", "account email")

	var verifyEmail, code string
	verify := &cobra.Command{
		Use:   "verify --email <email> --code <code>",
		Short: "Verify a one-time code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(verifyEmail) == "" || strings.TrimSpace(code) == "" {
				return fmt.Errorf("--email and --code are required")
			}
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AuthCLI.VerifyOTP(context.Background(), verifyEmail, code)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
	verify.Flags().StringVar(&verifyEmail, "email", "", "account email")
	verify.Flags().StringVar(&code, "code", "", "verification code")

	otp.AddCommand(request, verify)
	return otp
}

func newPathCmd(dataDir *string, debug *bool) *cobra.Command {
	path := &cobra.Command{Use: "path", Short: "Learning path generation"}

	var target string
	generate := &cobra.Command{
		Use:   "generate --target <concept>",
		Short: "Generate a learning path toward a target concept",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(target) == "" {
				return fmt.Errorf("--target is required")
			}
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.PathCLI.Generate(context.Background(), target)
			if err != nil {
				return err
			}
			if out.Message != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			}
			for i, step := range out.Steps {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, step.Concept)
				for _, r := range step.Resources {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "   - %s (%s) %s\n", r.Title, r.ResourceType, r.URL)
				}
			}
			return nil
		},
	}
	generate.Flags().StringVar(&target, "target", "", "target concept")

	path.AddCommand(generate)
	return path
}

func newKnowledgeCmd(dataDir *string, debug *bool) *cobra.Command {
	knowledge := &cobra.Command{Use: "knowledge", Short: "Self-assessed knowledge levels"}

	var concept string
	var level int
	update := &cobra.Command{
		Use:   "update --concept <name> --level <1..5>",
		Short: "Record a knowledge level for a concept",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.KnowledgeCLI.Update(context.Background(), concept, level)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
	update.Flags().StringVar(&concept, "concept", "", "concept name")
	update.Flags().IntVar(&level, "level", 0, "level from 1 to 5")

	knowledge.AddCommand(update)
	return knowledge
}

func newResourcesCmd(dataDir *string, debug *bool) *cobra.Command {
	resources := &cobra.Command{Use: "resources", Short: "Resource catalog"}

	resources.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List catalog resources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			list, err := app.LibraryCLI.ListResources(context.Background())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no resources")
				return nil
			}
			for _, r := range list {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", r.ID, r.Title, r.ResourceType, r.URL)
			}
			return nil
		},
	})

	var url string
	add := &cobra.Command{
		Use:   "add --url <url>",
		Short: "Contribute a resource by URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(url) == "" {
				return fmt.Errorf("--url is required")
			}
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.LibraryCLI.Contribute(context.Background(), url)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
	add.Flags().StringVar(&url, "url", "", "resource url")
	resources.AddCommand(add)
	return resources
}

func newProfileCmd(dataDir *string, debug *bool) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Account profile"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			p, err := app.ProfileCLI.Fetch(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(),
				"name: %s %s\nemail: %s\ntime: %s\ndifficulty: %s\ncontent types: %s\n",
				p.FirstName, p.LastName, p.Email, p.TimeAvailability,
				p.DifficultyPreference, strings.Join(p.PreferredContentTypes, ", "))
			return nil
		},
	})

	var first, last, timeAvail, difficulty string
	var contentTypes []string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields (only the given flags change)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ProfileCLI.Update(context.Background(), profiledto.UpdateInput{
				FirstName:             first,
				LastName:              last,
				TimeAvailability:      timeAvail,
				DifficultyPreference:  difficulty,
				PreferredContentTypes: contentTypes,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
	update.Flags().StringVar(&first, "first-name", "", "first name")
	update.Flags().StringVar(&last, "last-name", "", "last name")
	update.Flags().StringVar(&timeAvail, "time", "", "time availability")
	update.Flags().StringVar(&difficulty, "difficulty", "", "difficulty preference")
	update.Flags().StringSliceVar(&contentTypes, "content-types", nil, "preferred content types")
	profile.AddCommand(update)

	var oldPassword, newPassword string
	change := &cobra.Command{
		Use:   "change-password",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if oldPassword == "" {
				if oldPassword, err = readPassword("current password: "); err != nil {
					return err
				}
			}
			if newPassword == "" {
				if newPassword, err = readPassword("new password: "); err != nil {
					return err
				}
			}
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ProfileCLI.ChangePassword(context.Background(), oldPassword, newPassword)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
	change.Flags().StringVar(&oldPassword, "old", "", "current password (prompted when omitted)")
	change.Flags().StringVar(&newPassword, "new", "", "new password (prompted when omitted)")
	profile.AddCommand(change)
	return profile
}

func newPrefsCmd(dataDir *string, debug *bool) *cobra.Command {
	prefs := &cobra.Command{Use: "prefs", Short: "Local preferences"}

	prefs.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show stored preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dark mode: %t\n", app.PrefsCLI.DarkMode(context.Background()))
			return nil
		},
	})

	prefs.AddCommand(&cobra.Command{
		Use:   "toggle-dark",
		Short: "Toggle dark mode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, *debug)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			dark, err := app.PrefsCLI.ToggleDarkMode(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dark mode: %t\n", dark)
			return nil
		},
	})
	return prefs
}
