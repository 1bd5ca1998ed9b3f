package tui

import (
	"errors"
	"net/url"
	"strings"

	"github.com/theirongolddev/pfin/internal/config"
	"github.com/theirongolddev/pfin/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the setup form.
type SetupValues struct {
	Currency string
	APIBase  string
	UseMock  bool
	Theme    string
}

// SetupValuesFrom seeds the form with the current configuration.
func SetupValuesFrom(cfg config.Config) *SetupValues {
	return &SetupValues{
		Currency: cfg.General.Currency,
		APIBase:  cfg.Upload.APIBase,
		UseMock:  cfg.Upload.UseMock,
		Theme:    cfg.Appearance.Theme,
	}
}

// Apply copies the answers into cfg.
func (v *SetupValues) Apply(cfg *config.Config) {
	if c := strings.TrimSpace(v.Currency); c != "" {
		cfg.General.Currency = c
	}
	cfg.Upload.APIBase = strings.TrimRight(strings.TrimSpace(v.APIBase), "/")
	cfg.Upload.UseMock = v.UseMock
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
}

// NewSetupForm builds the first-run form. Answers are written into v.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to pfin").
				Description("Track your recurring costs and parse bank statements.\nA few quick settings first."),
			huh.NewInput().
				Title("Currency symbol").
				Description("Shown before every amount.").
				Placeholder("₹").
				Value(&v.Currency).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("currency symbol is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Statement backend URL").
				Description("Leave empty to use built-in sample transactions.").
				Placeholder("http://127.0.0.1:8787").
				Value(&v.APIBase).
				Validate(validateBaseURL),
			huh.NewConfirm().
				Title("Always use sample data?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.UseMock),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		),
	).WithTheme(theme.Active.Form())
}

func validateBaseURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("enter an http:// or https:// URL")
	}
	return nil
}
