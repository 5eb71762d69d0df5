package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/gravitrone/conduit/cli/internal/api"
	"github.com/gravitrone/conduit/cli/internal/config"
	"github.com/gravitrone/conduit/cli/internal/editor"
)

// Options are the flags shared by every command. Non-empty values override
// the config file and environment.
type Options struct {
	APIURL       string
	Token        string
	SubmitPolicy string
	Debug        bool
	LogFile      string
}

// Bind registers the options on fs.
func (o *Options) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.APIURL, "api-url", "", "Conduit API base URL (overrides config and CONDUIT_API_URL)")
	fs.StringVar(&o.Token, "token", "", "JWT sent as 'Authorization: Token <jwt>'")
	fs.StringVar(&o.SubmitPolicy, "submit-policy", "", "what publishing does with an invalid draft: always or block")
	fs.BoolVar(&o.Debug, "debug", false, "write diagnostics to a log file")
	fs.StringVar(&o.LogFile, "log-file", "", "debug log path (default $XDG_CONFIG_HOME/conduit/debug.log)")
}

// Config loads the config file and applies the flag overrides.
func (o *Options) Config() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(o.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(o.Token); v != "" {
		cfg.Token = v
	}
	if v := strings.TrimSpace(o.SubmitPolicy); v != "" {
		cfg.SubmitPolicy = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Session is what an editor run needs, resolved from config and flags.
type Session struct {
	Config *config.Config
	Client *api.Client
	Store  *editor.Store
	Policy editor.Policy
}

// Resolve builds the session for one run.
func (o *Options) Resolve() (*Session, error) {
	cfg, err := o.Config()
	if err != nil {
		return nil, err
	}
	policy, err := editor.ParsePolicy(cfg.SubmitPolicy)
	if err != nil {
		return nil, err
	}
	return &Session{
		Config: cfg,
		Client: api.NewClient(cfg.APIURL, cfg.Token, cfg.TimeoutDuration()),
		Store:  editor.NewStore(),
		Policy: policy,
	}, nil
}

func (o *Options) logPath() string {
	if o.LogFile != "" {
		return o.LogFile
	}
	return filepath.Join(filepath.Dir(config.Path()), "debug.log")
}

// setupLogging sends the standard logger to a file when debugging and
// silences it otherwise, since the TUI owns the terminal. The returned func
// closes the log file.
func (o *Options) setupLogging() (func(), error) {
	if !o.Debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	path := o.logPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "conduit")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

// logDispatches writes every action the store sees to the debug log.
func logDispatches(store *editor.Store) func() {
	return store.Subscribe(func(a editor.Action, d editor.Draft) {
		log.Printf("dispatch %T slug=%q in_progress=%t tags=%d errors=%v",
			a, d.Slug, d.InProgress, len(d.TagList), d.Errors.Keys())
	})
}
