package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-formstate/internal/config"
	"github.com/goliatone/go-formstate/internal/logging"
	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/sanitize"
	"github.com/goliatone/go-formstate/pkg/tui"
	"github.com/goliatone/go-formstate/pkg/validation"
	"github.com/goliatone/go-formstate/pkg/validators"
)

// errIncomplete is returned when the form ends up not all valid. It maps to
// exit status 1 without an extra error line.
var errIncomplete = errors.New("form is not valid")

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *zap.Logger

	// driver overrides the survey prompt driver when set.
	driver tui.PromptDriver
	out    io.Writer
	errOut io.Writer
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		v:      viper.New(),
		log:    logging.Nop(),
		out:    out,
		errOut: errOut,
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formstate",
		Short: "Collect and validate the person form.",
		Long: `formstate binds the firstName/lastName form to terminal input or to
values passed on the command line, runs each field's validators and
reports whether the whole form is valid.

The exit status is 1 when any field is unevaluated or invalid.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg

			log, err := logging.New(cfg.LogLevel, cfg.LogFormat, a.errOut)
			if err != nil {
				return err
			}
			a.log = log
			a.log.Debug("config loaded",
				zap.String("output", cfg.Output),
				zap.String("config_file", a.v.ConfigFileUsed()),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	cmd.Version = version
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./formstate.yaml or $HOME/formstate.yaml)")
	flags.String("output", "pretty", `output format ("json", "form", "pretty", "yaml")`)
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", `log format ("console", "json")`)
	flags.String("prefill", "", "YAML or JSON file with initial field values")
	flags.Int("max-attempts", 0, "re-prompt limit per field when interactive (0 = unlimited)")

	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("prefill", flags.Lookup("prefill"))
	_ = a.v.BindPFlag("max_attempts", flags.Lookup("max-attempts"))

	cmd.AddCommand(newFillCmd(a))
	cmd.AddCommand(newCheckCmd(a))
	cmd.AddCommand(newValidatorsCmd(a))

	return cmd
}

// newStore builds the person form and applies the configured prefill.
func (a *app) newStore() (*formstate.Store, error) {
	store := formstate.NewPersonForm()
	if a.cfg.Prefill == "" {
		return store, nil
	}

	path := a.cfg.Prefill
	values, err := config.LoadPrefill(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if err := config.ApplyPrefill(store, values, sanitize.Text); err != nil {
		return nil, err
	}
	a.log.Debug("prefill applied", zap.String("path", path), zap.Int("fields", len(values)))
	return store, nil
}

func (a *app) newRunner(store *formstate.Store) (*tui.Runner, error) {
	chains, err := a.cfg.ChainsFor(store.Names())
	if err != nil {
		return nil, err
	}
	opts := []tui.Option{
		tui.WithOutputFormat(a.cfg.OutputFormat()),
		tui.WithChains(chains),
		tui.WithLabels(a.cfg.LabelsFor(store.Names())),
		tui.WithTheme(a.cfg.ThemeOf()),
		tui.WithMaxAttempts(a.cfg.MaxAttempts),
		tui.WithPromptDriver(a.driver),
	}
	return tui.New(opts...), nil
}

func (a *app) logOutcome(store *formstate.Store) error {
	report := validation.FromStore(store)
	for _, issue := range report.Issues {
		a.log.Info("field invalid", zap.String("field", issue.Field), zap.String("error", issue.Message))
	}
	if err := report.Err(); err != nil {
		a.log.Warn("form incomplete", zap.Int("issues", len(report.Issues)), zap.Error(err))
		return errIncomplete
	}
	a.log.Info("form valid")
	return nil
}

func (a *app) write(cmd *cobra.Command, payload []byte) error {
	out := string(payload)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func validatorNames() string {
	return strings.Join(validators.Registered(), ", ")
}
