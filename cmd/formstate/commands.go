package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/sanitize"
)

func newFillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Prompt for every field until it validates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.newStore()
			if err != nil {
				return err
			}
			unsubscribe := store.Subscribe(func(c formstate.Change) {
				if c.Kind == formstate.ChangeResult && c.Result != nil {
					a.log.Debug("field evaluated",
						zap.String("field", string(c.Field)),
						zap.Bool("valid", c.Result.Valid),
					)
				}
			})
			defer unsubscribe()

			runner, err := a.newRunner(store)
			if err != nil {
				return err
			}
			payload, err := runner.Render(cmd.Context(), store)
			if err != nil {
				return err
			}
			if err := a.write(cmd, payload); err != nil {
				return err
			}
			return a.logOutcome(store)
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate values given with --set and --prefill without prompting",
		Example: `  formstate check --set firstName=Ada --set lastName=Lovelace
  formstate check --prefill person.yaml --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.newStore()
			if err != nil {
				return err
			}
			for _, raw := range sets {
				name, value, err := parseAssignment(raw)
				if err != nil {
					return err
				}
				if err := store.SetValue(name, value); err != nil {
					return err
				}
			}

			runner, err := a.newRunner(store)
			if err != nil {
				return err
			}
			for _, name := range store.Names() {
				res, err := store.Validate(name, runner.Chain(name))
				if err != nil {
					return err
				}
				a.log.Debug("field evaluated", zap.String("field", string(name)), zap.Bool("valid", res.Valid))
			}

			payload, err := runner.Serialize(store)
			if err != nil {
				return err
			}
			if err := a.write(cmd, payload); err != nil {
				return err
			}
			return a.logOutcome(store)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as name=value (repeatable)")
	return cmd
}

func newValidatorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validators",
		Short: "List the validator chains usable in the chains config section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), validatorNames())
			return err
		},
	}
}

func parseAssignment(raw string) (formstate.FieldName, string, error) {
	name, value, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("invalid --set %q: expected name=value", raw)
	}
	return formstate.FieldName(name), sanitize.Text(value), nil
}
