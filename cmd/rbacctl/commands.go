package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rbackit/pkg/logger"
	"github.com/dmitrymomot/rbackit/pkg/rbacstore"
	"github.com/dmitrymomot/rbackit/pkg/rbacstore/instrument"
	"github.com/dmitrymomot/rbackit/pkg/seed"
	"github.com/dmitrymomot/rbackit/pkg/validator"
)

type manifestKey struct{}

type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    Config
	log    *slog.Logger
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "rbacctl",
		Short:         "Validate and load RBAC seed manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, a.stderr)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = log.With(slog.String("command", cmd.Name()))
			return nil
		},
	}

	root.AddCommand(a.validateCommand(), a.seedCommand())
	return root
}

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Parse and validate a manifest without applying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := seed.LoadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "ok: %d roles, %d permissions, %d grants\n",
				len(m.Roles), len(m.Permissions), len(m.Grants))
			return nil
		},
	}
}

func (a *app) seedCommand() *cobra.Command {
	var (
		output      string
		withMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "seed <manifest>",
		Short: "Apply a manifest to a fresh in-memory store and print what was created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Apply(validator.InList("output", output, []string{"yaml", "json"})); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout)
			defer cancel()
			ctx = context.WithValue(ctx, manifestKey{}, args[0])

			m, err := seed.LoadFile(args[0])
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics, err := instrument.NewMetrics(reg, a.cfg.MetricsNamespace)
			if err != nil {
				return err
			}

			store := rbacstore.New()
			provider := instrument.Logged(instrument.Metered(store, metrics), a.log)

			res, err := seed.Apply(ctx, provider, m)
			if err != nil {
				a.log.ErrorContext(ctx, "seed failed", logger.Error(err))
				return err
			}

			stats := store.Stats()
			a.log.InfoContext(ctx, "seed applied",
				slog.Int("roles", stats.Roles),
				slog.Int("permissions", stats.Permissions),
				slog.Int("associations", stats.Associations),
			)

			if err := writeResult(a.stdout, output, res); err != nil {
				return err
			}
			if withMetrics {
				return writeMetrics(a.stdout, reg)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml|json")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "print collected Prometheus metrics after the result")
	return cmd
}

func writeResult(w io.Writer, format string, res *seed.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	var errs []error
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
