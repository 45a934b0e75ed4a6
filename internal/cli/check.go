package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LoriKarikari/npmcheck/internal/config"
	"github.com/LoriKarikari/npmcheck/internal/core/check"
	"github.com/LoriKarikari/npmcheck/internal/core/registry"
	"github.com/LoriKarikari/npmcheck/internal/httpx"
	"github.com/LoriKarikari/npmcheck/internal/report"
)

type checkOptions struct {
	similar      bool
	format       report.Format
	ociRef       string
	plainHTTP    bool
	verbose      bool
	validateOnly bool
	suggestOnly  bool
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := readCheckOptions(cmd)
	if err != nil {
		return err
	}

	switch {
	case opts.validateOnly:
		return validateNames(cmd, args, opts.format)
	case opts.suggestOnly:
		return printSuggestions(cmd, normalizeNames(args), opts.format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	initLogger(cfg.LogLevel, opts.verbose)

	printer := report.NewPrinter(cmd.OutOrStdout(), opts.format, opts.similar)
	runner := check.NewRunner(newChecker(cfg, opts),
		check.WithSimilar(opts.similar),
		check.WithConcurrency(cfg.Concurrency),
		check.WithReportFunc(printer.Report),
	)

	runner.Run(cmd.Context(), normalizeNames(args))

	if err := printer.Close(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func readCheckOptions(cmd *cobra.Command) (checkOptions, error) {
	var opts checkOptions
	var err error

	if opts.similar, err = cmd.Flags().GetBool("similar"); err != nil {
		return opts, fmt.Errorf("failed to get similar flag: %w", err)
	}
	if opts.ociRef, err = cmd.Flags().GetString("oci"); err != nil {
		return opts, fmt.Errorf("failed to get oci flag: %w", err)
	}
	if opts.plainHTTP, err = cmd.Flags().GetBool("plain-http"); err != nil {
		return opts, fmt.Errorf("failed to get plain-http flag: %w", err)
	}
	if opts.verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return opts, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if opts.validateOnly, err = cmd.Flags().GetBool("validate-only"); err != nil {
		return opts, fmt.Errorf("failed to get validate-only flag: %w", err)
	}
	if opts.suggestOnly, err = cmd.Flags().GetBool("suggest-only"); err != nil {
		return opts, fmt.Errorf("failed to get suggest-only flag: %w", err)
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return opts, fmt.Errorf("failed to get output flag: %w", err)
	}
	if opts.format, err = report.ParseFormat(output); err != nil {
		return opts, err
	}
	return opts, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	stateDir, err := config.GetStateDir()
	if err != nil {
		log.WithError(err).Debug("no state directory, using defaults")
	}

	v, err := config.New(stateDir, version)
	if err != nil {
		return nil, err
	}

	for _, name := range []string{"registry", "timeout", "concurrency"} {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(name, flag); err != nil {
				return nil, fmt.Errorf("failed to bind %s flag: %w", name, err)
			}
		}
	}

	return config.Load(v)
}

func newChecker(cfg *config.Config, opts checkOptions) registry.Checker {
	httpClient := httpx.NewClient(cfg.Timeout)

	if opts.ociRef != "" {
		namespace, tag := registry.SplitReference(opts.ociRef)
		log.WithFields(log.Fields{
			"namespace": namespace,
			"tag":       tag,
		}).Debug("using OCI registry")
		return registry.NewOCIClient(namespace, httpClient,
			registry.WithTag(tag),
			registry.WithPlainHTTP(opts.plainHTTP),
		)
	}

	client := &httpx.WithUserAgent{BasicClient: httpClient, UserAgent: cfg.UserAgent}
	return registry.NewNPMClient(client, cfg.Registry)
}
