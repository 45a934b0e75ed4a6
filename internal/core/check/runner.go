// Package check ties validation, availability checks and alternative
// suggestions together for a list of requested names.
package check

import (
	"context"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/LoriKarikari/npmcheck/internal/core/naming"
	"github.com/LoriKarikari/npmcheck/internal/core/registry"
	"github.com/LoriKarikari/npmcheck/internal/core/suggest"
)

// NameReport is everything learned about one requested name. Result is nil
// when the name failed validation. Alternatives only holds the suggestions
// that were checked, in generator order.
type NameReport struct {
	Name         string                  `json:"name" yaml:"name"`
	Validation   naming.ValidationResult `json:"validation" yaml:"validation"`
	Result       *registry.CheckResult   `json:"result,omitempty" yaml:"result,omitempty"`
	Alternatives []registry.CheckResult  `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

// AvailableAlternatives returns the checked alternatives that are free.
func (r NameReport) AvailableAlternatives() []string {
	return lo.FilterMap(r.Alternatives, func(res registry.CheckResult, _ int) (string, bool) {
		return res.Name, res.Status() == registry.StatusAvailable
	})
}

type Runner struct {
	checker     registry.Checker
	similar     bool
	concurrency int
	onReport    func(NameReport)
}

type Option func(*Runner)

// WithSimilar checks alternatives for every name found to be taken.
func WithSimilar(similar bool) Option {
	return func(r *Runner) {
		r.similar = similar
	}
}

// WithConcurrency sets how many names are processed at once. Values below 1
// mean sequential processing.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		r.concurrency = n
	}
}

// WithReportFunc registers fn to receive each report, in input order, as soon
// as it and all earlier reports are complete.
func WithReportFunc(fn func(NameReport)) Option {
	return func(r *Runner) {
		r.onReport = fn
	}
}

func NewRunner(checker registry.Checker, opts ...Option) *Runner {
	r := &Runner{
		checker:     checker,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.concurrency < 1 {
		r.concurrency = 1
	}
	return r
}

// Run processes names and returns one report per name in input order.
func (r *Runner) Run(ctx context.Context, names []string) []NameReport {
	if r.concurrency == 1 {
		return r.runSequential(ctx, names)
	}
	return r.runConcurrent(ctx, names)
}

func (r *Runner) runSequential(ctx context.Context, names []string) []NameReport {
	reports := make([]NameReport, 0, len(names))
	for _, name := range names {
		report := r.Process(ctx, name)
		reports = append(reports, report)
		r.emit(report)
	}
	return reports
}

func (r *Runner) runConcurrent(ctx context.Context, names []string) []NameReport {
	reports := make([]NameReport, len(names))
	done := make([]chan struct{}, len(names))
	for i := range done {
		done[i] = make(chan struct{})
	}

	emitted := make(chan struct{})
	go func() {
		defer close(emitted)
		for i := range names {
			<-done[i]
			r.emit(reports[i])
		}
	}()

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, name := range names {
		g.Go(func() error {
			defer close(done[i])
			reports[i] = r.Process(ctx, name)
			return nil
		})
	}
	_ = g.Wait()
	<-emitted

	return reports
}

// Process validates name, checks it when valid and, if it is taken and
// similar names were requested, checks each alternative in turn.
func (r *Runner) Process(ctx context.Context, name string) NameReport {
	report := NameReport{
		Name:       name,
		Validation: naming.Validate(name),
	}
	if !report.Validation.Valid {
		log.WithFields(log.Fields{
			"name":   name,
			"reason": report.Validation.Reason,
		}).Debug("skipping invalid name")
		return report
	}

	result := r.checker.Check(ctx, name)
	report.Result = &result

	if r.similar && result.Status() == registry.StatusTaken {
		report.Alternatives = r.checkAlternatives(ctx, name)
	}
	return report
}

func (r *Runner) checkAlternatives(ctx context.Context, name string) []registry.CheckResult {
	candidates := suggest.Alternatives(name)
	results := make([]registry.CheckResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, r.checker.Check(ctx, candidate))
	}
	return results
}

func (r *Runner) emit(report NameReport) {
	if r.onReport != nil {
		r.onReport(report)
	}
}
