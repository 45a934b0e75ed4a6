package check

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/LoriKarikari/npmcheck/internal/core/naming"
	"github.com/LoriKarikari/npmcheck/internal/core/registry"
)

type fakeChecker struct {
	mu      sync.Mutex
	taken   map[string]bool
	broken  map[string]string
	delay   map[string]time.Duration
	checked []string
}

func (f *fakeChecker) Check(_ context.Context, name string) registry.CheckResult {
	if d, ok := f.delay[name]; ok {
		time.Sleep(d)
	}

	f.mu.Lock()
	f.checked = append(f.checked, name)
	f.mu.Unlock()

	if msg, ok := f.broken[name]; ok {
		return registry.CheckResult{Name: name, Error: msg}
	}
	return registry.CheckResult{Name: name, Available: !f.taken[name]}
}

func (f *fakeChecker) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.checked...)
}

func TestRunner_Sequential(t *testing.T) {
	checker := &fakeChecker{
		taken:  map[string]bool{"react": true},
		broken: map[string]string{"flaky": "HTTP 503"},
	}
	runner := NewRunner(checker)

	reports := runner.Run(context.Background(), []string{"react", "Bad", "free-name", "flaky"})

	want := []NameReport{
		{
			Name:       "react",
			Validation: naming.ValidationResult{Valid: true},
			Result:     &registry.CheckResult{Name: "react"},
		},
		{
			Name:       "Bad",
			Validation: naming.ValidationResult{Reason: naming.ReasonNotLowercase},
		},
		{
			Name:       "free-name",
			Validation: naming.ValidationResult{Valid: true},
			Result:     &registry.CheckResult{Name: "free-name", Available: true},
		},
		{
			Name:       "flaky",
			Validation: naming.ValidationResult{Valid: true},
			Result:     &registry.CheckResult{Name: "flaky", Error: "HTTP 503"},
		},
	}
	if diff := cmp.Diff(want, reports); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"react", "free-name", "flaky"}, checker.calls()); diff != "" {
		t.Errorf("checked names mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_Similar(t *testing.T) {
	checker := &fakeChecker{
		taken: map[string]bool{"foo": true, "my-foo": true, "the-foo": true},
		broken: map[string]string{
			"use-foo": "HTTP 500",
			"flaky":   "timeout",
		},
	}
	runner := NewRunner(checker, WithSimilar(true))

	reports := runner.Run(context.Background(), []string{"foo", "bar", "flaky"})

	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}

	foo := reports[0]
	if len(foo.Alternatives) != 10 {
		t.Fatalf("expected 10 alternatives for foo, got %d", len(foo.Alternatives))
	}
	wantFree := []string{"node-foo", "js-foo", "ts-foo", "foo-js", "foo-ts", "foo-cli", "foo-lib"}
	if diff := cmp.Diff(wantFree, foo.AvailableAlternatives()); diff != "" {
		t.Errorf("AvailableAlternatives() mismatch (-want +got):\n%s", diff)
	}

	if reports[1].Alternatives != nil {
		t.Errorf("available name should not get alternatives, got %v", reports[1].Alternatives)
	}
	if reports[2].Alternatives != nil {
		t.Errorf("name with a failed check should not get alternatives, got %v", reports[2].Alternatives)
	}

	calls := checker.calls()
	if calls[0] != "foo" || calls[1] != "my-foo" || calls[10] != "foo-lib" || calls[11] != "bar" {
		t.Errorf("alternatives not checked in generator order: %v", calls)
	}
}

func TestRunner_ConcurrentKeepsOrder(t *testing.T) {
	checker := &fakeChecker{
		taken: map[string]bool{"slow": true},
		delay: map[string]time.Duration{
			"slow":   30 * time.Millisecond,
			"medium": 10 * time.Millisecond,
		},
	}

	var mu sync.Mutex
	var streamed []string
	runner := NewRunner(checker,
		WithConcurrency(4),
		WithReportFunc(func(r NameReport) {
			mu.Lock()
			streamed = append(streamed, r.Name)
			mu.Unlock()
		}),
	)

	names := []string{"slow", "medium", "fast", "_bad"}
	reports := runner.Run(context.Background(), names)

	got := make([]string, 0, len(reports))
	for _, r := range reports {
		got = append(got, r.Name)
	}
	if diff := cmp.Diff(names, got); diff != "" {
		t.Errorf("report order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(names, streamed); diff != "" {
		t.Errorf("streamed order mismatch (-want +got):\n%s", diff)
	}
	if reports[0].Result == nil || reports[0].Result.Status() != registry.StatusTaken {
		t.Errorf("expected slow to be taken, got %+v", reports[0].Result)
	}
	if reports[3].Result != nil {
		t.Errorf("invalid name must not be checked, got %+v", reports[3].Result)
	}
}

func TestNewRunner_ClampsConcurrency(t *testing.T) {
	runner := NewRunner(&fakeChecker{}, WithConcurrency(0))
	if runner.concurrency != 1 {
		t.Errorf("concurrency = %d, want 1", runner.concurrency)
	}
}

func TestRunner_EmptyInput(t *testing.T) {
	for _, n := range []int{1, 3} {
		reports := NewRunner(&fakeChecker{}, WithConcurrency(n)).Run(context.Background(), nil)
		if len(reports) != 0 {
			t.Errorf("concurrency %d: expected no reports, got %d", n, len(reports))
		}
	}
}
