package scan_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/dnsdumper/internal/apperr"
	"github.com/tbckr/dnsdumper/internal/enumerate"
	"github.com/tbckr/dnsdumper/internal/query"
	"github.com/tbckr/dnsdumper/internal/record"
	"github.com/tbckr/dnsdumper/internal/resolver"
	"github.com/tbckr/dnsdumper/internal/scan"
	"github.com/tbckr/dnsdumper/internal/testutil"
)

// mockQuerier implements scan.Querier with func fields.
type mockQuerier struct {
	AvailableFn     func() error
	QueryFn         func(ctx context.Context, t record.Target) *record.RecordSet
	QueryDetailedFn func(ctx context.Context, t record.Target) *record.RecordSet

	mu       sync.Mutex
	detailed []record.Target
	short    []record.Target
}

func (m *mockQuerier) Available() error {
	if m.AvailableFn != nil {
		return m.AvailableFn()
	}
	return nil
}

func (m *mockQuerier) Query(ctx context.Context, t record.Target) *record.RecordSet {
	m.mu.Lock()
	m.short = append(m.short, t)
	m.mu.Unlock()
	if m.QueryFn != nil {
		return m.QueryFn(ctx, t)
	}
	return nil
}

func (m *mockQuerier) QueryDetailed(ctx context.Context, t record.Target) *record.RecordSet {
	m.mu.Lock()
	m.detailed = append(m.detailed, t)
	m.mu.Unlock()
	if m.QueryDetailedFn != nil {
		return m.QueryDetailedFn(ctx, t)
	}
	return nil
}

func subTargets(n int) []record.Target {
	targets := make([]record.Target, n)
	for i := range targets {
		targets[i] = record.Target{Name: fmt.Sprintf("host%d.example.com", i/3), Type: record.SubdomainTypes[i%3]}
	}
	return targets
}

func TestRun_MainPhaseUsesDetailedQueries(t *testing.T) {
	q := &mockQuerier{}
	r, err := scan.New(q, scan.Options{}, testutil.NopLogger()).Run(context.Background(), "example.com", nil)
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Len(t, q.detailed, len(record.MainTypes))
	assert.Empty(t, q.short)
	assert.True(t, r.IsEmpty())
}

func TestRun_BatchProgress(t *testing.T) {
	var updates []scan.Progress
	q := &mockQuerier{}
	s := scan.New(q, scan.Options{
		BatchSize: 50,
		Progress:  func(p scan.Progress) { updates = append(updates, p) },
	}, testutil.NopLogger())

	_, err := s.Run(context.Background(), "example.com", subTargets(120))
	require.NoError(t, err)

	require.Len(t, updates, 3)
	for i, want := range []int{50, 100, 120} {
		assert.Equal(t, i+1, updates[i].Batch)
		assert.Equal(t, 3, updates[i].Batches)
		assert.Equal(t, want, updates[i].Completed)
		assert.Equal(t, 120, updates[i].Total)
		assert.Equal(t, "example.com", updates[i].Domain)
	}
	assert.Len(t, q.short, 120)
}

func TestRun_ConcurrencyBound(t *testing.T) {
	var inFlight, peak atomic.Int32
	q := &mockQuerier{
		QueryFn: func(_ context.Context, _ record.Target) *record.RecordSet {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			inFlight.Add(-1)
			return nil
		},
	}
	_, err := scan.New(q, scan.Options{Concurrency: 4}, testutil.NopLogger()).
		Run(context.Background(), "example.com", subTargets(60))
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(4))
}

func TestRun_ResolverUnavailable(t *testing.T) {
	q := &mockQuerier{AvailableFn: func() error { return apperr.ErrResolverUnavailable }}
	r, err := scan.New(q, scan.Options{}, testutil.NopLogger()).Run(context.Background(), "example.com", subTargets(10))
	require.ErrorIs(t, err, apperr.ErrResolverUnavailable)
	assert.Nil(t, r)
	assert.Empty(t, q.detailed)
	assert.Empty(t, q.short)
}

func TestRun_CanceledBetweenBatches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var batches int
	q := &mockQuerier{}
	s := scan.New(q, scan.Options{
		BatchSize: 10,
		Progress: func(scan.Progress) {
			batches++
			cancel()
		},
	}, testutil.NopLogger())

	r, err := s.Run(ctx, "example.com", subTargets(30))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, r)
	assert.Equal(t, 1, batches)
	assert.Len(t, q.short, 10)
}

// A domain where only www has an A record dumps to exactly that record.
func TestRun_EndToEnd(t *testing.T) {
	runner := &testutil.MockRunner{
		RunFn: func(_ context.Context, req resolver.Request) (string, error) {
			if req.Name == "www.example.test" && req.Type == record.TypeA {
				return "1.2.3.4\n", nil
			}
			return "", nil
		},
	}
	exec := query.NewExecutor(runner, query.Options{}, testutil.NopLogger())

	plan, err := enumerate.New(testutil.NopLogger()).Enumerate("example.test", enumerate.Options{})
	require.NoError(t, err)

	s := scan.New(exec, scan.Options{}, testutil.NopLogger())
	s.SetNow(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600)) })

	r, err := s.Run(context.Background(), "example.test", plan.Targets("example.test"))
	require.NoError(t, err)

	assert.Equal(t, "2026-01-02T02:04:05Z", r.Timestamp)
	assert.Empty(t, r.Records)
	require.Len(t, r.Subdomains, 1)
	rs := r.Subdomains["www.example.test"][record.TypeA]
	require.NotNil(t, rs)
	assert.Equal(t, []string{"1.2.3.4"}, rs.Values)
	assert.Equal(t, 1, rs.Count)

	assert.Len(t, runner.Calls(), len(record.MainTypes)+len(plan.Labels)*len(record.SubdomainTypes))
}
