package query_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/dnsdumper/internal/apperr"
	"github.com/tbckr/dnsdumper/internal/query"
	"github.com/tbckr/dnsdumper/internal/record"
	"github.com/tbckr/dnsdumper/internal/resolver"
	"github.com/tbckr/dnsdumper/internal/testutil"
)

func newExecutor(runner *testutil.MockRunner) *query.Executor {
	return query.NewExecutor(runner, query.Options{}, testutil.NopLogger())
}

func TestQuery_Success(t *testing.T) {
	runner := &testutil.MockRunner{
		RunFn: func(_ context.Context, _ resolver.Request) (string, error) {
			return "1.2.3.4\n5.6.7.8\n", nil
		},
	}
	rs := newExecutor(runner).Query(context.Background(), record.Target{Name: "www.example.com", Type: record.TypeA})
	require.NotNil(t, rs)
	assert.Equal(t, []string{"1.2.3.4", "5.6.7.8"}, rs.Values)
	assert.Equal(t, 2, rs.Count)
	assert.Empty(t, rs.Detailed)

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, resolver.Request{
		Name:    "www.example.com",
		Type:    record.TypeA,
		Server:  resolver.DefaultServer,
		Short:   true,
		Timeout: query.DefaultTimeout,
	}, calls[0])
}

func TestQuery_NoResult(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
	}{
		{"empty output", "", nil},
		{"whitespace output", "\n \n", nil},
		{"timeout", "", fmt.Errorf("%w: slow", apperr.ErrQueryTimeout)},
		{"non-zero exit", "", fmt.Errorf("%w: exit 9", apperr.ErrQueryFailed)},
		{"other error", "", errors.New("boom")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runner := &testutil.MockRunner{
				RunFn: func(_ context.Context, _ resolver.Request) (string, error) { return tc.out, tc.err },
			}
			rs := newExecutor(runner).Query(context.Background(), record.Target{Name: "example.com", Type: record.TypeTXT})
			assert.Nil(t, rs)
		})
	}
}

func TestQueryDetailed_AttachesDetailForSOA(t *testing.T) {
	runner := &testutil.MockRunner{
		RunFn: func(_ context.Context, req resolver.Request) (string, error) {
			if req.Short {
				return "ns1.example.com. hostmaster.example.com. 1 7200 3600 1209600 3600\n", nil
			}
			return ";; ANSWER SECTION:\nexample.com. 3600 IN SOA ns1.example.com. hostmaster.example.com. 1 7200 3600 1209600 3600\n\n", nil
		},
	}
	exec := query.NewExecutor(runner, query.Options{Server: "9.9.9.9", DetailTimeout: 7 * time.Second}, testutil.NopLogger())

	rs := exec.QueryDetailed(context.Background(), record.Target{Name: "example.com", Type: record.TypeSOA})
	require.NotNil(t, rs)
	assert.Equal(t, 1, rs.Count)
	assert.Contains(t, rs.Detailed, ";; ANSWER SECTION:")
	assert.False(t, strings.HasSuffix(rs.Detailed, "\n"))

	calls := runner.Calls()
	require.Len(t, calls, 2)
	assert.True(t, calls[0].Short)
	assert.False(t, calls[1].Short)
	assert.Equal(t, "9.9.9.9", calls[1].Server)
	assert.Equal(t, 7*time.Second, calls[1].Timeout)
}

func TestQueryDetailed_DetailFailureKeepsPrimary(t *testing.T) {
	runner := &testutil.MockRunner{
		RunFn: func(_ context.Context, req resolver.Request) (string, error) {
			if req.Short {
				return "10 mail.example.com.\n", nil
			}
			return "", apperr.ErrQueryTimeout
		},
	}
	rs := newExecutor(runner).QueryDetailed(context.Background(), record.Target{Name: "example.com", Type: record.TypeMX})
	require.NotNil(t, rs)
	assert.Equal(t, []string{"10 mail.example.com."}, rs.Values)
	assert.Empty(t, rs.Detailed)
}

func TestQueryDetailed_NoDetailForOtherTypes(t *testing.T) {
	runner := &testutil.MockRunner{
		RunFn: func(_ context.Context, _ resolver.Request) (string, error) { return "\"v=spf1 -all\"\n", nil },
	}
	rs := newExecutor(runner).QueryDetailed(context.Background(), record.Target{Name: "example.com", Type: record.TypeTXT})
	require.NotNil(t, rs)
	assert.Len(t, runner.Calls(), 1)
}

func TestQueryDetailed_NoDetailWhenPrimaryEmpty(t *testing.T) {
	runner := &testutil.MockRunner{}
	rs := newExecutor(runner).QueryDetailed(context.Background(), record.Target{Name: "example.com", Type: record.TypeNS})
	assert.Nil(t, rs)
	assert.Len(t, runner.Calls(), 1)
}

func TestAvailable(t *testing.T) {
	runner := &testutil.MockRunner{CheckFn: func() error { return apperr.ErrResolverUnavailable }}
	assert.ErrorIs(t, newExecutor(runner).Available(), apperr.ErrResolverUnavailable)
	assert.NoError(t, newExecutor(&testutil.MockRunner{}).Available())
}

func TestQuery_CanceledContextSkipsRunner(t *testing.T) {
	runner := &testutil.MockRunner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Nil(t, newExecutor(runner).Query(ctx, record.Target{Name: "example.com", Type: record.TypeA}))
	assert.Empty(t, runner.Calls())
}
