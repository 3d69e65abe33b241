package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/dnsdumper/internal/apperr"
	"github.com/tbckr/dnsdumper/internal/config"
	"github.com/tbckr/dnsdumper/internal/version"
)

func init() {
	color.NoColor = true
}

// run executes the root command with an isolated config file.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	var out, errOut bytes.Buffer
	err = Execute(context.Background(), append([]string{"--config=" + cfgFile}, args...),
		strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

// fakeDig writes a resolver script that only knows www.example.test A.
func fakeDig(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script resolvers are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "dig")
	script := `#!/bin/sh
case "$*" in
  *" www.example.test A +tries=1 +short") echo 1.2.3.4 ;;
esac
`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o700))
	return path
}

func TestDump_OnlyWWW(t *testing.T) {
	dig := fakeDig(t)
	csvFile := filepath.Join(t.TempDir(), "out.csv")

	stdout, _, err := run(t, "", "dump", "--resolver="+dig, "--skip-rfc", "-q",
		"-o", "json", "--csv", csvFile, "Example.Test.")
	require.NoError(t, err)

	var got struct {
		Domain     string                                `json:"domain"`
		Records    map[string]any                        `json:"records"`
		Subdomains map[string]map[string]json.RawMessage `json:"subdomains"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "example.test", got.Domain)
	assert.Empty(t, got.Records)
	require.Len(t, got.Subdomains, 1)
	assert.JSONEq(t, `{"values":["1.2.3.4"],"count":1}`, string(got.Subdomains["www.example.test"]["A"]))

	f, err := os.Open(csvFile)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"example.test", "www.example.test", "A", "1.2.3.4"}, rows[1][:4])
}

func TestDump_StdinAndSummary(t *testing.T) {
	dig := fakeDig(t)

	stdout, stderr, err := run(t, "example.test\n\n", "dump", "--resolver="+dig, "--no-subdomains", "-o", "plain")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Summary for example.test:")
	assert.Contains(t, stderr, "Total: 0 DNS records")
}

func TestDump_ResolverUnavailable(t *testing.T) {
	stdout, _, err := run(t, "", "dump", "--resolver=dnsdumper-no-such-resolver", "example.com")
	require.ErrorIs(t, err, apperr.ErrResolverUnavailable)
	assert.Empty(t, stdout)
}

func TestDump_InternationalDomain(t *testing.T) {
	dig := fakeDig(t)
	for input, want := range map[string]string{
		"münchen.de":       "xn--mnchen-3ya.de",
		"example.xn--p1ai": "example.xn--p1ai",
	} {
		stdout, _, err := run(t, "", "dump", "--resolver="+dig, "--no-subdomains", "-q", "-o", "json", input)
		require.NoError(t, err, input)
		var got struct {
			Domain string `json:"domain"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, want, got.Domain)
	}
}

func TestDump_InvalidDomain(t *testing.T) {
	dig := fakeDig(t)
	_, _, err := run(t, "", "dump", "--resolver="+dig, "not a domain")
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestInvalidGlobalFlags(t *testing.T) {
	_, _, err := run(t, "", "version", "--concurrency=0")
	require.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, _, err = run(t, "", "version", "-o", "xml")
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestGenerate(t *testing.T) {
	stdout, stderr, err := run(t, "", "generate", "5", "-o", "plain")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 5)
	assert.Contains(t, stderr, "Generated 5 domain names.")

	_, stderr, err = run(t, "", "generate", "2", "-q")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestGenerate_InvalidCount(t *testing.T) {
	for _, arg := range []string{"0", "-1", "ten"} {
		_, _, err := run(t, "", "generate", "--", arg)
		assert.ErrorIs(t, err, apperr.ErrInvalidInput, "count %q", arg)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "", "version", "-o", "plain")
	require.NoError(t, err)
	assert.Equal(t, version.Get().Version+"\n", stdout)
}

func TestConfigSetGet(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	exec := func(args ...string) string {
		var out bytes.Buffer
		require.NoError(t, Execute(context.Background(), append([]string{"--config=" + cfgFile}, args...),
			strings.NewReader(""), &out, &bytes.Buffer{}))
		return out.String()
	}

	exec("config", "set", "batch-size", "30")
	exec("config", "set", "timeout", "2500ms")
	assert.Equal(t, "30\n", exec("config", "get", "batch_size"))
	assert.Equal(t, "2.5s\n", exec("config", "get", "timeout"))
	assert.Equal(t, cfgFile+"\n", exec("config", "path"))

	data, err := os.ReadFile(cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "batch_size: 30\ntimeout: 2.5s\n", string(data))

	show := exec("config", "show", "-o", "plain")
	assert.Contains(t, show, "batch_size=30\n")
	assert.Contains(t, show, "server=8.8.8.8\n")
}

func TestConfigSet_Rejects(t *testing.T) {
	_, _, err := run(t, "", "config", "set", "pap_limit", "red")
	require.ErrorIs(t, err, config.ErrUnknownKey)

	_, _, err = run(t, "", "config", "set", "concurrency", "0")
	require.Error(t, err)
}

func TestResolveInputs_EmptyStdin(t *testing.T) {
	_, _, err := run(t, "\n  \n", "dump", "--resolver=dnsdumper-no-such-resolver")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin was empty")
}

func TestCompletion(t *testing.T) {
	stdout, _, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dnsdumper")

	_, _, err = run(t, "", "completion", "tcsh")
	require.Error(t, err)
}
