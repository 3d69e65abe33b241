package input_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/dnsdumper/internal/input"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"basic", "example.com\nexample.org\n", []string{"example.com", "example.org"}},
		{"trims whitespace", "  example.com  \n\texample.org\t\n", []string{"example.com", "example.org"}},
		{"drops empty lines", "example.com\n\n\nexample.org\n", []string{"example.com", "example.org"}},
		{"keeps hash lines", "#www\napi\n", []string{"#www", "api"}},
		{"no trailing newline", "example.com", []string{"example.com"}},
		{"empty", "", nil},
		{"whitespace only", "   \n\t\n", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := input.Read(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadList_SkipsComments(t *testing.T) {
	in := "# custom list\nwww\n  # indented comment\n\nvpn.example.com\ncdn.other.net\n"
	got, err := input.ReadList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"www", "vpn.example.com", "cdn.other.net"}, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadList_ReaderError(t *testing.T) {
	_, err := input.ReadList(failingReader{})
	require.Error(t, err)
}
