package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveDateCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "explicit offset",
			args: []string{"resolve-date", "2024-01-02T18:00:00Z", "--tz", "none"},
			want: "2024-01-02T18:00:00Z",
		},
		{
			name: "tomorrow in utc",
			args: []string{"resolve-date", "tomorrow", "at", "6pm", "--tz", "UTC", "--now", "2024-01-01T10:00:00Z"},
			want: "2024-01-02T18:00:00Z",
		},
		{
			name: "no date",
			args: []string{"resolve-date", "none"},
			want: "none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestResolveDateCmd_BadFlags(t *testing.T) {
	_, err := run(t, "resolve-date", "tomorrow 6pm", "--tz", "Not/AZone")
	assert.Error(t, err)

	_, err = run(t, "resolve-date", "tomorrow 6pm", "--now", "yesterday")
	assert.Error(t, err)
}

func TestCountdownCmd(t *testing.T) {
	out, err := run(t, "countdown", "2024-01-01T10:10:00Z", "--now", "2024-01-01T10:00:00Z")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "imminent", got["phase"])
	assert.Equal(t, "10m 0s", got["precise_countdown"])
	assert.Equal(t, true, got["fire"])

	out, err = run(t, "countdown", "2024-01-01T12:00:00Z", "--now", "2024-01-01T10:00:00Z")
	require.NoError(t, err)
	got = nil
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "waiting", got["phase"])
	assert.Equal(t, "in about 2 hours", got["display_distance"])
	assert.Equal(t, false, got["fire"])

	_, err = run(t, "countdown", "soon")
	assert.Error(t, err)
}

func TestCalendarAuthCmd_MissingCredentials(t *testing.T) {
	_, err := run(t, "calendar-auth", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"broken":true}`), 0o600))
	_, err = run(t, "calendar-auth", bad)
	assert.Error(t, err)
}
