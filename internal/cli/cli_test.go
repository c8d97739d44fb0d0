package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/eventbinder/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, exit, err := Parse(nil, out)
	require.NoError(t, err)
	require.False(t, exit)
	require.Empty(t, out.String(), "no usage is printed when the built-in wiring is used")

	require.Equal(t, "", cfg.ConfigPath)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 0, cfg.HealthcheckPort)
	require.False(t, cfg.Strict)
	require.Empty(t, cfg.Triggers)
}

func TestParse_ConfigPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "long flag", args: []string{"-config", "robot.hcl"}, want: "robot.hcl"},
		{name: "short flag", args: []string{"-c", "robot.hcl"}, want: "robot.hcl"},
		{name: "positional", args: []string{"conf.d"}, want: "conf.d"},
		{name: "long flag wins over positional", args: []string{"-config", "a.hcl", "b.hcl"}, want: "a.hcl"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, _, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			require.Equal(t, tc.want, cfg.ConfigPath)
		})
	}
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"--log-format", "TEXT",
		"--log-level", "debug",
		"--healthcheck-port", "8080",
		"--strict",
		"--fire", "dr16:sw_l_pos_top",
		"--fire", "chassis:3",
		"robot.hcl",
	}
	cfg, exit, err := Parse(args, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 8080, cfg.HealthcheckPort)
	require.True(t, cfg.Strict)
	require.Equal(t, []app.Trigger{
		{Module: "dr16", Event: "sw_l_pos_top"},
		{Module: "chassis", Event: "3"},
	}, cfg.Triggers)
	require.Equal(t, "robot.hcl", cfg.ConfigPath)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, exit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "-fire")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown flag", args: []string{"--nope"}, wantErr: "flag provided but not defined"},
		{name: "bad log format", args: []string{"--log-format", "xml"}, wantErr: "invalid log-format"},
		{name: "bad log level", args: []string{"--log-level", "trace"}, wantErr: "invalid log-level"},
		{name: "bad trigger", args: []string{"--fire", "dr16"}, wantErr: "expected module:event"},
		{name: "port out of range", args: []string{"--healthcheck-port", "70000"}, wantErr: "HealthcheckPort"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.False(t, exit)
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.wantErr)
		})
	}
}
