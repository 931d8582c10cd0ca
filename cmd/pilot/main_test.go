package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/pilot/pkg/pilot"
	"github.com/BrandonKowalski/pilot/pkg/pilot/constants"
	"github.com/BrandonKowalski/pilot/pkg/pilot/script"
	"github.com/BrandonKowalski/pilot/pkg/pilot/stack"
)

var uiDataUI = filepath.Join("..", "..", "pkg", "pilot", "script", "testdata", "ui_data_ui.toml")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReplay_English(t *testing.T) {
	out, err := execute(t, "replay", "--lang", "en", uiDataUI)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"step 0 (push): showing x#1, forward\n"+
		"step 2 (push): showing z#3, forward\n"+
		"step 3 (pop): popped z#3\n"+
		"step 3 (pop): showing x#1, back\n"+
		"final stack (2 frames): [x#1 y#2]\n"+
		"top visible frame: x#1\n", out)
}

func TestReplay_SpanishQuiet(t *testing.T) {
	out, err := execute(t, "replay", "--lang", "es", "-q", uiDataUI)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"pila final (2 marcos): [x#1 y#2]\n"+
		"marco visible superior: x#1\n", out)
}

func TestReplay_FailingStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[variant]]
name = "a"

[[step]]
op = "push"
variant = "a"

[[step]]
op = "push"
variant = "missing"
`), 0644))

	out, err := execute(t, "replay", "--lang", "en", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, stack.ErrUnknownVariant)
	assert.Contains(t, out, "final stack (1 frame): [a#1]")
}

func TestReplay_MissingArg(t *testing.T) {
	_, err := execute(t, "replay")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--lang", "en")
	require.NoError(t, err)
	assert.Equal(t, "pilot version 1.0.0\n", out)
}

func TestConfigFlag_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pilot.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = [\n"), 0644))
	_, err := execute(t, "version", "--config", path)
	assert.Error(t, err)
}

func TestMessages_Event(t *testing.T) {
	msgs, err := newMessages("es")
	require.NoError(t, err)

	assert.Equal(t, "paso 1 (pop): mostrando a#1, atrás", msgs.event(script.Event{
		Step: 1, Op: script.OpPop, Kind: script.EventTopChanged, Frame: "a#1", Direction: stack.Back,
	}))
	assert.Equal(t, "paso 2 (clear): no quedan marcos visibles", msgs.event(script.Event{
		Step: 2, Op: script.OpClear, Kind: script.EventEmpty,
	}))
}

func TestMessages_UnknownLanguageFallsBack(t *testing.T) {
	msgs, err := newMessages("xx")
	require.NoError(t, err)
	assert.Equal(t, "forward", msgs.direction(stack.Forward))
	assert.Equal(t, "Missing", msgs.get("Missing", nil))
}

func TestLogLevelFlag_BeatsEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv(constants.LogLevelEnvVar, "debug")

	_, err := execute(t, "version", "--log-level", "error")
	require.NoError(t, err)
	assert.False(t, pilot.GetLogger().Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, pilot.GetLogger().Enabled(context.Background(), slog.LevelError))
}

func TestLogLevel_EnvironmentWithoutFlag(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv(constants.LogLevelEnvVar, "debug")

	_, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, pilot.GetLogger().Enabled(context.Background(), slog.LevelDebug))
}
