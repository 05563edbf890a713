package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoviewer/internal/config"
)

// launchRecorder captures what the command would hand to the GUI.
type launchRecorder struct {
	called bool
	cfg    config.Config
	paths  []string
}

func (r *launchRecorder) launch(cfg config.Config, paths []string) error {
	r.called = true
	r.cfg = cfg
	r.paths = paths
	return nil
}

// executeCommandC executes a cobra command and captures its output.
func executeCommandC(root *cobra.Command, args ...string) (string, string, error) {
	actualStdout := new(bytes.Buffer)
	actualStderr := new(bytes.Buffer)
	root.SetOut(actualStdout)
	root.SetErr(actualStderr)
	root.SetArgs(args)

	err := root.Execute()

	return actualStdout.String(), actualStderr.String(), err
}

// isolate keeps the user's real config and environment out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), nil, 0600))
	return dir
}

func TestRootHelp(t *testing.T) {
	rec := &launchRecorder{}
	stdout, stderr, err := executeCommandC(NewRootCmd(rec.launch), "--help")
	require.NoError(t, err, "stdout: %s, stderr: %s", stdout, stderr)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "photoviewer [file or folder...]")
	assert.Contains(t, stdout, "--interval")
	assert.False(t, rec.called)
}

func TestLaunchWithDefaults(t *testing.T) {
	dir := isolate(t)
	rec := &launchRecorder{}

	_, _, err := executeCommandC(NewRootCmd(rec.launch), "--env-file", filepath.Join(dir, ".env"), "a.jpg", "album")
	require.NoError(t, err)
	require.True(t, rec.called)
	assert.Equal(t, []string{"a.jpg", "album"}, rec.paths)
	assert.Equal(t, config.Default(), rec.cfg)
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "viewer.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("slideshow_seconds: 2\nthumbnail_size: 90\n"), 0600))
	rec := &launchRecorder{}

	_, _, err := executeCommandC(NewRootCmd(rec.launch),
		"--config", cfgPath,
		"--env-file", filepath.Join(dir, ".env"),
		"--interval", "6.5",
		"--fullscreen",
	)
	require.NoError(t, err)
	require.True(t, rec.called)
	assert.Equal(t, 6500*time.Millisecond, rec.cfg.SlideshowInterval(), "flag over file")
	assert.Equal(t, 90, rec.cfg.ThumbnailSize, "file value kept when flag unset")
	assert.True(t, rec.cfg.Fullscreen)
	assert.Empty(t, rec.paths)
}

func TestFlagValuesAreClamped(t *testing.T) {
	dir := isolate(t)
	rec := &launchRecorder{}

	_, _, err := executeCommandC(NewRootCmd(rec.launch),
		"--env-file", filepath.Join(dir, ".env"),
		"--interval", "0.1",
		"--thumb-size=-5",
	)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, rec.cfg.SlideshowInterval())
	assert.Equal(t, config.Default().ThumbnailSize, rec.cfg.ThumbnailSize)
}

func TestMissingConfigFile(t *testing.T) {
	dir := isolate(t)
	rec := &launchRecorder{}

	_, _, err := executeCommandC(NewRootCmd(rec.launch),
		"--config", filepath.Join(dir, "nope.yaml"),
		"--env-file", filepath.Join(dir, ".env"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.False(t, rec.called)
}

func TestMissingEnvFile(t *testing.T) {
	dir := isolate(t)
	rec := &launchRecorder{}

	_, _, err := executeCommandC(NewRootCmd(rec.launch),
		"--env-file", filepath.Join(dir, "nope.env"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, rec.called)
}

func TestLaunchErrorPropagates(t *testing.T) {
	dir := isolate(t)
	boom := errors.New("no display")

	_, _, err := executeCommandC(NewRootCmd(func(config.Config, []string) error { return boom }),
		"--env-file", filepath.Join(dir, ".env"))
	assert.ErrorIs(t, err, boom)
}
