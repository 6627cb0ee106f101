package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pradeesh-kumar/lex-engine/lexerr"
)

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	want := Default()
	want.Spec = "grammar/java.spec"
	want.Template = "java.tmpl"
	want.MaxStates = 10000
	want.Verbose = true

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_PartialFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("spec: my.spec\nminimize: false\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Spec = "my.spec"
	want.Minimize = false
	assert.Equal(t, want, got)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "spec: a.spec\nbogus: 1\n"},
		{"wrong type", "maxStates: many\n"},
		{"negative limit", "maxStates: -1\n"},
		{"zero cache", "closureCacheSize: 0\n"},
	}
	for i, tt := range tests {
		path := filepath.Join(dir, tt.name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644), i)

		_, err := Load(path)
		assert.ErrorIs(t, err, lexerr.ErrConfig, tt.name)
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngine(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Minimize = false
	c.MaxStates = 50
	c.ClosureCacheSize = 16

	logger := zap.NewNop()
	ec := c.Engine(logger)
	assert.False(t, ec.Minimize)
	assert.Equal(t, 50, ec.DFA.MaxStates)
	assert.Equal(t, 16, ec.DFA.ClosureCacheSize)
	assert.Same(t, logger, ec.Logger)
	require.NoError(t, ec.Validate())

	opts := c.GenerateOptions(logger)
	assert.Equal(t, c.Spec, opts.Spec)
	assert.Equal(t, c.OutputDirectory, opts.OutputDir)
	assert.Equal(t, c.Encoding, opts.Encoding)
}
