package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfigFile_SameDirectory(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	cfgPath := filepath.Join(root, configFileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: text\n"), 0o644))

	got := findConfigFile(root)
	assert.Equal(t, cfgPath, got)
}

func TestFindConfigFile_NestedSubdirectory(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	cfgPath := filepath.Join(root, configFileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: text\n"), 0o644))
	deep := filepath.Join(root, "sub", "deep")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	got := findConfigFile(deep)
	assert.Equal(t, cfgPath, got)
}

func TestFindConfigFile_NoneAnywhere(t *testing.T) {
	t.Parallel()
	// TempDir has no config file anywhere in its ancestry (unless the
	// temp root itself carries one, which would be unusual).
	got := findConfigFile(t.TempDir())
	assert.Equal(t, "", got)
}

func TestValidateFormat(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateFormat("json"))
	assert.NoError(t, validateFormat("text"))

	err := validateFormat("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	for _, level := range []string{"debug", "info", "warn", "error"} {
		l, err := newLogger(level)
		require.NoError(t, err, "level %s", level)
		assert.NotNil(t, l)
	}

	_, err := newLogger("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestApplySetting_Precedence(t *testing.T) {
	// Not parallel: applySetting consults the shared root command's flags.
	tests := []struct {
		name string
		env  string
		file string
		want string
	}{
		{"env wins over file", "text", "json", "text"},
		{"file fills in when env is empty", "", "text", "text"},
		{"default survives when both are empty", "", "", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "json"
			applySetting("format", &target, tt.env, tt.file)
			assert.Equal(t, tt.want, target)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("format: text\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), data, 0o644))
	t.Chdir(dir)

	cfg, err := loadConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("format: [unclosed\n"), 0o644))
	t.Chdir(dir)

	_, err := loadConfigFile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}
