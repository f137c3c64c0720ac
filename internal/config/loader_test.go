package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "fd", cfg.Search.FdPath)
	assert.Equal(t, "rg", cfg.Search.RgPath)
	assert.Equal(t, 10*1024*1024, cfg.Search.MaxScanTokenSize)
	assert.Equal(t, 250, cfg.UI.DebounceMs)
}

func TestLoad_FullOverride_AllValuesReplaced(t *testing.T) {
	configJSON := `{
		"search": {"fd_path": "/opt/fd/bin/fd", "rg_path": "/opt/rg/bin/rg", "default_search_path": "/srv/code", "max_scan_token_size": 1048576, "initial_scanner_buffer_size": 4096},
		"ui": {"editor": "vim", "debounce_ms": 100, "visible_results": 20}
	}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/chiral/config.json": []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "/opt/fd/bin/fd", cfg.Search.FdPath)
	assert.Equal(t, "/opt/rg/bin/rg", cfg.Search.RgPath)
	assert.Equal(t, "/srv/code", cfg.Search.DefaultSearchPath)
	assert.Equal(t, 1048576, cfg.Search.MaxScanTokenSize)
	assert.Equal(t, "vim", cfg.UI.Editor)
	assert.Equal(t, 100, cfg.UI.DebounceMs)
	assert.Equal(t, 20, cfg.UI.VisibleResults)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	configJSON := `{"search": {"rg_path": "/usr/local/bin/rg"}}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/chiral/config.json": []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/rg", cfg.Search.RgPath)
	// Untouched keys keep defaults
	assert.Equal(t, "fd", cfg.Search.FdPath)
	assert.Equal(t, 250, cfg.UI.DebounceMs)
}

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/chiral/config.json": []byte(`{"search": `),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PermissionError_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: errors.New("permission denied"),
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDirErr: errors.New("no home"),
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "fd", cfg.Search.FdPath)
}

func TestLoad_InvalidValues_FailValidation(t *testing.T) {
	configJSON := `{"search": {"rg_path": ""}}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/chiral/config.json": []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_Defaults_AreValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_BufferLargerThanMax_Fails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.InitialScannerBufferSize = cfg.Search.MaxScanTokenSize + 1
	assert.Error(t, cfg.Validate())
}
