package logging_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/randomtoy/pokedexd/internal/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pokedexd.log")

	logger, err := logging.New(zapcore.InfoLevel, path)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("species fetched")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO | ")
	assert.Contains(t, string(data), "species fetched")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_DefaultsToStderr(t *testing.T) {
	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	t.Cleanup(func() { os.Stdout, os.Stderr = stdout, stderr })

	logger, err := logging.New(zapcore.InfoLevel, "")
	require.NoError(t, err)
	logger.Warn("translation failed")
	_ = logger.Sync()

	os.Stdout, os.Stderr = stdout, stderr
	require.NoError(t, outW.Close())
	require.NoError(t, errW.Close())

	gotOut, err := io.ReadAll(outR)
	require.NoError(t, err)
	gotErr, err := io.ReadAll(errR)
	require.NoError(t, err)

	assert.Empty(t, string(gotOut))
	assert.Contains(t, string(gotErr), "translation failed")
}
