package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamh-utopi/Payload-decoders/internal/config"
)

func TestConfigureConsoleOnly(t *testing.T) {
	logger := log.New()
	var buf bytes.Buffer
	settings := config.Default()
	settings.LogLevel = "WARN"

	closer, err := configure(logger, settings, &buf)
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, log.WarnLevel, logger.GetLevel())
}

func TestConfigureFileSink(t *testing.T) {
	logger := log.New()
	path := filepath.Join(t.TempDir(), "logs", "decode.log")
	settings := config.Default()
	settings.LogFilePath = path

	closer, err := configure(logger, settings, &bytes.Buffer{})
	require.NoError(t, err)

	logger.WithField("bytes", 35).Info("decoded uplink")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "decoded uplink")
	assert.Contains(t, string(data), "bytes=35")
}
