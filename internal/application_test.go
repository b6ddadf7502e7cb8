package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/blinktactoe-backend/internal/config"
)

func testConfig(storage string) *config.Config {
	conf := &config.Config{
		LogLevel:    "debug",
		Storage:     storage,
		SessionTTL:  time.Hour,
		PlayerNames: []string{"Alice", "Bob"},
	}
	conf.CustomCategory.MinSymbols = 4
	conf.CustomCategory.MaxSymbols = 8

	return conf
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Serves a console session from memory storage", func(t *testing.T) {
		var out bytes.Buffer

		err := run(context.Background(), logger, testConfig(config.StorageMemory), strings.NewReader("single\nquit\n"), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Round 1 | Alice 0 - 0 Bob")
		assert.Contains(t, out.String(), "Bye!")
	})

	t.Run("Unknown storage", func(t *testing.T) {
		err := run(context.Background(), logger, testConfig("etcd"), strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, ErrUnknownStorage)
	})

	t.Run("Redis without host", func(t *testing.T) {
		err := run(context.Background(), logger, testConfig(config.StorageRedis), strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}
