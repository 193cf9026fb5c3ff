package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/layoutdir/pkg/direction"
	"github.com/dmitrymomot/layoutdir/pkg/locale"
	"github.com/dmitrymomot/layoutdir/pkg/logger"
)

func logLine(t *testing.T, ctx context.Context, extractors ...logger.ContextExtractor) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	h := logger.NewHandler(slog.NewJSONHandler(&buf, nil), extractors...)
	slog.New(h).InfoContext(ctx, "test")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLocaleExtractor(t *testing.T) {
	t.Parallel()

	t.Run("injects locale from context", func(t *testing.T) {
		t.Parallel()
		ctx := locale.ToContext(context.Background(), "ar-EG")
		entry := logLine(t, ctx, logger.LocaleExtractor())
		require.Equal(t, "ar-EG", entry["locale"])
	})

	t.Run("skips when absent", func(t *testing.T) {
		t.Parallel()
		entry := logLine(t, context.Background(), logger.LocaleExtractor())
		require.NotContains(t, entry, "locale")
	})
}

func TestDirectionExtractor(t *testing.T) {
	t.Parallel()

	ctx := direction.ToContext(context.Background(), direction.RightToLeft)
	entry := logLine(t, ctx, logger.DirectionExtractor())
	require.Equal(t, "rtl", entry["dir"])
}

func TestNilExtractorsAreFiltered(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		entry := logLine(t, context.Background(), nil, logger.LocaleExtractor())
		require.Equal(t, "test", entry["msg"])
	})
}

func TestNewNopeDiscards(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotPanics(t, func() {
		log.Info("discarded")
	})
}
