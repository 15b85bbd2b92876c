package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/specialistvlad/targetconf/internal/ctxlog"
	"github.com/stretchr/testify/require"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	require.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := ctxlog.WithLogger(context.Background(), logger)
	ctx = ctxlog.With(ctx, "file", "main.hcl")
	ctxlog.FromContext(ctx).Debug("loaded")

	require.Contains(t, buf.String(), "file=main.hcl")
	require.Contains(t, buf.String(), "msg=loaded")
}
