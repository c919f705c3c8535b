package logging_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/sarf/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(in), in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	logger := logging.NewWithWriter(cfg, &buf)

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "shell")
	ctx = logging.WithTabID(ctx, "t1")
	logging.FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"shell"`)
	assert.Contains(t, out, `"tab_id":"t1"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	logger := logging.FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sarf.log")
	w, err := logging.NewFileWriter(logging.FileConfig{Path: path, MaxSizeMB: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = logging.NewFileWriter(logging.FileConfig{})
	assert.Error(t, err)
}

func TestRecoverGoroutine(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	ctx := logging.WithContext(context.Background(), logging.NewWithWriter(cfg, &buf))

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer logging.RecoverGoroutine(ctx, "test")
		panic("boom")
	}()
	<-done

	assert.Contains(t, buf.String(), `"panic":"boom"`)
}

func TestStartupTrace(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.DebugLevel
	logger := logging.NewWithWriter(cfg, &buf)

	st := logging.NewStartupTrace(time.Now(), &logger)
	st.Mark("config_loaded")
	st.Finish("first_tab")
	st.Mark("ignored")
	st.Finish("again")

	ms := st.Milestones()
	require.Len(t, ms, 2)
	assert.Equal(t, "config_loaded", ms[0].Name)
	assert.Equal(t, "first_tab", ms[1].Name)
	assert.True(t, st.Finished())
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("first tab ready")))

	var nilTrace *logging.StartupTrace
	nilTrace.Mark("x")
	nilTrace.Finish("y")
	assert.Nil(t, nilTrace.Milestones())
}
