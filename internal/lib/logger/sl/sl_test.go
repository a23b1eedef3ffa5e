package sl_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/employee-directory/internal/lib/logger/sl"
	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer // buffer for log capturing
	// Create slog.Logger, which writes in logBuf
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	errAttr := sl.Err(assert.AnError)
	testLogger.Warn("expected result:", errAttr)

	loggedOutput := logBuf.String()

	assert.Contains(t, loggedOutput, assert.AnError.Error())
}

func TestErr_Nil(t *testing.T) {
	t.Parallel()

	attr := sl.Err(nil)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "<nil>", attr.Value.String())
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env          string
		debugEnabled bool
		warnEnabled  bool
		errorOnStart bool
	}{
		{env: "local", debugEnabled: true, warnEnabled: true},
		{env: "development", debugEnabled: false, warnEnabled: true},
		{env: "production", debugEnabled: false, warnEnabled: true},
		{env: "", debugEnabled: false, warnEnabled: false, errorOnStart: true},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			t.Parallel()

			var logBuf bytes.Buffer
			log := sl.New(tt.env, &logBuf)

			assert.Equal(t, tt.debugEnabled, log.Enabled(t.Context(), slog.LevelDebug))
			assert.Equal(t, tt.warnEnabled, log.Enabled(t.Context(), slog.LevelWarn))
			assert.Equal(t, tt.errorOnStart, logBuf.Len() > 0)
		})
	}
}

func TestNew_ProductionDropsTime(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	log := sl.New("production", &logBuf)

	log.Warn("backend is slow")

	assert.Contains(t, logBuf.String(), "backend is slow")
	assert.NotContains(t, logBuf.String(), `"time"`)
}
