package bridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/handler/handlertest"
)

func TestZapCoreWritesRecord(t *testing.T) {
	rec := handlertest.NewRecorder("zap")
	logger := zap.New(NewZapCore(rec), zap.AddCaller()).Named("api").With(zap.String("svc", "billing"))

	logger.Warn("slow request", zap.Int("ms", 1500), zap.Error(errors.New("timeout")))

	got, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "slow request", got.Message)
	assert.Equal(t, core.WarningLevel, got.Level)
	assert.Equal(t, "api", got.Source)
	assert.False(t, got.Time.IsZero())
	assert.Equal(t, "billing", got.Metadata["svc"].String())
	assert.Equal(t, "1500", got.Metadata["ms"].String())
	assert.Equal(t, "timeout", got.Metadata["error"].String())
	require.True(t, got.Caller.Defined)
	assert.Equal(t, "zap_test.go", got.Caller.ShortFile)
}

func TestZapCoreRespectsHandlerLevel(t *testing.T) {
	rec := handlertest.NewRecorder("zap")
	rec.SetLevel(core.ErrorLevel)
	logger := zap.New(NewZapCore(rec))

	logger.Info("dropped")
	logger.Warn("dropped")
	logger.Error("kept")

	require.Equal(t, 1, rec.Len())
	got, _ := rec.Last()
	assert.Equal(t, "kept", got.Message)
}

func TestZapCoreWithDoesNotLeak(t *testing.T) {
	rec := handlertest.NewRecorder("zap")
	base := zap.New(NewZapCore(rec))
	base.With(zap.String("child", "yes")).Info("child")
	base.Info("parent")

	records := rec.Records()
	require.Len(t, records, 2)
	assert.Contains(t, records[0].Metadata, "child")
	assert.Empty(t, records[1].Metadata)
}

func TestZapCoreSync(t *testing.T) {
	assert.NoError(t, NewZapCore(handlertest.NewRecorder("zap")).Sync())
}

func TestZapLevel(t *testing.T) {
	tests := []struct {
		in   zapcore.Level
		want core.Level
	}{
		{zapcore.DebugLevel - 1, core.TraceLevel},
		{zapcore.DebugLevel, core.DebugLevel},
		{zapcore.InfoLevel, core.InfoLevel},
		{zapcore.WarnLevel, core.WarningLevel},
		{zapcore.ErrorLevel, core.ErrorLevel},
		{zapcore.DPanicLevel, core.CriticalLevel},
		{zapcore.PanicLevel, core.CriticalLevel},
		{zapcore.FatalLevel, core.CriticalLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZapLevel(tt.in), "ZapLevel(%v)", tt.in)
	}
}
