package consolehandler

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/formatter"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsoleHandler_Plain(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Color:  ColorNever,
	})

	h.Handle(core.NewRecord(core.InfoLevel, "test message", core.Metadata{"k": core.StringValue("v")}))

	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}\.\d{3} \[INFO \] test message → k=v\n$`, buf.String())
	assert.Equal(t, uint64(1), h.Stats().ProcessedTotal)
}

func TestConsoleHandler_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Color:  ColorAlways,
	})

	h.Handle(core.NewRecord(core.ErrorLevel, "boom", nil))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "boom")
}

func TestConsoleHandler_CustomFormatter(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})

	h.Handle(core.NewRecord(core.InfoLevel, "json", nil))
	assert.Contains(t, buf.String(), `"message":"json"`)
}

func TestConsoleHandler_WriteFailure(t *testing.T) {
	var reported []error
	h := NewConsoleHandler(ConsoleConfig{
		Label:        "stderr",
		Writer:       failingWriter{},
		ErrorHandler: func(err error) { reported = append(reported, err) },
	})

	assert.NotPanics(t, func() {
		h.Handle(core.NewRecord(core.InfoLevel, "lost", nil))
	})
	require.Len(t, reported, 1)
	assert.Contains(t, reported[0].Error(), "broken pipe")
	assert.Equal(t, uint64(1), h.Stats().FailedTotal)
}

func TestConsoleHandler_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Color: ColorNever})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Handle(core.NewRecord(core.InfoLevel, "parallel", nil))
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, "[INFO ] parallel"), line)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"rainbow", ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
