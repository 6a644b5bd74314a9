package logging

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_WithoutLogger(t *testing.T) {
	t.Parallel()

	logger := Get(context.Background())

	require.NotNil(t, logger)
	// When no logger is attached, zerolog.Ctx returns a disabled logger
	require.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNew_WithCustomWriter(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, Config{Writer: &buf, Level: InfoLevel})
	require.NoError(t, err)

	logger := Get(ctx)
	assert.Equal(t, InfoLevel, logger.GetLevel())

	logger.Info().Str("dir", "/build").Msg("listing reports")
	assert.Contains(t, buf.String(), `"dir":"/build"`)
	assert.Contains(t, buf.String(), `"app":"gcovaudit"`)
}

func TestNew_DisabledSkipsFilesystem(t *testing.T) {
	t.Parallel()

	// A read-only fs would fail if the XDG directory were created.
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	ctx, err := New(context.Background(), fs, Config{Level: Disabled})
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, Get(ctx).GetLevel())
}

func TestNew_NoWriterNoFilesystem_ReturnsError(t *testing.T) {
	t.Parallel()

	ctx, err := New(context.Background(), nil, Config{Level: InfoLevel})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "filesystem required when no writer provided")
	assert.Nil(t, ctx)
}

func TestNew_ReadOnlyFilesystem_ReturnsError(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := New(context.Background(), fs, Config{Level: DebugLevel})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get log path")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "empty disables", input: "", want: Disabled},
		{name: "disabled", input: "disabled", want: Disabled},
		{name: "debug", input: "debug", want: DebugLevel},
		{name: "warn", input: "warn", want: WarnLevel},
		{name: "unknown", input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateLumberjackLogger_Configuration(t *testing.T) {
	t.Parallel()

	lj := createLumberjackLogger("/tmp/gcovaudit.log", Config{})
	assert.Equal(t, "/tmp/gcovaudit.log", lj.Filename)
	assert.Equal(t, defaultMaxLogSizeMB, lj.MaxSize)
	assert.Equal(t, defaultMaxLogBackups, lj.MaxBackups)
	assert.Equal(t, defaultMaxLogAgeDays, lj.MaxAge)

	lj = createLumberjackLogger("/tmp/gcovaudit.log", Config{MaxSize: 1, MaxBackups: 2, MaxAge: 5})
	assert.Equal(t, 1, lj.MaxSize)
	assert.Equal(t, 2, lj.MaxBackups)
	assert.Equal(t, 5, lj.MaxAge)
}
