package xconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logSection struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

type teeSection struct {
	Append  bool              `koanf:"append"`
	MaxSize datasize.ByteSize `koanf:"max_size"`
	Files   []string          `koanf:"files"`
	Log     logSection        `koanf:"log"`
}

const yamlConfig = `
append: true
max_size: 10KB
files:
  - a.log
  - b.log
log:
  level: debug
`

const jsonConfig = `{"append": false, "max_size": 1000, "files": ["c.log"], "log": {"file": "x.log"}}`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_YAML(t *testing.T) {
	for _, name := range []string{"xtee.yaml", "xtee.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, name, yamlConfig)
			cfg, err := New(path)
			require.NoError(t, err)

			assert.Equal(t, path, cfg.Path())
			assert.Equal(t, FormatYAML, cfg.Format())

			var got teeSection
			require.NoError(t, cfg.Unmarshal("", &got))
			assert.True(t, got.Append)
			assert.Equal(t, 10*datasize.KB, got.MaxSize)
			assert.Equal(t, []string{"a.log", "b.log"}, got.Files)
			assert.Equal(t, "debug", got.Log.Level)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	cfg, err := New(writeConfig(t, "xtee.json", jsonConfig))
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format())

	var got teeSection
	require.NoError(t, cfg.Unmarshal("", &got))
	assert.Equal(t, datasize.ByteSize(1000), got.MaxSize, "纯数字按字节解释")
	assert.Equal(t, "x.log", got.Log.File)

	var section logSection
	require.NoError(t, cfg.Unmarshal("log", &section))
	assert.Equal(t, "x.log", section.File)
}

func TestNew_Errors(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = New("xtee.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = New(writeConfig(t, "bad.json", "{"))
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestNewFromBytes(t *testing.T) {
	cfg, err := NewFromBytes([]byte(yamlConfig), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())
	assert.Equal(t, "debug", cfg.Client().String("log.level"))

	_, err = NewFromBytes([]byte(yamlConfig), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNewFromBytes_Empty(t *testing.T) {
	cfg, err := NewFromBytes(nil, FormatJSON)
	require.NoError(t, err)

	var got teeSection
	require.NoError(t, cfg.Unmarshal("", &got))
	assert.Equal(t, teeSection{}, got)
	assert.False(t, cfg.Exists("append"))
}

func TestExists(t *testing.T) {
	cfg, err := NewFromBytes([]byte("append: false\nlog:\n  level: info\n"), FormatYAML)
	require.NoError(t, err)

	assert.True(t, cfg.Exists("append"), "显式给出的 false 也算存在")
	assert.True(t, cfg.Exists("log.level"))
	assert.False(t, cfg.Exists("rotate"))
	assert.False(t, cfg.Exists("log.file"))
}

func TestUnmarshal_Strict(t *testing.T) {
	data := []byte("append: true\nmax_sise: 10\n")

	lenient, err := NewFromBytes(data, FormatYAML)
	require.NoError(t, err)
	var got teeSection
	require.NoError(t, lenient.Unmarshal("", &got))

	strict, err := NewFromBytes(data, FormatYAML, WithStrict(true))
	require.NoError(t, err)
	err = strict.Unmarshal("", &got)
	assert.ErrorIs(t, err, ErrUnmarshalFailed)
	assert.Contains(t, err.Error(), "max_sise")
}

func TestUnmarshal_StrictDecodesText(t *testing.T) {
	cfg, err := NewFromBytes([]byte("max_size: 2MB\n"), FormatYAML, WithStrict(true))
	require.NoError(t, err)

	var got teeSection
	require.NoError(t, cfg.Unmarshal("", &got))
	assert.Equal(t, 2*datasize.MB, got.MaxSize)
}

func TestUnmarshal_BadValue(t *testing.T) {
	cfg, err := NewFromBytes([]byte("max_size: lots\n"), FormatYAML)
	require.NoError(t, err)

	var got teeSection
	assert.ErrorIs(t, cfg.Unmarshal("", &got), ErrUnmarshalFailed)
}

func TestOptions(t *testing.T) {
	cfg, err := NewFromBytes([]byte(`{"log": {"level": "warn"}}`), FormatJSON,
		nil, WithDelim("/"), WithTag(""), WithDelim(""))
	require.NoError(t, err)
	assert.True(t, cfg.Exists("log/level"))
	assert.False(t, cfg.Exists("log.level"))

	type custom struct {
		Level string `cfg:"level"`
	}
	cfg, err = NewFromBytes([]byte(`{"level": "error"}`), FormatJSON, WithTag("cfg"))
	require.NoError(t, err)
	var got custom
	require.NoError(t, cfg.Unmarshal("", &got))
	assert.Equal(t, "error", got.Level)
}
