package cmd

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/logfront/log"
	"github.com/ardnew/logfront/pkg"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "config.yaml", want: FormatYAML},
		{path: "CONFIG.YML", want: FormatYAML},
		{path: "config.json5", want: FormatJSON5},
		{path: "config.json", want: FormatJSON5},
		{path: "config.toml", wantErr: true},
		{path: "config", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	docs := map[Format]string{
		FormatYAML: `
log-level: debug
log-color: never
source: [a.txt, b.txt]
depth: 3
rules:
  - match: name startsWith "db"
    level: WARN
`,
		FormatJSON5: `{
  // comments are allowed
  "log-level": "debug",
  "log-color": "never",
  "source": ["a.txt", "b.txt"],
  "depth": 3,
  "rules": [{"match": "name startsWith \"db\"", "level": "WARN"}]
}`,
	}

	for format, doc := range docs {
		t.Run(format.String(), func(t *testing.T) {
			cfg, err := DecodeConfig([]byte(doc), format)
			require.NoError(t, err)

			assert.Equal(t, map[string]any{
				"log-level": "debug",
				"log-color": "never",
				"source":    "a.txt,b.txt",
				"depth":     "3",
			}, cfg.Flags)

			require.Len(t, cfg.Rules, 1)
			assert.Equal(t, `name startsWith "db"`, cfg.Rules[0].Match)
			assert.Equal(t, log.LevelWarn, cfg.Rules[0].Level)

			set, err := cfg.RuleSet()
			require.NoError(t, err)
			assert.Equal(t, log.LevelWarn, set.Resolve("db.pool", log.LevelTrace))
			assert.Equal(t, log.LevelTrace, set.Resolve("http", log.LevelTrace))
		})
	}
}

func TestDecodeConfigEmpty(t *testing.T) {
	cfg, err := DecodeConfig([]byte("  \n"), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, cfg.Flags)
	assert.Empty(t, cfg.Rules)
}

func TestDecodeConfigErrors(t *testing.T) {
	_, err := DecodeConfig([]byte("{not json"), FormatJSON5)
	require.ErrorIs(t, err, pkg.ErrConfigDecode)

	_, err = DecodeConfig([]byte("rules:\n  - match: x\n    level: LOUD\n"), FormatYAML)
	require.ErrorIs(t, err, pkg.ErrRuleDecode)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.ErrorIs(t, err, pkg.ErrReadInput)
}

func TestRuleSetNil(t *testing.T) {
	var cfg *Config

	set, err := cfg.RuleSet()
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}
