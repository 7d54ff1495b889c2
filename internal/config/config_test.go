package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Project.Root)
	assert.Equal(t, "diagrams", cfg.Output.Dir)
	assert.Equal(t, "    ", cfg.Output.Indent)
	assert.Equal(t, "csdiag.db", cfg.Index.DB)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csdiag.yaml")
	content := "project:\n  root: src\n  ignore: [generated]\noutput:\n  dir: out\n  indent: \"\\t\"\nindex:\n  db: types.db\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "src", cfg.Project.Root)
	assert.Equal(t, []string{"generated"}, cfg.Project.Ignore)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "\t", cfg.Output.Indent)
	assert.Equal(t, "types.db", cfg.Index.DB)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CSDIAG_OUTPUT_DIR", "env-out")
	t.Setenv("CSDIAG_INDENT", "  ")
	t.Setenv("CSDIAG_DB", "env.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-out", cfg.Output.Dir)
	assert.Equal(t, "  ", cfg.Output.Indent)
	assert.Equal(t, "env.db", cfg.Index.DB)
}
