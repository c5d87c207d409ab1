package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicc/pkg/compiler"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gcc", cfg.Assembler)
	assert.Equal(t, compiler.DefaultTarget().Name, cfg.Target)
	assert.False(t, cfg.KeepAsm)
	assert.Empty(t, cfg.Args)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minicc.yaml")
	content := `assembler: cc
args: ["-Wall"]
target: darwin/arm64
keep_asm: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "cc", cfg.Assembler)
	assert.Equal(t, []string{"-Wall"}, cfg.Args)
	assert.Equal(t, "darwin/arm64", cfg.Target)
	assert.True(t, cfg.KeepAsm)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minicc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep_asm: true\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gcc", cfg.Assembler)
	assert.Equal(t, compiler.DefaultTarget().Name, cfg.Target)
	assert.True(t, cfg.KeepAsm)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minicc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("assembler: [unclosed\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestResolveTarget(t *testing.T) {
	tgt, err := Config{Target: "linux/amd64"}.ResolveTarget()
	require.NoError(t, err)
	assert.Equal(t, compiler.LinuxAMD64, tgt)

	tgt, err = Config{}.ResolveTarget()
	require.NoError(t, err)
	assert.Equal(t, compiler.DefaultTarget(), tgt)

	_, err = Config{Target: "plan9/mips"}.ResolveTarget()
	assert.Error(t, err)
}
