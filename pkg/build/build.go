// Package build is the external collaborator around the compiler pipeline:
// it owns the intermediate assembly file, the assembler/linker process, and
// the cleanup guarantees the pipeline itself never deals with.
package build

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Build writes asmText to an intermediate .s file next to srcPath, invokes
// the external assembler/linker on it, and names the executable after
// srcPath's base name. The intermediate file is removed whether the
// external step succeeds or fails, unless cfg.KeepAsm is set; a failed
// build never leaves a stale executable behind.
func Build(srcPath, asmText string, cfg Config) (string, error) {
	dir := filepath.Dir(srcPath)
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	asmPath := filepath.Join(dir, base+".s")
	exePath := filepath.Join(dir, base)

	if err := os.WriteFile(asmPath, []byte(asmText+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("writing assembly: %w", err)
	}
	if !cfg.KeepAsm {
		defer os.Remove(asmPath)
	}

	args := append([]string{}, cfg.Args...)
	args = append(args, "-o", exePath, asmPath)
	slog.Debug("invoking assembler", "cmd", cfg.Assembler, "args", args)

	out, err := exec.Command(cfg.Assembler, args...).CombinedOutput()
	if err != nil {
		os.Remove(exePath)
		if len(out) > 0 {
			return "", fmt.Errorf("%s: %w\n%s", cfg.Assembler, err, out)
		}
		return "", fmt.Errorf("%s: %w", cfg.Assembler, err)
	}

	slog.Debug("build complete", "exe", exePath)
	return exePath, nil
}
