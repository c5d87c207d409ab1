package compiler

import (
	"fmt"
	"runtime"
	"strings"
)

// Target describes how one OS/architecture pair spells its assembly: the
// symbol prefix, the instruction loading a constant into the conventional
// return-value register, and the return instruction.
type Target struct {
	Name         string // e.g. "linux/amd64"
	SymbolPrefix string // "_" on darwin
	MovFormat    string // format string with one %d verb for the constant
	Ret          string
}

var (
	// DarwinARM64 emits the syntax accepted by the macOS clang toolchain.
	DarwinARM64 = Target{
		Name:         "darwin/arm64",
		SymbolPrefix: "_",
		MovFormat:    "    mov w0, #%d",
		Ret:          "    ret",
	}

	// LinuxAMD64 emits AT&T syntax for the GNU toolchain.
	LinuxAMD64 = Target{
		Name:         "linux/amd64",
		SymbolPrefix: "",
		MovFormat:    "    movl $%d, %%eax",
		Ret:          "    ret",
	}
)

// Targets maps a target name to its definition.
var Targets = map[string]Target{
	DarwinARM64.Name: DarwinARM64,
	LinuxAMD64.Name:  LinuxAMD64,
}

// DefaultTarget picks the target matching the host, falling back to
// linux/amd64.
func DefaultTarget() Target {
	if tgt, ok := Targets[runtime.GOOS+"/"+runtime.GOARCH]; ok {
		return tgt
	}
	return LinuxAMD64
}

// Generate walks prog and emits assembly text for tgt: a global symbol
// declaration, the symbol's label, a load of the constant into the return
// register, and a return. Lines are joined with "\n", no trailing newline,
// and the constant appears verbatim in decimal.
//
// The parser can only build the one supported shape; the checks here are a
// contract assertion so that future grammar growth fails loudly instead of
// emitting wrong code.
func Generate(prog *Program, tgt Target) (string, error) {
	fn := prog.Function
	if fn.Name != "main" {
		return "", &CodegenError{Construct: fmt.Sprintf("function %q (only \"main\" is supported)", fn.Name)}
	}

	var ret *ReturnStmt
	switch s := fn.Body.(type) {
	case *ReturnStmt:
		ret = s
	default:
		return "", &CodegenError{Construct: fmt.Sprintf("statement %T (only return statements are supported)", s)}
	}

	var value int64
	switch e := ret.Expression.(type) {
	case *Constant:
		value = e.Value
	default:
		return "", &CodegenError{Construct: fmt.Sprintf("expression %T (only constant expressions are supported)", e)}
	}

	sym := tgt.SymbolPrefix + fn.Name
	lines := []string{
		"    .globl " + sym,
		sym + ":",
		fmt.Sprintf(tgt.MovFormat, value),
		tgt.Ret,
	}
	return strings.Join(lines, "\n"), nil
}
