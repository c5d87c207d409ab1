package compiler

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// badStmt and badExpr stand in for AST variants the generator does not
// support; the grammar cannot produce them, only future growth could.
type badStmt struct{}

func (*badStmt) stmtNode()      {}
func (*badStmt) String() string { return "badStmt" }

type badExpr struct{}

func (*badExpr) exprNode()      {}
func (*badExpr) String() string { return "badExpr" }

func mainReturning(value int64) *Program {
	return &Program{
		Function: &Function{
			Name: "main",
			Body: &ReturnStmt{Expression: &Constant{Value: value}},
		},
	}
}

func TestGenerateLinuxAMD64(t *testing.T) {
	asm, err := Generate(mainReturning(2), LinuxAMD64)
	require.NoError(t, err)

	want := strings.Join([]string{
		"    .globl main",
		"main:",
		"    movl $2, %eax",
		"    ret",
	}, "\n")
	assert.Equal(t, want, asm)
}

func TestGenerateDarwinARM64(t *testing.T) {
	asm, err := Generate(mainReturning(2), DarwinARM64)
	require.NoError(t, err)

	want := strings.Join([]string{
		"    .globl _main",
		"_main:",
		"    mov w0, #2",
		"    ret",
	}, "\n")
	assert.Equal(t, want, asm)
}

func TestGenerateEmitsFourLines(t *testing.T) {
	for name, tgt := range Targets {
		asm, err := Generate(mainReturning(0), tgt)
		require.NoError(t, err, name)
		assert.Len(t, strings.Split(asm, "\n"), 4, name)
		assert.False(t, strings.HasSuffix(asm, "\n"), name)
	}
}

func TestGenerateConstantVerbatim(t *testing.T) {
	for _, value := range []int64{0, 7, 255, 65536, 9223372036854775807} {
		asm, err := Generate(mainReturning(value), LinuxAMD64)
		require.NoError(t, err)
		assert.Contains(t, asm, "$"+strconv.FormatInt(value, 10))
	}
}

func TestGenerateRejectsUnsupportedShapes(t *testing.T) {
	tests := []struct {
		name string
		prog *Program
		want string
	}{
		{
			name: "Non Main Function",
			prog: &Program{Function: &Function{
				Name: "other",
				Body: &ReturnStmt{Expression: &Constant{Value: 1}},
			}},
			want: `function "other"`,
		},
		{
			name: "Non Return Statement",
			prog: &Program{Function: &Function{Name: "main", Body: &badStmt{}}},
			want: "statement",
		},
		{
			name: "Non Constant Expression",
			prog: &Program{Function: &Function{
				Name: "main",
				Body: &ReturnStmt{Expression: &badExpr{}},
			}},
			want: "expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.prog, LinuxAMD64)
			require.Error(t, err)

			var genErr *CodegenError
			require.ErrorAs(t, err, &genErr)
			assert.Contains(t, genErr.Construct, tt.want)
			assert.Contains(t, err.Error(), "unsupported construct")
		})
	}
}

func TestDefaultTargetIsKnown(t *testing.T) {
	tgt := DefaultTarget()
	_, ok := Targets[tgt.Name]
	assert.True(t, ok)
}
