package compiler

// Compile runs the full pipeline over src and returns the assembly text for
// tgt. Each stage receives the previous stage's output unchanged; the first
// stage error aborts the pipeline and is returned as-is.
func Compile(src string, tgt Target) (string, error) {
	tokens, err := Lex(src)
	if err != nil {
		return "", err
	}

	prog, err := Parse(tokens)
	if err != nil {
		return "", err
	}

	return Generate(prog, tgt)
}
