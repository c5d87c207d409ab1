package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"minicc/pkg/build"
	"minicc/pkg/compiler"
)

var (
	cfgPath    string
	targetName string
	keepAsm    bool
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML config file for the build driver")
	rootCmd.PersistentFlags().StringVarP(&targetName, "target", "t", "", "target name (e.g. linux/amd64, darwin/arm64)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVar(&keepAsm, "keep-asm", false, "retain the intermediate assembly file")

	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(codegenCmd)
}

var rootCmd = &cobra.Command{
	Use:   "minicc [file.c]",
	Short: "minicc compiles a minimal C subset to a native executable",
	Long: `minicc compiles the single-function C subset
"int main(void) { return <constant>; }" through a three-stage pipeline
(lex, parse, codegen) and drives an external assembler/linker to produce
an executable named after the source file.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(args[0])
	},
}

var lexCmd = &cobra.Command{
	Use:   "lex [file.c]",
	Short: "Run the lexer only and print the token table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		tokens, err := compiler.Lex(src)
		if err != nil {
			return err
		}
		fmt.Print(compiler.FormatTokens(tokens))
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [file.c]",
	Short: "Run the lexer and parser and print the AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		tokens, err := compiler.Lex(src)
		if err != nil {
			return err
		}
		prog, err := compiler.Parse(tokens)
		if err != nil {
			return err
		}
		fmt.Println(prog.Tree())
		return nil
	},
}

var codegenCmd = &cobra.Command{
	Use:   "codegen [file.c]",
	Short: "Run the full pipeline and print the generated assembly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tgt, err := cfg.ResolveTarget()
		if err != nil {
			return err
		}
		asm, err := compiler.Compile(src, tgt)
		if err != nil {
			return err
		}
		fmt.Println(asm)
		return nil
	},
}

// runBuild drives a full build: pipeline, assembly file, external
// assembler/linker, executable named after the source base name.
func runBuild(path string) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tgt, err := cfg.ResolveTarget()
	if err != nil {
		return err
	}
	asm, err := compiler.Compile(src, tgt)
	if err != nil {
		return err
	}
	exe, err := build.Build(path, asm, cfg)
	if err != nil {
		return err
	}
	fmt.Println(exe)
	return nil
}

// readSource performs the one scoped read of the source file; the file is
// fully read and closed before lexing begins.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loadConfig resolves driver settings: defaults, then the config file when
// given, then flag overrides.
func loadConfig() (build.Config, error) {
	cfg := build.DefaultConfig()
	if cfgPath != "" {
		var err error
		cfg, err = build.LoadConfig(cfgPath)
		if err != nil {
			return cfg, err
		}
	}
	if targetName != "" {
		cfg.Target = targetName
	}
	if keepAsm {
		cfg.KeepAsm = true
	}
	return cfg, nil
}

// stageLabel names the pipeline stage an error came from, so the driver can
// prefix its report the same way regardless of which command failed.
func stageLabel(err error) string {
	var lexErr *compiler.LexError
	var synErr *compiler.SyntaxError
	var genErr *compiler.CodegenError
	switch {
	case errors.As(err, &lexErr):
		return "lex error"
	case errors.As(err, &synErr):
		return "parse error"
	case errors.As(err, &genErr):
		return "codegen error"
	}
	return "error"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", stageLabel(err), err)
		os.Exit(1)
	}
}
