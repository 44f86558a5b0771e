// Package main implements beanfixture, a generator for the accessor surface
// of test beans.
//
// For each struct it generates:
//   - getters and setters for unexported fields tagged `bean:"rw"` or `bean:"ro"`
//   - With* and Set* functional options
//   - New<Struct>WithOptions and New<Struct>WithOptionsAndDefaults constructors
//   - DebugMap and FlatDebugMap methods for safe debug output
//
// Usage:
//
//	beanfixture [flags] <package-path> <struct-name> [<struct-name>...]
//
// Flags:
//
//	--output <path>
//	    Location where generated code will be written (required)
//	--package <name>
//	    Name of package to use in output file (optional, inferred from output directory)
//	--sensitive-field-name-matches <substring>
//	    Comma-separated list of field name substrings considered sensitive (default: "secure")
//	--prefix
//	    Prefix option names with the struct name
//	--verbose
//	    Log at debug level
//
// Every flag can also be given as a BEANFIXTURE_* environment variable or in
// a .beanfixture.yaml file in the working directory.
//
// Example:
//
//	//go:generate go run github.com/limz/beanfixture --prefix --output=testbean_options.go . TestBean
//
// Struct Tag Format:
//
// The `bean` tag selects what is generated for a field:
//   - "rw" - getter, setter and options (unexported fields only)
//   - "ro" - getter only (unexported fields only)
//   - "skip" - nothing beyond ToOption and DebugMap
//
// Exported fields without a `bean` tag get options only. Unexported fields
// without one are ignored.
//
// Every generated field must carry a `debugmap` tag:
//   - "visible" - Show actual field value in DebugMap
//   - "visible-format" - Show formatted value (expands collections)
//   - "sensitive" - Show "(sensitive)" placeholder
//   - "hidden" - Omit from DebugMap entirely
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var DefaultSensitiveNames = "secure"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "beanfixture [flags] <package-path> <struct-name> [<struct-name>...]",
		Short:         "Generate accessors, functional options and debug maps for test beans",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(v)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			return run(cfg, logger, args[0], args[1:])
		},
	}

	registerFlags(cmd.Flags())
	bindConfig(v, cmd.Flags())
	return cmd
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String("output", "", "Location where generated code will be written")
	flags.String("package", "", "Name of package to use in output file")
	flags.String("sensitive-field-name-matches", DefaultSensitiveNames, "Substring matches of field names that should be considered sensitive")
	flags.Bool("prefix", false, "Prefix generated option names with struct name (e.g., WithTestBeanName instead of WithName)")
	flags.Bool("verbose", false, "Log at debug level")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func run(cfg *Config, logger *zap.Logger, pkgDir string, structNames []string) error {
	pkg, targets, err := loadTargets(pkgDir, structNames)
	if err != nil {
		return err
	}

	pkgName, pkgPath := outputPackage(cfg.Output, pkg)
	if cfg.Package != "" {
		pkgName = cfg.Package
	}

	logger.Info("generating",
		zap.String("package", pkgName),
		zap.Strings("structs", structNames),
		zap.String("output", cfg.Output),
	)

	g := &Generator{
		PackageName:          pkgName,
		PackagePath:          pkgPath,
		SensitiveNameMatches: cfg.SensitiveNameMatches(),
		UsePrefix:            cfg.Prefix,
		Logger:               logger,
	}

	var buf bytes.Buffer
	if err := g.Generate(targets, &buf); err != nil {
		return fmt.Errorf("generate %s: %w", cfg.Output, err)
	}

	w, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("couldn't open %s for writing: %w", cfg.Output, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", cfg.Output, err)
	}

	logger.Debug("wrote generated file", zap.String("output", cfg.Output))
	return nil
}
