package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/domainkit"
	"github.com/bft-labs/domainkit/internal/codegen"
	"github.com/bft-labs/domainkit/internal/manifest"
	"github.com/bft-labs/domainkit/internal/watch"
	"github.com/bft-labs/domainkit/pkg/enumeration"
	"github.com/bft-labs/domainkit/pkg/log"
)

const helpDescription = `
Generate Go enumeration types from a TOML or YAML manifest.

Each enum in the manifest becomes a value type embedding enumeration.Member,
a package-level Set with lookup helpers, and one exported variable per member.

Highlights:
  - Declarations are validated with the same rules the runtime enforces.
  - Output is gofmt-formatted and written atomically.
  - Watch mode regenerates on every manifest change.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  enumgen --manifest domain.toml
  enumgen -m api/domain.yaml -o internal/billing/enumeration_gen.go
  enumgen -m domain.toml --watch
  enumgen -m domain.toml --check
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	var zl zerolog.Logger
	zl = zl.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.InfoLevel)

	var (
		manifestPath string
		outPath      string
		pkgName      string
		checkMode    bool
		watchMode    bool
		debugMode    bool
	)

	root := &cobra.Command{
		Use:     "enumgen",
		Short:   "Generate Go enumeration types from a TOML or YAML manifest",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			if debugMode {
				zl = zl.Level(zerolog.DebugLevel)
			}
			if checkMode && watchMode {
				return errors.New("--check cannot be combined with --watch")
			}

			adapter := log.NewZerologAdapterWithLogger(zl)
			enumeration.SetLogger(adapter)

			zl.Debug().Interface("versions", domainkit.ModuleVersions()).Msg("module versions")

			// Build set of changed flags so explicit flags win over the manifest.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			out := outPath
			if out == "" {
				out = filepath.Join(filepath.Dir(manifestPath), "enumeration_gen.go")
			}

			generate := func() error {
				m, err := manifest.Parse(manifestPath)
				if err != nil {
					return fmt.Errorf("load manifest: %w", err)
				}
				if changed["package"] {
					m.Package = pkgName
				}
				if err := m.Validate(); err != nil {
					return err
				}

				src, err := codegen.Generate(m)
				if err != nil {
					return err
				}

				if checkMode {
					current, err := os.ReadFile(out)
					if err != nil {
						return fmt.Errorf("check %s: %w", out, err)
					}
					if !bytes.Equal(current, src) {
						return fmt.Errorf("%s is out of date; rerun enumgen", out)
					}
					zl.Info().Str("path", out).Msg("generated file up to date")
					return nil
				}

				if err := codegen.WriteFile(out, src); err != nil {
					return err
				}
				zl.Info().
					Str("manifest", manifestPath).
					Str("path", out).
					Str("package", m.Package).
					Int("enums", len(m.Enums)).
					Msg("generated")
				return nil
			}

			if err := generate(); err != nil {
				if !watchMode {
					return err
				}
				// Watch mode keeps running so the manifest can be fixed in place.
				zl.Error().Err(err).Msg("generate failed")
			}
			if !watchMode {
				return nil
			}

			watcher, err := watch.New(manifestPath, func() {
				if err := generate(); err != nil {
					zl.Error().Err(err).Msg("regenerate failed")
				}
			}, watch.WithLogger(adapter))
			if err != nil {
				return err
			}

			// Setup signal handling for graceful shutdown
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				select {
				case <-sigCh:
					zl.Info().Msg("received signal, stopping...")
					cancel()
				case <-ctx.Done():
				}
			}()

			zl.Info().Str("manifest", watcher.Path()).Msg("watching for changes")
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVarP(&manifestPath, "manifest", "m", "domain.toml", "path to the enum manifest (.toml, .yaml, or .yml)")
	root.Flags().StringVarP(&outPath, "out", "o", "", "generated file path (default: enumeration_gen.go next to the manifest)")
	root.Flags().StringVar(&pkgName, "package", "", "override the package name declared in the manifest")
	root.Flags().BoolVar(&checkMode, "check", false, "verify the generated file is current without writing")
	root.Flags().BoolVarP(&watchMode, "watch", "w", false, "regenerate whenever the manifest changes")
	root.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		zl.Error().Err(err).Msg("enumgen")
		os.Exit(1)
	}
}
