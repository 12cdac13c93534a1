package main

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unbound-force/defectdoc/internal/analysis"
	"github.com/unbound-force/defectdoc/internal/config"
	"github.com/unbound-force/defectdoc/internal/severity"
	"github.com/unbound-force/defectdoc/internal/xdoc"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

// schemaVersion identifies the JSON output schema.
const schemaVersion = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "defectdoc",
		Short: "defectdoc — turn analyzer defect documents into xdoc reports",
		Long: `Defectdoc reads the XML result document of a bytecode defect
analyzer and emits an xdoc report: one block per class with bugs,
plus the run's diagnostics and the configured source roots.`,
		Version: version,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generateParams holds the parsed flags for the generate command.
// Empty string and nil slice fields defer to the config file.
type generateParams struct {
	inputPath   string
	outputPath  string
	configPath  string
	format      string
	threshold   string
	effort      string
	encoding    string
	srcDirs     []string
	testSrcDirs []string
	interactive bool
	stdout      io.Writer
	stderr      io.Writer
}

// runGenerate is the extracted, testable body of the generate command.
func runGenerate(p generateParams) error {
	cfg, err := loadConfig(p)
	if err != nil {
		return err
	}

	if cfg.Format != "xml" && cfg.Format != "json" && cfg.Format != "text" {
		return fmt.Errorf("invalid format %q: must be 'xml', 'json', or 'text'", cfg.Format)
	}

	logger.Info("reading analysis document", "path", p.inputPath)
	in, err := os.Open(p.inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	result, err := analysis.Parse(in)
	if err != nil {
		return err
	}

	logger.Info("document parsed",
		"classes", len(result.ClassStats),
		"defects", len(result.Defects))

	reportCfg := xdoc.Config{
		Threshold:       cfg.Threshold,
		Effort:          cfg.Effort,
		OutputEncoding:  cfg.Encoding,
		SourceRoots:     cfg.SourceRoots,
		TestSourceRoots: cfg.TestSourceRoots,
		Names:           severity.DefaultTable(),
	}

	if p.interactive {
		rep := xdoc.Build(result, reportCfg, result.Version)
		return runInteractiveReport(rep)
	}

	sink, err := openSink(p.outputPath, p.stdout)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "json":
		rep := xdoc.Build(result, reportCfg, result.Version)
		err = xdoc.WriteJSON(sink, rep, schemaVersion)
	case "text":
		rep := xdoc.Build(result, reportCfg, result.Version)
		err = xdoc.WriteText(sink, rep)
	default:
		// Generate owns the sink and closes it itself.
		if err := xdoc.Generate(result, reportCfg, result.Version, sink); err != nil {
			return err
		}
		logger.Info("report written", "output", sinkName(p.outputPath))
		return nil
	}

	if cerr := sink.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Info("report written", "output", sinkName(p.outputPath))
	return nil
}

// loadConfig reads the config file and layers non-empty flag values
// over it.
func loadConfig(p generateParams) (*config.File, error) {
	path := p.configPath
	if path == "" {
		path = ".defectdoc.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if p.format != "" {
		cfg.Format = p.format
	}
	if p.threshold != "" {
		cfg.Threshold = p.threshold
	}
	if p.effort != "" {
		cfg.Effort = p.effort
	}
	if p.encoding != "" {
		cfg.Encoding = p.encoding
	}
	if len(p.srcDirs) > 0 {
		cfg.SourceRoots = p.srcDirs
	}
	if len(p.testSrcDirs) > 0 {
		cfg.TestSourceRoots = p.testSrcDirs
	}
	return cfg, nil
}

// openSink returns the write-closer the XML report goes to: a file
// when a path is given, otherwise the command's stdout behind a
// non-closing wrapper.
func openSink(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}

func sinkName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

// nopCloser keeps the generate contract (the builder closes its
// sink) without closing the process's stdout.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func newGenerateCmd() *cobra.Command {
	var (
		output      string
		configPath  string
		format      string
		threshold   string
		effort      string
		encoding    string
		srcDirs     []string
		testSrcDirs []string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "generate [analysis.xml]",
		Short: "Generate an xdoc report from an analyzer result document",
		Long: `Generate reads an analyzer XML result document and writes the
xdoc report for it. Classes with no bugs are omitted; defect
priorities are reported by display name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(generateParams{
				inputPath:   args[0],
				outputPath:  output,
				configPath:  configPath,
				format:      format,
				threshold:   threshold,
				effort:      effort,
				encoding:    encoding,
				srcDirs:     srcDirs,
				testSrcDirs: testSrcDirs,
				interactive: interactive,
				stdout:      os.Stdout,
				stderr:      os.Stderr,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"write the report to a file (default: stdout)")
	cmd.Flags().StringVar(&configPath, "config", "",
		"config file (default: .defectdoc.yaml)")
	cmd.Flags().StringVar(&format, "format", "",
		"output format: xml, json, or text")
	cmd.Flags().StringVar(&threshold, "threshold", "",
		"analyzer threshold code (1-5)")
	cmd.Flags().StringVar(&effort, "effort", "",
		"analyzer effort code (min, default, max)")
	cmd.Flags().StringVar(&encoding, "encoding", "",
		"character encoding for the XML output")
	cmd.Flags().StringArrayVar(&srcDirs, "src-dir", nil,
		"compile source root (repeatable)")
	cmd.Flags().StringArrayVar(&testSrcDirs, "test-src-dir", nil,
		"test source root (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing the report")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for defectdoc JSON output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of defectdoc generate --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), xdoc.Schema)
			return err
		},
	}
}
