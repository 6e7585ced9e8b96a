// Package main provides the CLI entry point for gradcheck-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/gradcheck-go/internal/config"
	"github.com/ukaji3/gradcheck-go/internal/logger"
	"github.com/ukaji3/gradcheck-go/internal/server"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/output"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/render"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/rules"
)

var (
	outputPath   string
	pretty       bool
	rowsOnly     bool
	mode         string
	rulesPath    string
	outputFormat string
	exportsDir   string
	formats      string
	logLevel     string
	browserBin   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gradcheck",
		Short: "Extract degree-checklist tables from HTML",
		Long: `gradcheck-go extracts the course checklist table (rows, course attempts,
credit summary) from a degree-checklist HTML page and outputs JSON or reports.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", rules.DefaultPath, "Credit rules file (YAML or JSON); skipped when the default is missing")

	parseCmd := &cobra.Command{
		Use:   "parse [input.html]",
		Short: "Parse a checklist page and print the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	parseCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	parseCmd.Flags().BoolVar(&rowsOnly, "rows-only", false, "Output only the row records (json format)")
	parseCmd.Flags().StringVar(&mode, "mode", "standard", "Extraction mode: light, standard, verbose")
	parseCmd.Flags().StringVar(&outputFormat, "format", "json", "Output format: json, text")
	parseCmd.Flags().StringVar(&exportsDir, "exports-dir", "", "Directory for report files")
	parseCmd.Flags().StringVar(&formats, "formats", "xlsx,docx,csv", "Report formats written to --exports-dir")
	parseCmd.Flags().StringVar(&browserBin, "browser-bin", "", "Browser executable for pdf reports")

	exportCmd := &cobra.Command{
		Use:   "export [input.html] [format]",
		Short: "Render one report file (xlsx, docx, csv, html, pdf)",
		Args:  cobra.ExactArgs(2),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>.<format>)")
	exportCmd.Flags().StringVar(&browserBin, "browser-bin", "", "Browser executable for pdf reports")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API (configured by GRADCHECK_* variables)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	rootCmd.AddCommand(parseCmd, exportCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	extractMode, ok := gradcheck.ParseMode(mode)
	if !ok {
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
	}
	if outputFormat != "json" && outputFormat != "text" {
		return fmt.Errorf("invalid format: %s (must be json or text)", outputFormat)
	}

	opts, err := cliOptions(cmd, extractMode)
	if err != nil {
		return err
	}

	result, err := gradcheck.ParseFile(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	var data []byte
	if outputFormat == "text" {
		data = []byte(render.Text(result))
	} else if rowsOnly {
		data, err = output.RowsToJSON(result.Data, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	} else {
		data, err = output.ToJSON(result, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if exportsDir == "" {
		fmt.Println(string(data))
	}

	if exportsDir != "" {
		if err := writeExportFiles(cmd.Context(), result, inputPath, exportsDir); err != nil {
			return fmt.Errorf("failed to write report files: %w", err)
		}
	}

	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	format, err := render.ParseFormat(args[1])
	if err != nil {
		return err
	}

	opts, err := cliOptions(cmd, gradcheck.ModeStandard)
	if err != nil {
		return err
	}
	result, err := gradcheck.ParseFile(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	data, err := exporter().Render(cmd.Context(), format, result)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	target := outputPath
	if target == "" {
		target = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + format.Extension()
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), target)
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Log.Level),
		Pretty: cfg.Log.Format == "console",
	})

	path, explicit := cfg.Rules.Path, false
	if cmd.Flags().Changed("rules") {
		path, explicit = rulesPath, true
	}
	ruleCfg, err := loadRules(path, explicit)
	if err != nil {
		return err
	}
	if ruleCfg != nil {
		log.Info().Str("path", path).Msg("rules loaded")
	} else if path != "" {
		log.Warn().Str("path", path).Msg("rules file not found, serving without rules")
	}

	srv := server.New(server.Options{
		MaxUploadBytes: cfg.Server.MaxUploadBytes(),
		Rules:          ruleCfg,
		Exporter: render.Exporter{PDF: render.PDFOptions{
			ControlURL: cfg.PDF.ControlURL,
			BrowserBin: cfg.PDF.BrowserBin,
			NoSandbox:  cfg.PDF.NoSandbox,
			Timeout:    cfg.PDF.Timeout,
		}},
		Logger: log,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, cfg.Server)
}

// cliOptions builds extraction options from the persistent flags.
func cliOptions(cmd *cobra.Command, m gradcheck.Mode) (gradcheck.Options, error) {
	opts := gradcheck.DefaultOptions()
	opts.Mode = m
	opts.Logger = logger.Configure(logger.Config{
		Level:  logger.LogLevel(logLevel),
		Pretty: true,
	})
	cfg, err := loadRules(rulesPath, cmd.Flags().Changed("rules"))
	if err != nil {
		return opts, err
	}
	if cfg == nil {
		opts.Logger.Debug().Str("path", rulesPath).Msg("no rules file, parsing without rules")
	}
	opts.Rules = cfg
	return opts, nil
}

// loadRules reads the rules file. A path given explicitly must exist; the
// default one may be missing.
func loadRules(path string, explicit bool) (*rules.Config, error) {
	if path == "" {
		return nil, nil
	}
	if explicit {
		return rules.Load(path)
	}
	return rules.LoadIfExists(path)
}

func exporter() render.Exporter {
	return render.Exporter{PDF: render.PDFOptions{
		BrowserBin: browserBin,
		NoSandbox:  true,
		Timeout:    time.Minute,
	}}
}

func writeExportFiles(ctx context.Context, result *models.Checklist, inputPath, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	ex := exporter()
	for _, name := range strings.Split(formats, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		format, err := render.ParseFormat(name)
		if err != nil {
			return err
		}
		data, err := ex.Render(ctx, format, result)
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}

		filename := filepath.Join(dir, base+format.Extension())
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}

	return nil
}
