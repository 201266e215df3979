package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/iwvelando/finance-planner/internal/config"
	"github.com/iwvelando/finance-planner/internal/plan"
	"github.com/iwvelando/finance-planner/internal/report"
	"github.com/iwvelando/finance-planner/internal/server"
	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	planLocation := flag.String("plan", constants.DefaultPlanFile, "path to plan snapshot file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "serve the planning API over HTTP instead of printing a report")
	flag.Parse()

	// The config file is optional; defaults apply when the default location
	// does not exist and no explicit path was given.
	conf := config.Default()
	if _, err := os.Stat(*configLocation); err == nil || *configLocation != constants.DefaultConfigFile {
		loaded, err := config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
		conf = loaded
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	store := plan.NewStore(logger)

	if *serve {
		handler := server.NewHandler(logger, store, conf, version)
		logger.Info("serving planning API",
			zap.String("op", "main"),
			zap.String("address", conf.Server.Address),
		)
		if err := http.ListenAndServe(conf.Server.Address, handler); err != nil {
			logger.Fatal("server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	data, err := plan.Load(*planLocation)
	if err != nil {
		logger.Fatal("failed to load plan snapshot",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	store.Replace(data)

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	builder := report.NewBuilder(logger)
	rep := builder.Build(store.Snapshot(), report.Options{
		ShortTermMonths: conf.Report.ShortTermMonths,
		LongTermMonths:  conf.Report.LongTermMonths,
		InflationRate:   conf.Report.InflationRate,
		ExtraAmounts:    conf.Report.ExtraPayments,
	})

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(rep)
	case constants.OutputFormatCSV:
		output.CsvFormat(rep)
	default:
		logger.Fatal(fmt.Sprintf("invalid output format %s", outputFormat),
			zap.String("op", "main"),
		)
	}
}
