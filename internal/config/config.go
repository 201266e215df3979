// Package config defines the application configuration structures and loads
// them from YAML via viper.
package config

import (
	"fmt"

	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finance-planner.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	Report  ReportConfig  `yaml:"report,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds HTTP API configuration options
type ServerConfig struct {
	Address            string `yaml:"address,omitempty"`
	MaxUploadSizeBytes int64  `yaml:"maxUploadSizeBytes,omitempty"`
}

// ReportConfig tunes the projection horizons and debt sensitivity sweep.
type ReportConfig struct {
	ShortTermMonths int       `yaml:"shortTermMonths,omitempty"`
	LongTermMonths  int       `yaml:"longTermMonths,omitempty"`
	InflationRate   float64   `yaml:"inflationRate,omitempty"`
	ExtraPayments   []float64 `yaml:"extraPayments,omitempty"`
}

// Default returns the configuration used when no config file is present.
func Default() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			Address:            constants.DefaultServerAddress,
			MaxUploadSizeBytes: constants.DefaultMaxUploadSizeBytes,
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if configuration.Server.Address == "" {
		configuration.Server.Address = constants.DefaultServerAddress
	}
	if configuration.Server.MaxUploadSizeBytes <= 0 {
		configuration.Server.MaxUploadSizeBytes = constants.DefaultMaxUploadSizeBytes
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	if c.Report.ShortTermMonths < 0 {
		warnings = append(warnings, "report.shortTermMonths is negative; using the default horizon")
	}
	if c.Report.LongTermMonths < 0 {
		warnings = append(warnings, "report.longTermMonths is negative; using the default horizon")
	}
	if c.Report.InflationRate < 0 {
		warnings = append(warnings, "report.inflationRate is negative; deflation will inflate real values")
	}
	for _, extra := range c.Report.ExtraPayments {
		if extra < 0 {
			warnings = append(warnings, fmt.Sprintf("report.extraPayments contains negative amount %.2f", extra))
		}
	}
	return warnings
}
