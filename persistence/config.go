package persistence

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the engine's file configuration.
type Config struct {
	Storage StorageSettings `hcl:"storage,block"`
	Table   TableSettings   `hcl:"table,block"`
}

// StorageSettings tells the stores where to put things.
type StorageSettings struct {
	CSVPath string `hcl:"csv_path,optional"`
}

// TableSettings holds the defaults applied when a create-game command
// leaves them out.
type TableSettings struct {
	SmallBlind    int64 `hcl:"small_blind,optional"`
	StartingStack int64 `hcl:"starting_stack,optional"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageSettings{
			CSVPath: "hands.csv",
		},
		Table: TableSettings{
			SmallBlind:    1,
			StartingStack: 1000,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// the defaults; a malformed one is an error.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Storage.CSVPath == "" {
		config.Storage.CSVPath = "hands.csv"
	}
	if config.Table.SmallBlind == 0 {
		config.Table.SmallBlind = 1
	}
	if config.Table.StartingStack == 0 {
		config.Table.StartingStack = 1000
	}
	return &config, nil
}
