package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// StorageConfig contains settings for the persisted roster document.
type StorageConfig struct {
	DocumentPath string `mapstructure:"document_path" validate:"required"`
}

// ReportConfig contains spreadsheet export settings.
type ReportConfig struct {
	DefaultPath string `mapstructure:"default_path" validate:"required"`
	// Spreadsheet applications cap sheet names at 31 characters and reserve :\/?*[].
	SheetName       string `mapstructure:"sheet_name" validate:"required,max=31,excludesall=:\\/?*[]"`
	TimestampLayout string `mapstructure:"timestamp_layout" validate:"required"`
}
