package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Storage drivers.
const (
	DriverBolt   = "bolt"
	DriverYAML   = "yaml"
	DriverMemory = "memory"
)

// StorageConfig selects where course and enrollment snapshots are kept.
// Path is a database file for the bolt driver and a directory for the yaml
// driver; the memory driver keeps nothing across restarts and ignores it.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=bolt yaml memory"`
	Path   string `mapstructure:"path"   validate:"required_unless=Driver memory"`
}
