package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// DatabaseConfig points at one database description file
type DatabaseConfig struct {
	Path      string `yaml:"path"`
	ShortName string `yaml:"short_name"`
}

// WriterConfig contains ODX writer options
type WriterConfig struct {
	ModelVersion string `yaml:"modelVersion"`
}

// NamedDatabase represents a single named database configuration
type NamedDatabase struct {
	Name     string         `yaml:"name" validate:"required"`
	Database DatabaseConfig `yaml:"database" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server    ServerConfig    `yaml:"server" validate:"required"`
	Database  DatabaseConfig  `yaml:"database"`
	Writer    WriterConfig    `yaml:"writer"`
	Databases []NamedDatabase `yaml:"databases"`
}
