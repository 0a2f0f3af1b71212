package config

// Level maps directly onto log/slog levels.
type Logger struct {
	Level int `env:"LEVEL,expand" envDefault:"0"`
}
