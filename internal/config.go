package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

type Config struct {
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	BufferSize        int           `env:"BUFFER_SIZE,default=64"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	JournalLimit      int           `env:"JOURNAL_LIMIT,default=50"`
	KeepAliveInterval time.Duration `env:"KEEPALIVE_INTERVAL,default=5s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	PackageName       string        `env:"PACKAGE_NAME,default=im.status.ethereum"`
	LaunchActivity    string        `env:"LAUNCH_ACTIVITY,default=im.status.ethereum.MainActivity"`
	AvatarSize        int           `env:"AVATAR_SIZE,default=128"`
	DebugPort         int           `env:"DEBUG_PORT,default=0"`
	HealthPort        int           `env:"HEALTH_PORT,default=0"`
}

// LoadConfig decodes the process environment.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.BufferSize <= 0 {
		return Config{}, fmt.Errorf("BUFFER_SIZE must be positive, got %d", config.BufferSize)
	}
	if config.KeepAliveInterval <= 0 {
		return Config{}, fmt.Errorf("KEEPALIVE_INTERVAL must be positive, got %s", config.KeepAliveInterval)
	}
	return config, nil
}

// SoundURI points at the raw notification sound bundled with the host package.
func (c Config) SoundURI() string {
	return fmt.Sprintf("android.resource://%s/raw/notification_sound", c.PackageName)
}
