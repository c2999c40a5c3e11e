package dispatch

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config configures a JSONRPCDispatcher.
type Config struct {
	Endpoint string `mapstructure:"endpoint"`
	Method   string `mapstructure:"method"`

	// MaxAttempts includes the initial attempt.
	MaxAttempts uint          `mapstructure:"max_attempts"`
	BaseBackoff time.Duration `mapstructure:"base_backoff"`
	MaxBackoff  time.Duration `mapstructure:"max_backoff"`
}

var defaultConfig = Config{
	Method: DefaultMethod,

	MaxAttempts: 3,
	BaseBackoff: time.Second,
	MaxBackoff:  10 * time.Second,
}

// DefaultConfig returns the default configuration. The endpoint is left
// unset.
func DefaultConfig() Config {
	return defaultConfig
}

// LoadConfig reads the dispatcher configuration from v, falling back to
// environment variables and then to DefaultConfig.
func LoadConfig(v *viper.Viper) (Config, error) {
	_ = v.BindEnv("endpoint", "ABSACC_RPC_ENDPOINT")
	_ = v.BindEnv("method", "ABSACC_RPC_METHOD")
	_ = v.BindEnv("max_attempts", "ABSACC_RPC_MAX_ATTEMPTS")
	_ = v.BindEnv("base_backoff", "ABSACC_RPC_BASE_BACKOFF")
	_ = v.BindEnv("max_backoff", "ABSACC_RPC_MAX_BACKOFF")

	config := defaultConfig
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate returns an error if the config cannot be used to build a
// dispatcher.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint must be set")
	}
	if c.Method == "" {
		return errors.New("method must be set")
	}
	if c.MaxAttempts == 0 {
		return errors.New("max_attempts must be positive")
	}
	if c.BaseBackoff < 0 || c.MaxBackoff < 0 {
		return errors.New("backoff must not be negative")
	}
	if c.MaxBackoff < c.BaseBackoff {
		return errors.Errorf("max_backoff (%v) must not be less than base_backoff (%v)", c.MaxBackoff, c.BaseBackoff)
	}

	return nil
}
