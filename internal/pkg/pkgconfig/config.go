package pkgconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the read surface modules depend on. Keys use dot notation
// ("modules.flight-search.enabled") and may be overridden by environment
// variables with dots and dashes replaced by underscores.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetFloat64(key string) float64
	Close() error
}

type viperConfig struct {
	v *viper.Viper
}

func NewViper(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &viperConfig{v: v}, nil
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

func (c *viperConfig) Close() error {
	return nil
}
