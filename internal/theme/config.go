package theme

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/spinfold/pkg/errors"
)

// Config is the on-disk theme configuration consumed by the demo's --theme
// flag. A missing scale defaults to 1.0.
type Config struct {
	Scale     float64        `yaml:"scale" validate:"omitempty,gt=0"`
	Overrides map[string]any `yaml:"overrides"`
}

var validate = validator.New()

// LoadFile reads and validates a YAML theme configuration.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML theme configuration bytes.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing theme config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, apperrors.NewInvalidConfiguration("scale", "must be greater than zero", err)
	}

	if cfg.Scale == 0 {
		cfg.Scale = 1.0
	}
	if cfg.Overrides == nil {
		cfg.Overrides = Overrides{}
	}
	return cfg, nil
}
