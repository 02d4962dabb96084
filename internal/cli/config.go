package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/tinker/internal/paths"
	"github.com/mesh-intelligence/tinker/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "TINKER"

	cfgKeyPhonePIN      = "phone.pin"
	cfgKeyFuelPerUnit   = "car.fuel_per_unit"
	cfgKeyWaterCapacity = "coffee.water_capacity_liters"
	cfgKeyBeansCapacity = "coffee.beans_capacity_grams"
	cfgKeyLogLevel      = "log.level"
)

const defaultConfigHeader = `# tinker configuration
# Every key can be overridden with a TINKER_ environment variable,
# e.g. TINKER_PHONE_PIN=4321 or TINKER_LOG_LEVEL=debug.

`

// loadConfig reads config.yaml from configDir with Viper, layered over the
// built-in defaults and TINKER_* environment variables. A missing file is not
// an error. It returns the validated config and the file actually read, if any.
func loadConfig(configDir string) (types.Config, string, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyPhonePIN, def.Phone.PIN)
	v.SetDefault(cfgKeyFuelPerUnit, def.Car.FuelPerUnit)
	v.SetDefault(cfgKeyWaterCapacity, def.Coffee.WaterCapacityLiters)
	v.SetDefault(cfgKeyBeansCapacity, def.Coffee.BeansCapacityGrams)
	v.SetDefault(cfgKeyLogLevel, def.Log.Level)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, "", fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, "", fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, "", err
	}
	return cfg, v.ConfigFileUsed(), nil
}

// writeDefaultConfig creates path with the default configuration. It reports
// false without touching the file if it already exists.
func writeDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(defaultConfigHeader), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.out.mode == outputText {
				// Text mode shows the config as YAML, the format of the file.
				return a.out.encodeYAML(a.cfg)
			}
			return a.out.result(a.cfg)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(a.configDir, 0o755); err != nil {
				return fmt.Errorf("%w: create config directory: %w", errSystem, err)
			}
			path := paths.ConfigFile(a.configDir)
			created, err := writeDefaultConfig(path)
			if err != nil {
				return fmt.Errorf("%w: write config: %w", errSystem, err)
			}
			if created {
				a.log.Infow("config written", "file", path)
				a.out.line("Wrote %s", path)
			} else {
				a.out.line("%s already exists", path)
			}
			return nil
		},
	})

	return cmd
}
