package types

import (
	"errors"
	"fmt"
)

// Config holds the tunables the CLI applies to freshly built entities.
type Config struct {
	Phone  PhoneConfig  `json:"phone" yaml:"phone" mapstructure:"phone"`
	Car    CarConfig    `json:"car" yaml:"car" mapstructure:"car"`
	Coffee CoffeeConfig `json:"coffee" yaml:"coffee" mapstructure:"coffee"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// PhoneConfig sets the PIN new smartphones are provisioned with.
type PhoneConfig struct {
	PIN string `json:"pin" yaml:"pin" mapstructure:"pin"`
}

// CarConfig sets fuel consumption in percentage points per distance unit.
type CarConfig struct {
	FuelPerUnit float64 `json:"fuel_per_unit" yaml:"fuel_per_unit" mapstructure:"fuel_per_unit"`
}

// CoffeeConfig sets the reservoir and bean hopper sizes.
type CoffeeConfig struct {
	WaterCapacityLiters float64 `json:"water_capacity_liters" yaml:"water_capacity_liters" mapstructure:"water_capacity_liters"`
	BeansCapacityGrams  int     `json:"beans_capacity_grams" yaml:"beans_capacity_grams" mapstructure:"beans_capacity_grams"`
}

// LogConfig selects the CLI log level.
type LogConfig struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// Config validation errors.
var (
	ErrInvalidConfig        = errors.New("invalid config")
	ErrFuelRateInvalid      = errors.New("fuel per unit must be a positive finite number")
	ErrWaterCapacityInvalid = errors.New("water capacity must be at least one millilitre")
	ErrBeansCapacityInvalid = errors.New("beans capacity must be positive")
	ErrLogLevelUnknown      = errors.New("unknown log level")
)

// DefaultConfig returns the values used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Phone:  PhoneConfig{PIN: DefaultPIN},
		Car:    CarConfig{FuelPerUnit: DefaultFuelPerUnit},
		Coffee: CoffeeConfig{
			WaterCapacityLiters: float64(DefaultWaterCapacityML) / 1000,
			BeansCapacityGrams:  DefaultBeansCapacityG,
		},
		Log: LogConfig{Level: LogLevelInfo},
	}
}

// Validate checks that the Config is well-formed. Every failure wraps
// ErrInvalidConfig together with the specific sentinel.
func (c Config) Validate() error {
	if !validPIN(c.Phone.PIN) {
		return invalidConfig("phone.pin", ErrInvalidPIN)
	}
	if !positive(c.Car.FuelPerUnit) {
		return invalidConfig("car.fuel_per_unit", ErrFuelRateInvalid)
	}
	if !finite(c.Coffee.WaterCapacityLiters) || litersToML(c.Coffee.WaterCapacityLiters) < 1 {
		return invalidConfig("coffee.water_capacity_liters", ErrWaterCapacityInvalid)
	}
	if c.Coffee.BeansCapacityGrams <= 0 {
		return invalidConfig("coffee.beans_capacity_grams", ErrBeansCapacityInvalid)
	}
	if !knownLogLevels[c.Log.Level] {
		return invalidConfig("log.level", fmt.Errorf("%w: %q", ErrLogLevelUnknown, c.Log.Level))
	}
	return nil
}

func invalidConfig(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
}
