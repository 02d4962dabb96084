package types

import (
	"fmt"
	"math"
)

// Fuel bounds in percent of tank.
const (
	MinFuel = 0.0
	MaxFuel = 100.0
)

// DefaultFuelPerUnit is the fuel, in percentage points, burned per distance
// unit.
const DefaultFuelPerUnit = 1.0

// Car burns fuel while driving. FuelLevel stays within MinFuel..MaxFuel.
type Car struct {
	Make        string  `json:"make" yaml:"make"`
	Model       string  `json:"model" yaml:"model"`
	Year        int     `json:"year" yaml:"year"`
	Color       string  `json:"color" yaml:"color"`
	FuelLevel   float64 `json:"fuel_level" yaml:"fuel_level"`
	FuelPerUnit float64 `json:"fuel_per_unit" yaml:"fuel_per_unit"`
	EngineOn    bool    `json:"engine_on" yaml:"engine_on"`
}

// Trip describes the outcome of Drive. When RanOut is set the car covered
// only Driven of the Requested distance and the engine stopped.
type Trip struct {
	Requested float64 `json:"requested" yaml:"requested"`
	Driven    float64 `json:"driven" yaml:"driven"`
	FuelUsed  float64 `json:"fuel_used" yaml:"fuel_used"`
	RanOut    bool    `json:"ran_out" yaml:"ran_out"`
}

// NewCar returns a car with a full tank and the engine off.
func NewCar(manufacturer, model string, year int, color string) *Car {
	return &Car{
		Make:        manufacturer,
		Model:       model,
		Year:        year,
		Color:       color,
		FuelLevel:   MaxFuel,
		FuelPerUnit: DefaultFuelPerUnit,
	}
}

// WithFuel sets the fuel level, clamped to MinFuel..MaxFuel, and returns c.
// NaN counts as an empty tank.
func (c *Car) WithFuel(level float64) *Car {
	c.FuelLevel = clampFloat(level, MinFuel, MaxFuel)
	return c
}

// SetFuelRate changes fuel consumption per distance unit.
// Returns ErrInvalidRate if rate is not a positive finite number.
func (c *Car) SetFuelRate(rate float64) error {
	if !positive(rate) {
		return fmt.Errorf("fuel rate %.2f: %w", rate, ErrInvalidRate)
	}
	c.FuelPerUnit = rate
	return nil
}

// StartEngine turns the engine on. Starting a running engine is a no-op.
// Returns ErrNoFuel if the tank is empty.
func (c *Car) StartEngine() error {
	if c.FuelLevel <= MinFuel {
		return ErrNoFuel
	}
	c.EngineOn = true
	return nil
}

// StopEngine turns the engine off. It reports false if it was already off.
func (c *Car) StopEngine() bool {
	if !c.EngineOn {
		return false
	}
	c.EngineOn = false
	return true
}

// Drive covers distance units, burning FuelPerUnit per unit. If the tank
// cannot cover the whole distance the car drives as far as the fuel allows,
// the tank ends empty and the engine stops.
// Returns ErrEngineOff if the engine is not running and ErrInvalidDistance if
// distance is not a positive finite number.
func (c *Car) Drive(distance float64) (Trip, error) {
	if !c.EngineOn {
		return Trip{}, ErrEngineOff
	}
	if !positive(distance) {
		return Trip{}, fmt.Errorf("distance %.1f: %w", distance, ErrInvalidDistance)
	}
	trip := Trip{Requested: distance}
	needed := distance * c.FuelPerUnit
	if c.FuelLevel < needed {
		trip.Driven = c.FuelLevel / c.FuelPerUnit
		trip.FuelUsed = c.FuelLevel
		trip.RanOut = true
		c.FuelLevel = MinFuel
		c.EngineOn = false
		return trip, nil
	}
	c.FuelLevel -= needed
	trip.Driven = distance
	trip.FuelUsed = needed
	return trip, nil
}

// Refuel adds amount percentage points of fuel, stopping at MaxFuel, and
// returns how much actually went into the tank.
// Returns ErrInvalidAmount if amount is not a positive finite number.
func (c *Car) Refuel(amount float64) (float64, error) {
	if !positive(amount) {
		return 0, fmt.Errorf("fuel amount %.1f: %w", amount, ErrInvalidAmount)
	}
	before := c.FuelLevel
	c.FuelLevel = clampFloat(c.FuelLevel+amount, MinFuel, MaxFuel)
	return c.FuelLevel - before, nil
}

// Details returns year, make, model and color.
func (c *Car) Details() string {
	return fmt.Sprintf("%d %s %s (%s)", c.Year, c.Make, c.Model, c.Color)
}

func (c *Car) String() string {
	engine := "Off"
	if c.EngineOn {
		engine = "On"
	}
	return fmt.Sprintf("%s\nFuel Level: %.1f%%\nEngine: %s", c.Details(), c.FuelLevel, engine)
}

// clampFloat bounds v to lo..hi. NaN maps to lo.
func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return max(lo, min(hi, v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
