package types

import (
	"fmt"
	"math"
	"strings"
)

// CupSize names a brew size.
type CupSize string

// Supported cup sizes.
const (
	CupSmall  CupSize = "small"
	CupMedium CupSize = "medium"
	CupLarge  CupSize = "large"
)

// Default reservoir and hopper capacities.
const (
	DefaultWaterCapacityML = 2000
	DefaultBeansCapacityG  = 500
)

// MaxWaterLiters caps every water volume before it is converted to
// millilitres.
const MaxWaterLiters = 1e6

// Requirement is what one cup consumes.
type Requirement struct {
	WaterML int `json:"water_ml" yaml:"water_ml"`
	BeansG  int `json:"beans_g" yaml:"beans_g"`
}

var cupRequirements = map[CupSize]Requirement{
	CupSmall:  {WaterML: 120, BeansG: 8},
	CupMedium: {WaterML: 180, BeansG: 12},
	CupLarge:  {WaterML: 240, BeansG: 16},
}

// CupSizes lists the supported sizes from smallest to largest.
func CupSizes() []CupSize {
	return []CupSize{CupSmall, CupMedium, CupLarge}
}

// ParseCupSize maps a case-insensitive name to a CupSize.
// Returns ErrInvalidCupSize for unknown names.
func ParseCupSize(s string) (CupSize, error) {
	size := CupSize(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := cupRequirements[size]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCupSize, s)
	}
	return size, nil
}

// Requirement returns the water and beans one cup of size s needs.
func (s CupSize) Requirement() (Requirement, bool) {
	r, ok := cupRequirements[s]
	return r, ok
}

// Fill reports the result of topping up a resource, in millilitres for water
// and grams for beans. Overflow is what did not fit.
type Fill struct {
	Added    int `json:"added" yaml:"added"`
	Overflow int `json:"overflow" yaml:"overflow"`
}

// CoffeeMaker brews cups from a water reservoir and a bean hopper. Water is
// tracked in whole millilitres; WaterLiters converts for display.
type CoffeeMaker struct {
	Brand           string  `json:"brand" yaml:"brand"`
	WaterML         int     `json:"water_ml" yaml:"water_ml"`
	BeansG          int     `json:"beans_g" yaml:"beans_g"`
	CupSize         CupSize `json:"cup_size" yaml:"cup_size"`
	On              bool    `json:"on" yaml:"on"`
	WaterCapacityML int     `json:"water_capacity_ml" yaml:"water_capacity_ml"`
	BeansCapacityG  int     `json:"beans_capacity_g" yaml:"beans_capacity_g"`
}

// CoffeeStatus is a point-in-time view of a CoffeeMaker.
type CoffeeStatus struct {
	Brand       string  `json:"brand" yaml:"brand"`
	On          bool    `json:"on" yaml:"on"`
	WaterLiters float64 `json:"water_liters" yaml:"water_liters"`
	BeansG      int     `json:"beans_g" yaml:"beans_g"`
	CupSize     CupSize `json:"cup_size" yaml:"cup_size"`
	CanBrew     bool    `json:"can_brew" yaml:"can_brew"`
}

// NewCoffeeMaker returns a switched-off machine with default capacities.
// Water and beans are clamped into 0..capacity and an unknown cup size falls
// back to CupMedium.
func NewCoffeeMaker(brand string, waterLiters float64, beans int, cup CupSize) *CoffeeMaker {
	if _, ok := cupRequirements[cup]; !ok {
		cup = CupMedium
	}
	return &CoffeeMaker{
		Brand:           brand,
		WaterML:         clampInt(litersToML(waterLiters), 0, DefaultWaterCapacityML),
		BeansG:          clampInt(beans, 0, DefaultBeansCapacityG),
		CupSize:         cup,
		WaterCapacityML: DefaultWaterCapacityML,
		BeansCapacityG:  DefaultBeansCapacityG,
	}
}

// SetCapacity resizes the reservoir and hopper, spilling anything above the
// new limits.
// Returns ErrInvalidAmount if the water capacity is not finite or below one
// millilitre, or if beans is not positive.
func (m *CoffeeMaker) SetCapacity(waterLiters float64, beans int) error {
	waterML := litersToML(waterLiters)
	if !finite(waterLiters) || waterML <= 0 || beans <= 0 {
		return fmt.Errorf("capacity %.2fL/%dg: %w", waterLiters, beans, ErrInvalidAmount)
	}
	m.WaterCapacityML = waterML
	m.BeansCapacityG = beans
	m.WaterML = min(m.WaterML, waterML)
	m.BeansG = min(m.BeansG, beans)
	return nil
}

// TurnOn powers the machine. It reports false if it was already on.
func (m *CoffeeMaker) TurnOn() bool {
	if m.On {
		return false
	}
	m.On = true
	return true
}

// TurnOff powers the machine down. It reports false if it was already off.
func (m *CoffeeMaker) TurnOff() bool {
	if !m.On {
		return false
	}
	m.On = false
	return true
}

// Brew makes one cup of the selected size and returns what it consumed.
// Returns ErrPoweredOff, ErrInvalidCupSize, ErrInsufficientWater or
// ErrInsufficientBeans without consuming anything.
func (m *CoffeeMaker) Brew() (Requirement, error) {
	if !m.On {
		return Requirement{}, ErrPoweredOff
	}
	need, ok := m.CupSize.Requirement()
	if !ok {
		return Requirement{}, fmt.Errorf("%w: %q", ErrInvalidCupSize, m.CupSize)
	}
	if m.WaterML < need.WaterML {
		return Requirement{}, fmt.Errorf("%w: need %.2fL, have %.2fL",
			ErrInsufficientWater, mlToLiters(need.WaterML), m.WaterLiters())
	}
	if m.BeansG < need.BeansG {
		return Requirement{}, fmt.Errorf("%w: need %dg, have %dg", ErrInsufficientBeans, need.BeansG, m.BeansG)
	}
	m.WaterML -= need.WaterML
	m.BeansG -= need.BeansG
	return need, nil
}

// CanBrew reports whether Brew would succeed right now.
func (m *CoffeeMaker) CanBrew() bool {
	need, ok := m.CupSize.Requirement()
	if !m.On || !ok {
		return false
	}
	return m.WaterML >= need.WaterML && m.BeansG >= need.BeansG
}

// RefillWater pours liters into the reservoir, stopping at capacity.
// Returns ErrInvalidAmount if liters is not finite or below one millilitre.
// Volumes above MaxWaterLiters count as MaxWaterLiters.
func (m *CoffeeMaker) RefillWater(liters float64) (Fill, error) {
	ml := litersToML(liters)
	if !finite(liters) || ml <= 0 {
		return Fill{}, fmt.Errorf("water %.3fL: %w", liters, ErrInvalidAmount)
	}
	fill := topUp(&m.WaterML, ml, m.WaterCapacityML)
	return fill, nil
}

// AddBeans pours grams into the hopper, stopping at capacity.
// Returns ErrInvalidAmount if grams is not positive.
func (m *CoffeeMaker) AddBeans(grams int) (Fill, error) {
	if grams <= 0 {
		return Fill{}, fmt.Errorf("beans %dg: %w", grams, ErrInvalidAmount)
	}
	return topUp(&m.BeansG, grams, m.BeansCapacityG), nil
}

// SetCupSize selects the brew size by name.
// Returns ErrInvalidCupSize for unknown names.
func (m *CoffeeMaker) SetCupSize(size string) error {
	cup, err := ParseCupSize(size)
	if err != nil {
		return err
	}
	m.CupSize = cup
	return nil
}

// WaterLiters returns the reservoir level in liters.
func (m *CoffeeMaker) WaterLiters() float64 {
	return mlToLiters(m.WaterML)
}

// Status returns a snapshot of the machine.
func (m *CoffeeMaker) Status() CoffeeStatus {
	return CoffeeStatus{
		Brand:       m.Brand,
		On:          m.On,
		WaterLiters: m.WaterLiters(),
		BeansG:      m.BeansG,
		CupSize:     m.CupSize,
		CanBrew:     m.CanBrew(),
	}
}

func (m *CoffeeMaker) String() string {
	power := "OFF"
	if m.On {
		power = "ON"
	}
	ready := "Not Ready"
	if m.CanBrew() {
		ready = "Ready"
	}
	return fmt.Sprintf("%s Coffee Maker - %s - Water: %.2fL - Beans: %dg - Cup: %s - %s",
		m.Brand, power, m.WaterLiters(), m.BeansG, m.CupSize, ready)
}

// GoString renders the constructor call that rebuilds m.
func (m *CoffeeMaker) GoString() string {
	return fmt.Sprintf("CoffeeMaker(%q, %g, %d, %q)", m.Brand, m.WaterLiters(), m.BeansG, string(m.CupSize))
}

// topUp adds amount to *level without passing capacity.
func topUp(level *int, amount, capacity int) Fill {
	room := max(capacity-*level, 0)
	added := min(amount, room)
	*level += added
	return Fill{Added: added, Overflow: amount - added}
}

// litersToML converts to whole millilitres. NaN and negative volumes give 0
// and volumes above MaxWaterLiters are capped so the conversion cannot
// overflow.
func litersToML(liters float64) int {
	return int(math.Round(clampFloat(liters, 0, MaxWaterLiters) * 1000))
}

func mlToLiters(ml int) float64 {
	return float64(ml) / 1000
}
