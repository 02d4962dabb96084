package types

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeurig(t *testing.T) *CoffeeMaker {
	t.Helper()
	m := NewCoffeeMaker("Keurig", 1.5, 150, CupMedium)
	require.True(t, m.TurnOn())
	return m
}

func TestParseCupSize(t *testing.T) {
	tests := []struct {
		input   string
		want    CupSize
		wantErr error
	}{
		{input: "small", want: CupSmall},
		{input: "Medium", want: CupMedium},
		{input: " LARGE ", want: CupLarge},
		{input: "huge", wantErr: ErrInvalidCupSize},
		{input: "", wantErr: ErrInvalidCupSize},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCupSize(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCupSizeRequirements(t *testing.T) {
	want := map[CupSize]Requirement{
		CupSmall:  {WaterML: 120, BeansG: 8},
		CupMedium: {WaterML: 180, BeansG: 12},
		CupLarge:  {WaterML: 240, BeansG: 16},
	}
	for _, size := range CupSizes() {
		got, ok := size.Requirement()
		assert.True(t, ok)
		assert.Equal(t, want[size], got, "size %s", size)
	}
	_, ok := CupSize("huge").Requirement()
	assert.False(t, ok)
}

func TestNewCoffeeMakerClamps(t *testing.T) {
	tests := []struct {
		name      string
		water     float64
		beans     int
		cup       CupSize
		wantWater int
		wantBeans int
		wantCup   CupSize
	}{
		{name: "in range", water: 1.5, beans: 150, cup: CupLarge, wantWater: 1500, wantBeans: 150, wantCup: CupLarge},
		{name: "negatives become zero", water: -1, beans: -5, cup: CupSmall, wantWater: 0, wantBeans: 0, wantCup: CupSmall},
		{name: "overfull clamps to capacity", water: 3, beans: 900, cup: CupMedium, wantWater: 2000, wantBeans: 500, wantCup: CupMedium},
		{name: "unknown cup falls back to medium", water: 1, beans: 100, cup: "huge", wantWater: 1000, wantBeans: 100, wantCup: CupMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCoffeeMaker("Keurig", tt.water, tt.beans, tt.cup)
			assert.Equal(t, tt.wantWater, m.WaterML)
			assert.Equal(t, tt.wantBeans, m.BeansG)
			assert.Equal(t, tt.wantCup, m.CupSize)
			assert.False(t, m.On, "coffee makers start off")
		})
	}
}

func TestCoffeeMakerPowerToggle(t *testing.T) {
	m := NewCoffeeMaker("Keurig", 1, 100, CupMedium)

	assert.True(t, m.TurnOn())
	assert.False(t, m.TurnOn(), "second turn on reports no change")
	assert.Contains(t, m.String(), " - ON - ")

	assert.True(t, m.TurnOff())
	assert.False(t, m.TurnOff(), "second turn off reports no change")
	assert.Contains(t, m.String(), " - OFF - ")
}

func TestCoffeeMakerBrewMedium(t *testing.T) {
	m := newKeurig(t)

	used, err := m.Brew()
	require.NoError(t, err)
	assert.Equal(t, Requirement{WaterML: 180, BeansG: 12}, used)
	assert.Equal(t, 1.32, m.WaterLiters())
	assert.Equal(t, 138, m.BeansG)
}

func TestCoffeeMakerBrewRejections(t *testing.T) {
	tests := []struct {
		name    string
		water   float64
		beans   int
		on      bool
		wantErr error
		wantMsg string
	}{
		{name: "powered off", water: 1.5, beans: 150, wantErr: ErrPoweredOff},
		{name: "not enough water", water: 0.1, beans: 150, on: true, wantErr: ErrInsufficientWater, wantMsg: "need 0.18L, have 0.10L"},
		{name: "not enough beans", water: 1.5, beans: 5, on: true, wantErr: ErrInsufficientBeans, wantMsg: "need 12g, have 5g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCoffeeMaker("Keurig", tt.water, tt.beans, CupMedium)
			m.On = tt.on
			waterBefore, beansBefore := m.WaterML, m.BeansG

			_, err := m.Brew()

			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Equal(t, waterBefore, m.WaterML, "water must not change on rejection")
			assert.Equal(t, beansBefore, m.BeansG, "beans must not change on rejection")
			assert.False(t, m.CanBrew())
		})
	}
}

func TestCoffeeMakerRefillWater(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		liters    float64
		wantErr   error
		wantFill  Fill
		wantWater int
	}{
		{name: "fits", start: 1.08, liters: 0.5, wantFill: Fill{Added: 500}, wantWater: 1580},
		{name: "overflows", start: 1.58, liters: 1.0, wantFill: Fill{Added: 420, Overflow: 580}, wantWater: 2000},
		{name: "zero rejected", start: 1.0, liters: 0, wantErr: ErrInvalidAmount, wantWater: 1000},
		{name: "negative rejected", start: 1.0, liters: -0.5, wantErr: ErrInvalidAmount, wantWater: 1000},
		{name: "NaN rejected", start: 1.0, liters: math.NaN(), wantErr: ErrInvalidAmount, wantWater: 1000},
		{name: "infinity rejected", start: 1.0, liters: math.Inf(1), wantErr: ErrInvalidAmount, wantWater: 1000},
		{name: "huge volume overflows to capacity", start: 1.0, liters: 1e19, wantFill: Fill{Added: 1000, Overflow: MaxWaterLiters*1000 - 1000}, wantWater: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCoffeeMaker("Keurig", tt.start, 100, CupMedium)

			fill, err := m.RefillWater(tt.liters)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantFill, fill)
			}
			assert.Equal(t, tt.wantWater, m.WaterML)
			assert.LessOrEqual(t, m.WaterML, m.WaterCapacityML)
		})
	}
}

func TestCoffeeMakerAddBeans(t *testing.T) {
	m := NewCoffeeMaker("Keurig", 1, 138, CupMedium)

	fill, err := m.AddBeans(100)
	require.NoError(t, err)
	assert.Equal(t, Fill{Added: 100}, fill)
	assert.Equal(t, 238, m.BeansG)

	fill, err = m.AddBeans(300)
	require.NoError(t, err)
	assert.Equal(t, Fill{Added: 262, Overflow: 38}, fill)
	assert.Equal(t, DefaultBeansCapacityG, m.BeansG)

	_, err = m.AddBeans(0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, DefaultBeansCapacityG, m.BeansG)
}

func TestCoffeeMakerSetCupSize(t *testing.T) {
	m := newKeurig(t)

	require.NoError(t, m.SetCupSize("large"))
	assert.Equal(t, CupLarge, m.CupSize)

	assert.ErrorIs(t, m.SetCupSize("venti"), ErrInvalidCupSize)
	assert.Equal(t, CupLarge, m.CupSize, "cup size unchanged on rejection")
}

func TestCoffeeMakerSetCapacity(t *testing.T) {
	m := NewCoffeeMaker("Keurig", 1.5, 150, CupMedium)

	require.NoError(t, m.SetCapacity(1.0, 100))
	assert.Equal(t, 1000, m.WaterML, "water spills down to the new capacity")
	assert.Equal(t, 100, m.BeansG)

	assert.ErrorIs(t, m.SetCapacity(0, 100), ErrInvalidAmount)
	assert.ErrorIs(t, m.SetCapacity(1, 0), ErrInvalidAmount)
	assert.ErrorIs(t, m.SetCapacity(0.0004, 100), ErrInvalidAmount)
	assert.ErrorIs(t, m.SetCapacity(math.NaN(), 100), ErrInvalidAmount)
	assert.ErrorIs(t, m.SetCapacity(math.Inf(1), 100), ErrInvalidAmount)
	assert.Equal(t, 1000, m.WaterCapacityML)
}

func TestCoffeeMakerBrewUntilEmpty(t *testing.T) {
	m := NewCoffeeMaker("Keurig", 0.5, 500, CupLarge)
	require.True(t, m.TurnOn())

	cups := 0
	for m.CanBrew() {
		_, err := m.Brew()
		require.NoError(t, err)
		cups++
	}
	assert.Equal(t, 2, cups)
	assert.Equal(t, 20, m.WaterML)
	assert.GreaterOrEqual(t, m.WaterML, 0)
}

func TestCoffeeMakerStatusAndFormatting(t *testing.T) {
	m := newKeurig(t)

	assert.Equal(t, CoffeeStatus{
		Brand:       "Keurig",
		On:          true,
		WaterLiters: 1.5,
		BeansG:      150,
		CupSize:     CupMedium,
		CanBrew:     true,
	}, m.Status())
	assert.Equal(t, "Keurig Coffee Maker - ON - Water: 1.50L - Beans: 150g - Cup: medium - Ready", m.String())
	assert.Equal(t, `CoffeeMaker("Keurig", 1.5, 150, "medium")`, fmt.Sprintf("%#v", m))
}
