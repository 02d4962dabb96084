package types

import "fmt"

// Battery bounds in percent.
const (
	MinBattery = 0
	MaxBattery = 100
)

// DefaultPIN is the PIN a new smartphone is provisioned with.
const DefaultPIN = "1234"

// PIN length bounds accepted by ChangePIN and Config.Validate.
const (
	minPINLength = 4
	maxPINLength = 8
)

// Battery status labels returned by BatteryStatus.
const (
	BatteryExcellent = "Excellent"
	BatteryGood      = "Good"
	BatteryLow       = "Low"
	BatteryCritical  = "Critical"
	BatteryVeryLow   = "Very Low"
)

// Smartphone is a PIN-locked handset. Battery stays within
// MinBattery..MaxBattery.
type Smartphone struct {
	Brand     string `json:"brand" yaml:"brand"`
	Model     string `json:"model" yaml:"model"`
	StorageGB int    `json:"storage_gb" yaml:"storage_gb"`
	Battery   int    `json:"battery" yaml:"battery"`
	Locked    bool   `json:"locked" yaml:"locked"`

	pin string
}

// NewSmartphone returns a locked phone provisioned with DefaultPIN. The
// battery level is clamped into MinBattery..MaxBattery.
func NewSmartphone(brand, model string, storageGB, battery int) *Smartphone {
	return &Smartphone{
		Brand:     brand,
		Model:     model,
		StorageGB: storageGB,
		Battery:   clampInt(battery, MinBattery, MaxBattery),
		Locked:    true,
		pin:       DefaultPIN,
	}
}

// Unlock unlocks the phone. Unlocking an unlocked phone with the right PIN is
// a no-op.
// Returns ErrIncorrectPIN if pin does not match; the lock state is unchanged.
func (p *Smartphone) Unlock(pin string) error {
	if pin != p.pin {
		return ErrIncorrectPIN
	}
	p.Locked = false
	return nil
}

// Lock locks the phone. It reports false if it was already locked.
func (p *Smartphone) Lock() bool {
	if p.Locked {
		return false
	}
	p.Locked = true
	return true
}

// ChangePIN replaces the PIN after checking the current one.
// Returns ErrIncorrectPIN if current does not match and ErrInvalidPIN if next
// is not 4 to 8 digits.
func (p *Smartphone) ChangePIN(current, next string) error {
	if current != p.pin {
		return ErrIncorrectPIN
	}
	if !validPIN(next) {
		return ErrInvalidPIN
	}
	p.pin = next
	return nil
}

// Charge adds amount percentage points, stopping at MaxBattery, and returns
// the new level.
// Returns ErrInvalidAmount if amount is negative.
func (p *Smartphone) Charge(amount int) (int, error) {
	if amount < 0 {
		return p.Battery, fmt.Errorf("charge %d: %w", amount, ErrInvalidAmount)
	}
	p.Battery = clampInt(p.Battery+amount, MinBattery, MaxBattery)
	return p.Battery, nil
}

// UseBattery drains amount percentage points, stopping at MinBattery, and
// returns the new level.
// Returns ErrInvalidAmount if amount is negative.
func (p *Smartphone) UseBattery(amount int) (int, error) {
	if amount < 0 {
		return p.Battery, fmt.Errorf("usage %d: %w", amount, ErrInvalidAmount)
	}
	p.Battery = clampInt(p.Battery-amount, MinBattery, MaxBattery)
	return p.Battery, nil
}

// BatteryStatus buckets the battery level into a label.
func (p *Smartphone) BatteryStatus() string {
	switch {
	case p.Battery > 80:
		return BatteryExcellent
	case p.Battery > 50:
		return BatteryGood
	case p.Battery > 20:
		return BatteryLow
	case p.Battery > 10:
		return BatteryCritical
	default:
		return BatteryVeryLow
	}
}

// Specs returns brand, model and storage on one line.
func (p *Smartphone) Specs() string {
	return fmt.Sprintf("Brand: %s, Model: %s, Storage: %dGB", p.Brand, p.Model, p.StorageGB)
}

func (p *Smartphone) String() string {
	lock := "Locked"
	if !p.Locked {
		lock = "Unlocked"
	}
	return fmt.Sprintf("%s %s (%dGB) - Battery: %d%% (%s) - %s",
		p.Brand, p.Model, p.StorageGB, p.Battery, p.BatteryStatus(), lock)
}

// GoString renders the constructor call that rebuilds p.
func (p *Smartphone) GoString() string {
	return fmt.Sprintf("Smartphone(%q, %q, %d, %d)", p.Brand, p.Model, p.StorageGB, p.Battery)
}

func validPIN(pin string) bool {
	if len(pin) < minPINLength || len(pin) > maxPINLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
