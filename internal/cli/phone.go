package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tinker/pkg/types"
)

type phoneFlags struct {
	brand    string
	model    string
	storage  int
	battery  int
	wrongPIN string
}

func newPhoneCmd(a *app) *cobra.Command {
	var f phoneFlags

	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Unlock a smartphone, drain and charge its battery",
		Long: `Tries a wrong PIN, unlocks with the PIN from phone.pin in the config,
uses 25 points of battery, charges 40 points and locks the phone.

Example:
  tinker phone --brand Apple --model "iPhone 14" --battery 85`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPhone(a, f)
		},
	}

	cmd.Flags().StringVar(&f.brand, "brand", "Apple", "manufacturer")
	cmd.Flags().StringVar(&f.model, "model", "iPhone 14", "model")
	cmd.Flags().IntVar(&f.storage, "storage", 256, "storage in GB")
	cmd.Flags().IntVar(&f.battery, "battery", 85, "starting battery level in percent")
	cmd.Flags().StringVar(&f.wrongPIN, "wrong-pin", "0000", "PIN used for the failed unlock attempt")

	return cmd
}

func runPhone(a *app, f phoneFlags) error {
	phone := types.NewSmartphone(f.brand, f.model, f.storage, f.battery)
	pin := a.cfg.Phone.PIN
	if pin != types.DefaultPIN {
		if err := phone.ChangePIN(types.DefaultPIN, pin); err != nil {
			return fmt.Errorf("provision PIN: %w", err)
		}
		a.log.Debugw("provisioned configured PIN")
	}

	a.out.heading("Initial Phone State")
	a.out.block(phone)
	a.out.note("Specs: %s", phone.Specs())
	a.out.note("Phone locked: %t", phone.Locked)

	a.out.heading("Unlocking")
	err := phone.Unlock(f.wrongPIN)
	a.step("unlock", err, "Unlocked with PIN %s.", f.wrongPIN)
	err = phone.Unlock(pin)
	a.step("unlock", err, "Unlocked with configured PIN.")
	a.out.block(phone)

	a.out.heading("Battery")
	level, err := phone.UseBattery(25)
	a.step("use battery", err, "Battery after usage: %d%%", level)
	level, err = phone.Charge(40)
	a.step("charge", err, "Battery after charging: %d%%", level)
	a.out.block(phone)

	a.out.heading("Locking")
	a.toggle("lock", phone.Lock(), "Phone locked.", "Phone was already locked.")

	a.out.heading("Final Phone State")
	a.out.block(phone)
	return a.out.result(phone)
}
