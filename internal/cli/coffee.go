package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tinker/pkg/types"
)

type coffeeFlags struct {
	brand string
	water float64
	beans int
	cup   string
	cups  int
}

func newCoffeeCmd(a *app) *cobra.Command {
	var f coffeeFlags

	cmd := &cobra.Command{
		Use:   "coffee",
		Short: "Brew coffee, refill water and add beans",
		Long: `Tries to brew while the machine is off, turns it on, brews a cup,
switches to a large cup and brews again, refills 0.5 L of water and
100 g of beans, then brews until a cup fails or --cups cups are made.
Reservoir and hopper sizes come from the coffee section of the config.

Example:
  tinker coffee --brand Keurig --water 1.5 --beans 150 --cup medium`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoffee(a, f)
		},
	}

	cmd.Flags().StringVar(&f.brand, "brand", "Keurig", "brand")
	cmd.Flags().Float64Var(&f.water, "water", 1.5, "starting water in liters")
	cmd.Flags().IntVar(&f.beans, "beans", 150, "starting beans in grams")
	cmd.Flags().StringVar(&f.cup, "cup", string(types.CupMedium), "cup size: small, medium or large")
	cmd.Flags().IntVar(&f.cups, "cups", 3, "cups to attempt in the final round")

	return cmd
}

func runCoffee(a *app, f coffeeFlags) error {
	cup, err := types.ParseCupSize(f.cup)
	if err != nil {
		return err
	}

	// Start empty so the configured capacities, not the defaults, bound the
	// starting levels.
	maker := types.NewCoffeeMaker(f.brand, 0, 0, cup)
	if err := maker.SetCapacity(a.cfg.Coffee.WaterCapacityLiters, a.cfg.Coffee.BeansCapacityGrams); err != nil {
		return fmt.Errorf("configure coffee maker: %w", err)
	}
	if f.water > 0 {
		if _, err := maker.RefillWater(f.water); err != nil {
			return fmt.Errorf("fill water: %w", err)
		}
	}
	if f.beans > 0 {
		if _, err := maker.AddBeans(f.beans); err != nil {
			return fmt.Errorf("fill beans: %w", err)
		}
	}

	a.out.heading("Initial Coffee Maker State")
	a.out.block(maker)

	a.out.heading("Brewing While Off")
	a.brew(maker)

	a.out.heading("Power")
	a.toggle("turn on", maker.TurnOn(), "Coffee maker turned on.", "Coffee maker was already on.")

	a.out.heading("Brewing")
	a.brew(maker)
	err = maker.SetCupSize(string(types.CupLarge))
	a.step("set cup size", err, "Cup size set to %s.", maker.CupSize)
	a.brew(maker)
	a.out.block(maker)

	a.out.heading("Refilling")
	fill, err := maker.RefillWater(0.5)
	a.fill("refill water", fill, err, "Added %.2fL water. Current level: %.2fL", "Water tank full. Added %.2fL, %.2fL overflow",
		float64(fill.Added)/1000, maker.WaterLiters(), float64(fill.Overflow)/1000)
	fill, err = maker.AddBeans(100)
	a.fill("add beans", fill, err, "Added %dg coffee beans. Current amount: %dg", "Bean storage full. Added %dg, %dg overflow",
		fill.Added, maker.BeansG, fill.Overflow)
	a.out.block(maker)

	a.out.heading("Brewing Multiple Cups")
	for i := 0; i < f.cups; i++ {
		a.out.note("Cup %d:", i+1)
		if !a.brew(maker) {
			break
		}
	}

	a.out.heading("Final State")
	a.out.block(maker)
	return a.out.result(maker)
}

func (a *app) brew(maker *types.CoffeeMaker) bool {
	_, err := maker.Brew()
	return a.step("brew", err, "Successfully brewed %s coffee! Water: %.2fL, Beans: %dg remaining",
		maker.CupSize, maker.WaterLiters(), maker.BeansG)
}

// fill reports a top-up. The ok format takes (added, level); the overflow
// format takes (added, overflow). args holds added, level, overflow.
func (a *app) fill(action string, fill types.Fill, err error, okFormat, overflowFormat string, args ...any) {
	if err != nil || fill.Overflow == 0 {
		a.step(action, err, okFormat, args[0], args[1])
		return
	}
	a.log.Infow("overflow", "action", action, "added", fill.Added, "overflow", fill.Overflow)
	a.out.noop(overflowFormat, args[0], args[2])
}
