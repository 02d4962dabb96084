package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tinker/pkg/types"
)

type carFlags struct {
	make  string
	model string
	year  int
	color string
	fuel  float64
}

func newCarCmd(a *app) *cobra.Command {
	var f carFlags

	cmd := &cobra.Command{
		Use:   "car",
		Short: "Start a car, drive it and refuel",
		Long: `Starts the engine, drives 25 and then 30 units and refuels 20 points.
Fuel consumption per unit comes from car.fuel_per_unit in the config.

Example:
  tinker car --make Toyota --model Camry --fuel 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCar(a, f)
		},
	}

	cmd.Flags().StringVar(&f.make, "make", "Toyota", "manufacturer")
	cmd.Flags().StringVar(&f.model, "model", "Camry", "model")
	cmd.Flags().IntVar(&f.year, "year", 2023, "model year")
	cmd.Flags().StringVar(&f.color, "color", "Blue", "paint color")
	cmd.Flags().Float64Var(&f.fuel, "fuel", types.MaxFuel, "starting fuel level in percent")

	return cmd
}

func runCar(a *app, f carFlags) error {
	car := types.NewCar(f.make, f.model, f.year, f.color).WithFuel(f.fuel)
	if err := car.SetFuelRate(a.cfg.Car.FuelPerUnit); err != nil {
		return fmt.Errorf("configure car: %w", err)
	}

	a.out.heading("Car Details")
	a.out.note("%s", car.Details())
	a.out.note("Fuel Level: %.1f%%", car.FuelLevel)

	a.out.heading("Starting Engine")
	err := car.StartEngine()
	a.step("start engine", err, "Engine started successfully.")

	a.out.heading("Driving")
	for _, distance := range []float64{25, 30} {
		a.drive(car, distance)
	}

	a.out.heading("Refueling")
	accepted, err := car.Refuel(20)
	a.step("refuel", err, "Refueled %.1f points. Current fuel level: %.1f%%", accepted, car.FuelLevel)

	a.out.heading("Final Status")
	a.out.block(car)
	return a.out.result(car)
}

func (a *app) drive(car *types.Car, distance float64) {
	trip, err := car.Drive(distance)
	if err == nil && trip.RanOut {
		a.log.Infow("ran out of fuel", "requested", trip.Requested, "driven", trip.Driven)
		a.out.noop("Ran out of fuel after driving %.1f units. Engine stopped. Fuel level: %.1f%%", trip.Driven, car.FuelLevel)
		return
	}
	a.step("drive", err, "Drove %g units. Remaining fuel: %.1f%%", distance, car.FuelLevel)
}
