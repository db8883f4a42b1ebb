// Package safety implements the RF exposure subcommand.
package safety

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/signalsfoundry/link-engineering/safety"
	"github.com/urfave/cli/v3"
)

const diameterFlag = "diameter-m"
const freqFlag = "freq-mhz"
const powerFlag = "power-w"
const efficiencyFlag = "efficiency"

// GetCommand returns the safety subcommand.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "safety",
		Usage: "Evaluate RF exposure compliance for a parabolic transmit antenna",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			eval, err := safety.Evaluate(safety.Input{
				DiameterM:  cmd.Float(diameterFlag),
				FreqMHz:    cmd.Float(freqFlag),
				PowerW:     cmd.Float(powerFlag),
				Efficiency: cmd.Float(efficiencyFlag),
			})
			if err != nil {
				return err
			}

			fmt.Print(eval.Report())

			if eval.Compliant() {
				color.New(color.FgGreen, color.Bold).Println("COMPLIANT")
			} else {
				color.New(color.FgRed, color.Bold).Println("EXCEEDS LIMITS")
				printRegionVerdicts(eval)
			}
			return nil
		},
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:     diameterFlag,
				Aliases:  []string{"d"},
				Usage:    "Reflector diameter in metres",
				Required: true,
			},
			&cli.FloatFlag{
				Name:     freqFlag,
				Aliases:  []string{"f"},
				Usage:    "Transmit frequency in MHz",
				Required: true,
			},
			&cli.FloatFlag{
				Name:     powerFlag,
				Aliases:  []string{"p"},
				Usage:    "Power fed to the antenna in watts",
				Required: true,
			},
			&cli.FloatFlag{
				Name:  efficiencyFlag,
				Usage: "Aperture efficiency as a decimal fraction",
				Value: safety.DefaultEfficiency,
			},
		},
	}
}

func printRegionVerdicts(e *safety.Evaluation) {
	regions := []struct {
		name    string
		verdict safety.Verdict
	}{
		{"surface", e.Surface},
		{"near field", e.NearField},
		{"far field", e.FarField},
		{"ground level", e.Ground},
	}
	warn := color.New(color.FgRed).SprintFunc()
	for _, r := range regions {
		if r.verdict.ExceedsOccupational {
			fmt.Printf("  %s: %s\n", r.name, warn("exceeds occupational limit"))
		} else if r.verdict.ExceedsGeneral {
			fmt.Printf("  %s: %s\n", r.name, warn("exceeds general population limit"))
		}
	}
}
