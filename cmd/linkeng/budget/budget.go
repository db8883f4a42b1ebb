// Package budget implements the one-shot link budget subcommand.
package budget

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/signalsfoundry/link-engineering/budget"
	"github.com/urfave/cli/v3"
)

const scenarioFlag = "scenario"
const txFlag = "tx"
const rxFlag = "rx"
const rangeFlag = "range-km"
const elevationFlag = "elevation-deg"
const freqFlag = "freq-ghz"
const dataRateFlag = "data-rate-bps"
const requiredEbNoFlag = "required-ebno-db"

// GetCommand returns the budget subcommand.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "budget",
		Usage: "Evaluate a single link budget between two transceivers",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat := budget.NewCatalog()
			f, err := os.Open(cmd.String(scenarioFlag))
			if err != nil {
				return fmt.Errorf("opening scenario: %w", err)
			}
			defer f.Close()
			if _, err := budget.LoadScenario(cat, f); err != nil {
				return err
			}

			tx := cat.GetTransceiver(cmd.String(txFlag))
			rx := cat.GetTransceiver(cmd.String(rxFlag))
			if tx == nil || rx == nil {
				return fmt.Errorf("transceivers %q and %q must both be in the scenario", cmd.String(txFlag), cmd.String(rxFlag))
			}

			result, err := budget.Evaluate(tx, rx, budget.LinkPath{
				RangeKm:        cmd.Float(rangeFlag),
				ElevationDeg:   cmd.Float(elevationFlag),
				FreqGHz:        cmd.Float(freqFlag),
				DataRateBps:    cmd.Float(dataRateFlag),
				RequiredEbNoDB: cmd.Float(requiredEbNoFlag),
			})
			if err != nil {
				return err
			}

			printResult(result)
			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     scenarioFlag,
				Aliases:  []string{"s"},
				Usage:    "Path to a JSON scenario file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     txFlag,
				Usage:    "Transmitting transceiver ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:     rxFlag,
				Usage:    "Receiving transceiver ID",
				Required: true,
			},
			&cli.FloatFlag{
				Name:     rangeFlag,
				Aliases:  []string{"r"},
				Usage:    "Slant range in kilometres",
				Required: true,
			},
			&cli.FloatFlag{
				Name:    elevationFlag,
				Aliases: []string{"e"},
				Usage:   "Ground antenna elevation in degrees; 0 skips the atmospheric loss term",
			},
			&cli.FloatFlag{
				Name:  freqFlag,
				Usage: "Carrier frequency in GHz; 0 uses the transmitter's band centre",
			},
			&cli.FloatFlag{
				Name:  dataRateFlag,
				Usage: "Data rate in bit/s; enables Eb/No, BER and margin",
			},
			&cli.FloatFlag{
				Name:  requiredEbNoFlag,
				Usage: "Demodulator Eb/No threshold in dB the margin is measured against",
			},
		},
	}
}

func printResult(r *budget.Result) {
	fmt.Printf("Frequency        %10.4f GHz\n", r.FreqGHz)
	fmt.Printf("FSPL             %10.2f dB\n", r.FSPLdB)
	fmt.Printf("Atmospheric loss %10.2f dB\n", r.AtmosphericLossDB)
	fmt.Printf("Pointing loss    %10.2f dB\n", r.PointingLossDB)
	fmt.Printf("Total loss       %10.2f dB\n", r.TotalLossDB)
	fmt.Printf("EIRP             %10.2f dBW\n", r.EIRPDBW)
	fmt.Printf("G/T              %10.2f dB/K\n", r.GOverTDBK)
	fmt.Printf("C/No             %10.2f dB-Hz\n", r.CNoDBHz)
	if r.Quality != budget.QualityUnknown {
		fmt.Printf("Modulation loss  %10.2f dB\n", r.ModulationLossDB)
		fmt.Printf("Eb/No            %10.2f dB\n", r.EbNoDB)
		fmt.Printf("BER              %10.2e\n", r.BER)
		fmt.Printf("Margin           %10.2f dB\n", r.MarginDB)
	}
	fmt.Printf("Quality          %s\n", ColorQuality(r.Quality))
}

// ColorQuality renders a quality bucket with a terminal color.
func ColorQuality(q budget.Quality) string {
	switch q {
	case budget.QualityDown:
		return color.New(color.FgRed, color.Bold).Sprint(string(q))
	case budget.QualityPoor:
		return color.New(color.FgRed).Sprint(string(q))
	case budget.QualityFair:
		return color.New(color.FgYellow).Sprint(string(q))
	case budget.QualityGood, budget.QualityExcellent:
		return color.New(color.FgGreen).Sprint(string(q))
	default:
		return string(q)
	}
}
