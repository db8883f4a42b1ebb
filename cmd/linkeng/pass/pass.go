// Package pass implements the pass prediction and pass budget subcommand.
package pass

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	budgetcmd "github.com/signalsfoundry/link-engineering/cmd/linkeng/budget"

	"github.com/signalsfoundry/link-engineering/budget"
	"github.com/urfave/cli/v3"
)

const scenarioFlag = "scenario"
const stationFlag = "station"
const spacecraftFlag = "spacecraft"
const directionFlag = "direction"
const startFlag = "start"
const durationFlag = "duration"
const intervalFlag = "interval"
const dataRateFlag = "data-rate-bps"
const requiredEbNoFlag = "required-ebno-db"

// GetCommand returns the pass subcommand.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "pass",
		Usage: "Evaluate the link budget across upcoming passes",
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

			station := cat.GetStation(cmd.String(stationFlag))
			if station == nil {
				return fmt.Errorf("station %q not in scenario", cmd.String(stationFlag))
			}
			spacecraft := cat.GetSpacecraft(cmd.String(spacecraftFlag))
			if spacecraft == nil {
				return fmt.Errorf("spacecraft %q not in scenario", cmd.String(spacecraftFlag))
			}

			direction := budget.Direction(cmd.String(directionFlag))
			if direction != budget.Uplink && direction != budget.Downlink {
				return fmt.Errorf("direction must be %q or %q", budget.Uplink, budget.Downlink)
			}

			start := time.Now().UTC()
			if raw := cmd.String(startFlag); raw != "" {
				start, err = time.Parse(time.RFC3339, raw)
				if err != nil {
					return fmt.Errorf("parsing start time: %w", err)
				}
			}

			points, err := budget.EvaluatePass(cat, budget.PassRequest{
				Station:        station,
				Spacecraft:     spacecraft,
				Direction:      direction,
				DataRateBps:    cmd.Float(dataRateFlag),
				RequiredEbNoDB: cmd.Float(requiredEbNoFlag),
				Start:          start,
				End:            start.Add(cmd.Duration(durationFlag)),
				Interval:       cmd.Duration(intervalFlag),
			})
			if err != nil {
				return err
			}

			printPass(points)
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
				Name:     stationFlag,
				Usage:    "Ground station ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:     spacecraftFlag,
				Usage:    "Spacecraft ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:  directionFlag,
				Usage: "Link direction, uplink or downlink",
				Value: string(budget.Downlink),
			},
			&cli.StringFlag{
				Name:  startFlag,
				Usage: "Start time in RFC 3339 format, defaults to now",
			},
			&cli.DurationFlag{
				Name:  durationFlag,
				Usage: "Span to search for passes",
				Value: 24 * time.Hour,
			},
			&cli.DurationFlag{
				Name:  intervalFlag,
				Usage: "Sampling step",
				Value: 30 * time.Second,
			},
			&cli.FloatFlag{
				Name:  dataRateFlag,
				Usage: "Data rate in bit/s; enables Eb/No, BER and margin",
			},
			&cli.FloatFlag{
				Name:  requiredEbNoFlag,
				Usage: "Demodulator Eb/No threshold in dB",
			},
		},
	}
}

func printPass(points []budget.PassPoint) {
	header := color.New(color.Bold)
	inPass := false
	sawPass := false
	for _, p := range points {
		if p.Result == nil {
			inPass = false
			continue
		}
		if !inPass {
			header.Printf("Pass starting %s\n", p.Time.Format(time.RFC3339))
			inPass = true
			sawPass = true
		}
		fmt.Printf("  %s  el %6.2f deg  range %8.1f km  C/No %6.2f dB-Hz",
			p.Time.Format("15:04:05"), p.ElevationDeg, p.RangeKm, p.Result.CNoDBHz)
		if p.Result.Quality != budget.QualityUnknown {
			fmt.Printf("  margin %6.2f dB  %s", p.Result.MarginDB, budgetcmd.ColorQuality(p.Result.Quality))
		}
		fmt.Println()
	}
	if !sawPass {
		fmt.Println("No passes in the requested span.")
	}
}
