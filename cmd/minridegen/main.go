package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/minridegen/internal/datagen"
)

/*generates the MinRide demo dataset: drivers.csv, customers.csv, rides.csv*/

var (
	outputDir   = flag.String("out", datagen.DefaultOutputDir, "Output directory for the CSV files")
	driverCount = flag.Int("drivers", datagen.DefaultDrivers, "Number of drivers to generate")
	custCount   = flag.Int("customers", datagen.DefaultCustomers, "Number of customers to generate")
	rideCount   = flag.Int("rides", datagen.DefaultRides, "Number of rides to generate")
	seed        = flag.Uint64("seed", 0, "RNG seed, 0 seeds from the wall clock")
	catalogPath = flag.String("catalog", "", "Run catalog database path, empty disables run recording")
)

func main() {
	flag.Parse()

	fmt.Println("MinRide data generator")

	cfg := datagen.DefaultConfig()
	cfg.OutputDir = *outputDir
	cfg.Drivers = *driverCount
	cfg.Customers = *custCount
	cfg.Rides = *rideCount
	cfg.Seed = *seed
	cfg.CatalogPath = *catalogPath
	cfg.Progress = &consoleProgress{}

	result, err := datagen.Run(cfg)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}

	total := 0
	for _, f := range result.Files {
		total += f.Rows
	}
	fmt.Printf("Done: %s rows across %d files (seed %d)\n",
		humanize.Comma(int64(total)), len(result.Files), result.Seed)
	if result.RunID != "" {
		fmt.Println("Recorded run", result.RunID)
	}
}

// consoleProgress renders one progress bar per file on stdout.
type consoleProgress struct {
	bar *progressbar.ProgressBar
}

func (p *consoleProgress) FileStarted(name string, rows int) {
	p.bar = progressbar.NewOptions(rows,
		progressbar.OptionSetDescription(name),
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *consoleProgress) RowWritten() {
	_ = p.bar.Add(1)
}

func (p *consoleProgress) FileDone(path string) {
	_ = p.bar.Finish()
	fmt.Println("  ->", path)
}
