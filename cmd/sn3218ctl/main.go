// sn3218ctl drives an SN3218 LED driver from the command line.
//
// Usage:
//
//	sn3218ctl [flags] on|off|reset|level|cycle
//
// With no usable I2C bus (or with -sim) output goes to a terminal
// simulation instead of hardware.
package main

import (
	"flag"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/pimoroni/sn3218"
	"github.com/pimoroni/sn3218/internal/config"
	"github.com/pimoroni/sn3218/internal/sim"
)

func main() {
	var (
		busName    = flag.String("bus", "", "I2C bus name or number (empty: first available)")
		addr       = flag.Int("addr", 0, "device address (0: chip default 0x54)")
		level      = flag.Int("level", 128, "brightness level 0..255 for on/level/cycle")
		simOnly    = flag.Bool("sim", false, "force terminal simulation (no hardware)")
		configPath = flag.String("config", "sn3218.yaml", "path to config.yaml")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// Config file is optional; flags fill the gaps.
	var cfg *config.Config
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	eBus, eAddr, eLevel := *busName, uint16(*addr), *level
	var eNames map[string]int
	if cfg != nil {
		if cfg.Bus != "" && eBus == "" {
			eBus = cfg.Bus
		}
		if cfg.Addr != 0 && eAddr == 0 {
			eAddr = cfg.Addr
		}
		if cfg.Brightness > 0 && !flagSet("level") {
			eLevel = cfg.Brightness
		}
		eNames = cfg.Names
	}

	bus, closer := openBus(eBus, *simOnly)
	if closer != nil {
		defer closer.Close()
	}

	dev, err := sn3218.New(bus, &sn3218.Opts{Addr: eAddr, Names: eNames})
	if err != nil {
		log.Fatal().Err(err).Msg("sn3218 init failed")
	}
	defer dev.Halt()

	op := flag.Arg(0)
	if op == "" {
		op = "cycle"
	}
	switch op {
	case "on":
		err = allAt(dev, eLevel)
	case "off":
		err = dev.SetAll(false)
	case "reset":
		err = dev.Reset()
	case "level":
		err = allAt(dev, eLevel)
	case "cycle":
		err = cycle(dev, eLevel)
	default:
		log.Fatal().Str("op", op).Msg("unknown operation")
	}
	if err != nil {
		log.Fatal().Err(err).Str("op", op).Msg("operation failed")
	}
}

func openBus(name string, simOnly bool) (i2c.Bus, i2c.BusCloser) {
	if simOnly {
		return sim.New(), nil
	}
	if _, err := host.Init(); err != nil {
		log.Warn().Err(err).Msg("host init failed; using terminal simulation")
		return sim.New(), nil
	}
	b, err := i2creg.Open(name)
	if err != nil {
		log.Warn().Err(err).Str("bus", name).Msg("no I2C bus; using terminal simulation")
		return sim.New(), nil
	}
	return b, b
}

func allAt(dev *sn3218.Dev, level int) error {
	if err := dev.SetAll(true); err != nil {
		return err
	}
	levels := make([]int, sn3218.NumChannels)
	for i := range levels {
		levels[i] = level
	}
	return dev.Output(levels)
}

// cycle sweeps a phase-shifted brightness wave across the channels until
// interrupted.
func cycle(dev *sn3218.Dev, peak int) error {
	if err := dev.SetAll(true); err != nil {
		return err
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	levels := make([]int, sn3218.NumChannels)
	for {
		select {
		case <-ticker.C:
			t := time.Since(start).Seconds()
			for i := range levels {
				phase := t + float64(i)/sn3218.NumChannels
				levels[i] = int(float64(peak) * (0.5 + 0.5*math.Sin(2*math.Pi*phase)))
			}
			if err := dev.Output(levels); err != nil {
				return err
			}
		case s := <-ch:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			return dev.SetAll(false)
		}
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
