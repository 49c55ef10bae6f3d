// Command softap-sim is an interactive soft-AP client lifecycle simulator.
//
// It hosts one BSS and lets the user play the driver role: injecting
// authenticate, associate, EAPoL and disassociate indications for arbitrary
// station addresses and advancing a virtual clock to fire timeouts.
//
// Usage:
//
//	softap-sim [flags]
//
// Flags:
//
//	-config string      AP configuration file (YAML)
//	-bssid string       BSS address (default "02:00:00:00:00:01")
//	-ssid string        Network name (default "softap")
//	-passphrase string  WPA2 passphrase; empty runs an open BSS
//	-log string         Write protocol events to this file (CBOR)
//
// Examples:
//
//	# Open BSS
//	softap-sim -ssid testnet
//
//	# WPA2 BSS with an event capture
//	softap-sim -ssid testnet -passphrase "correct horse" -log events.cbor
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/softap-project/softap-go/pkg/ap"
	"github.com/softap-project/softap-go/pkg/client"
	"github.com/softap-project/softap-go/pkg/log"
	"github.com/softap-project/softap-go/pkg/timer"
	"github.com/softap-project/softap-go/pkg/wire"
)

type config struct {
	ConfigFile string
	Bssid      string
	Ssid       string
	Passphrase string
	LogFile    string
}

var cfg config

func init() {
	flag.StringVar(&cfg.ConfigFile, "config", "", "AP configuration file (YAML)")
	flag.StringVar(&cfg.Bssid, "bssid", "02:00:00:00:00:01", "BSS address")
	flag.StringVar(&cfg.Ssid, "ssid", "softap", "Network name")
	flag.StringVar(&cfg.Passphrase, "passphrase", "", "WPA2 passphrase; empty runs an open BSS")
	flag.StringVar(&cfg.LogFile, "log", "", "Write protocol events to this file (CBOR)")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "softap-sim:", err)
		os.Exit(1)
	}
}

func run() error {
	apCfg, err := loadConfig()
	if err != nil {
		return err
	}

	rsnConfig, err := apCfg.RsnConfig()
	if err != nil {
		return err
	}

	sim, err := newSimulator(apCfg.BssAddr())
	if err != nil {
		return err
	}
	defer sim.Close()

	logger, closeLogger, err := buildLogger(sim)
	if err != nil {
		return err
	}
	defer closeLogger()

	sched := timer.NewManual(sim.start)
	ctx := &client.Context{
		ApAddr:    apCfg.BssAddr(),
		Sender:    sim,
		Scheduler: sched,
		Engines:   engineFactory{},
		RsnConfig: rsnConfig,
		Logger:    logger,
	}
	sim.attach(ap.NewBSS(ctx, apCfg.Capacity()), sched)

	mode := "open"
	if rsnConfig != nil {
		mode = "wpa2"
	}
	fmt.Fprintf(sim.stdout(), "BSS %s up: ssid=%q security=%s capacity=%d\n",
		apCfg.BssAddr(), apCfg.Ssid, mode, apCfg.Capacity())

	sim.run()
	return nil
}

func loadConfig() (*ap.Config, error) {
	if cfg.ConfigFile != "" {
		return ap.LoadConfig(cfg.ConfigFile)
	}
	if _, err := wire.ParseMacAddr(cfg.Bssid); err != nil {
		return nil, fmt.Errorf("bssid: %w", err)
	}
	return &ap.Config{
		Bssid:      cfg.Bssid,
		Ssid:       cfg.Ssid,
		Passphrase: cfg.Passphrase,
	}, nil
}

// buildLogger combines terminal logging with an optional CBOR capture file.
func buildLogger(sim *simulator) (log.Logger, func(), error) {
	terminal := log.NewSlogAdapter(slog.New(slog.NewTextHandler(sim.stdout(), nil)))
	if cfg.LogFile == "" {
		return terminal, func() {}, nil
	}

	file, err := log.NewFileLogger(cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open event log: %w", err)
	}
	return log.NewMultiLogger(terminal, file), func() { _ = file.Close() }, nil
}
