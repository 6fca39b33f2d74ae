// Command prop-shell is an interactive inspector for property devices.
//
// It hosts a small fleet of simulated devices (plus any loaded from
// YAML definitions) and exposes them through the uniform property
// access layer: probe, read, write, inspect shapes and extents, all
// from a readline prompt.
//
// Usage:
//
//	prop-shell [flags]
//
// Flags:
//
//	-schema string     Comma-separated YAML device definition files to load
//	-trace string      Write a CBOR access trace to this file
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Start with the built-in simulated devices
//	prop-shell
//
//	# Add devices from definitions and record an access trace
//	prop-shell -schema thermo.yaml,pump.yaml -trace access.trace
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/devprop-protocol/devprop-go/pkg/device"
	"github.com/devprop-protocol/devprop-go/pkg/examples"
	"github.com/devprop-protocol/devprop-go/pkg/log"
	"github.com/devprop-protocol/devprop-go/pkg/schema"
)

func main() {
	schemaFlag := flag.String("schema", "", "Comma-separated YAML device definition files to load")
	traceFlag := flag.String("trace", "", "Write a CBOR access trace to this file")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	// Access tracing: console (slog) plus an optional CBOR trace file.
	loggers := []log.Logger{log.NewSlogAdapter(slogger)}
	if *traceFlag != "" {
		fileLogger, err := log.NewFileLogger(*traceFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open trace file: %v\n", err)
			os.Exit(1)
		}
		defer fileLogger.Close()
		loggers = append(loggers, fileLogger)
	}
	tracer := log.NewMultiLogger(loggers...)

	fleet := newFleet()
	if *schemaFlag != "" {
		for _, path := range strings.Split(*schemaFlag, ",") {
			dev, err := schema.LoadDevice(strings.TrimSpace(path))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load device definition: %v\n", err)
				os.Exit(1)
			}
			if err := fleet.add(dev.DeviceID(), dev); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
			slogger.Info("loaded device definition", "path", path, "device", dev.DeviceID())
		}
	}

	shell, err := NewShell(fleet, tracer, uuid.NewString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start shell: %v\n", err)
		os.Exit(1)
	}
	shell.Run()
}

// fleet is the named set of devices the shell operates on.
type fleet struct {
	devices map[string]device.Device
	order   []string
}

func newFleet() *fleet {
	f := &fleet{devices: make(map[string]device.Device)}

	// Built-in simulated devices.
	_ = f.add("thermometer", examples.NewThermometer("thermometer").Device())
	_ = f.add("buffer8", examples.NewSampleBuffer("buffer8", 8).Device())
	_ = f.add("station", examples.NewWeatherStation("station").Device())
	_ = f.add("counter", examples.NewCounter("counter"))

	return f
}

func (f *fleet) add(name string, dev device.Device) error {
	if _, exists := f.devices[name]; exists {
		return fmt.Errorf("duplicate device name %q", name)
	}
	f.devices[name] = dev
	f.order = append(f.order, name)
	return nil
}

func (f *fleet) get(name string) (device.Device, bool) {
	dev, ok := f.devices[name]
	return dev, ok
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
