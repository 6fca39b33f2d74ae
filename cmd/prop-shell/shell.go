package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/devprop-protocol/devprop-go/pkg/device"
	"github.com/devprop-protocol/devprop-go/pkg/log"
	"github.com/devprop-protocol/devprop-go/pkg/property"
)

// Shell is the interactive command loop.
type Shell struct {
	rl      *readline.Instance
	fleet   *fleet
	tracer  log.Logger
	traceID string

	// unchecked toggles the access pre-checks for every command.
	unchecked bool

	// bound is the current bound property, if any. Set by bind; used by
	// bget and bset. Captures the accessor options from bind time.
	bound     *device.BoundProperty
	boundName string
}

// NewShell creates the shell and its readline instance.
func NewShell(fleet *fleet, tracer log.Logger, traceID string) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "prop> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{
		rl:      rl,
		fleet:   fleet,
		tracer:  tracer,
		traceID: traceID,
	}, nil
}

// Run starts the interactive command loop and blocks until exit.
func (s *Shell) Run() {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "devices", "d":
			s.cmdDevices()

		case "props", "p":
			s.cmdProps(args)

		case "has":
			s.cmdHas(args)

		case "shape":
			s.cmdShape(args)

		case "extent":
			s.cmdExtent(args)

		case "get", "g":
			s.cmdGet(args)

		case "set", "s":
			s.cmdSet(args)

		case "bind":
			s.cmdBind(args)

		case "bget":
			s.cmdBget(args)

		case "bset":
			s.cmdBset(args)

		case "unchecked":
			s.cmdUnchecked(args)

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
Property Shell Commands:
  Inspection:
    devices                     - List devices
    props <dev>                 - List a device's properties with shapes
    has <dev> <prop>            - Probe whether a property exists
    shape <dev> <prop>          - Show element type and rank
    extent <dev> <prop>         - Show per-dimension bounds

  Access:
    get <dev> <prop> [i j ...]  - Read a property value
    set <dev> <prop> <value> [i j ...] - Write a property value

  Binding:
    bind <dev> <prop>           - Bind a property for repeated access
    bget [i j ...]              - Read through the bound property
    bset <value> [i j ...]      - Write through the bound property

  Mode:
    unchecked [on|off]          - Toggle access pre-checks

  General:
    help                        - Show this help
    quit                        - Exit`)
}

// accessor builds the facade for one command invocation.
func (s *Shell) accessor(dev device.Device) device.Accessor {
	return device.Accessor{
		Device:    dev,
		Unchecked: s.unchecked,
		Logger:    s.tracer,
		TraceID:   s.traceID,
	}
}

func (s *Shell) lookupDevice(name string) (device.Device, bool) {
	dev, ok := s.fleet.get(name)
	if !ok {
		fmt.Fprintf(s.rl.Stdout(), "Unknown device: %s (see 'devices')\n", name)
	}
	return dev, ok
}

func (s *Shell) cmdDevices() {
	for _, name := range s.fleet.order {
		dev := s.fleet.devices[name]
		count := "?"
		if keys, err := device.Properties(dev); err == nil {
			count = strconv.Itoa(len(keys))
		}
		fmt.Fprintf(s.rl.Stdout(), "  %-16s %s properties\n", name, count)
	}
}

func (s *Shell) cmdProps(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: props <dev>")
		return
	}
	dev, ok := s.lookupDevice(args[0])
	if !ok {
		return
	}

	keys, err := device.Properties(dev)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	acc := s.accessor(dev)
	for _, key := range keys {
		shape, err := acc.Shape(key)
		if err != nil {
			fmt.Fprintf(s.rl.Stdout(), "  %-16s <error: %v>\n", key, err)
			continue
		}
		desc := shape.String()
		if shape.Rank > 0 {
			if extent, err := acc.Extent(key); err == nil {
				desc = fmt.Sprintf("%s extent %v", shape, extent)
			}
		}
		fmt.Fprintf(s.rl.Stdout(), "  %-16s %s\n", key, desc)
	}
}

func (s *Shell) cmdHas(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: has <dev> <prop>")
		return
	}
	dev, ok := s.lookupDevice(args[0])
	if !ok {
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%v\n", s.accessor(dev).HasName(args[1]))
}

func (s *Shell) cmdShape(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: shape <dev> <prop>")
		return
	}
	dev, ok := s.lookupDevice(args[0])
	if !ok {
		return
	}
	shape, err := s.accessor(dev).Shape(property.New(args[1]))
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "type=%s rank=%d\n", shape.Type, shape.Rank)
}

func (s *Shell) cmdExtent(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: extent <dev> <prop>")
		return
	}
	dev, ok := s.lookupDevice(args[0])
	if !ok {
		return
	}
	extent, err := s.accessor(dev).Extent(property.New(args[1]))
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%v\n", extent)
}

func (s *Shell) cmdGet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: get <dev> <prop> [i j ...]")
		return
	}
	dev, ok := s.lookupDevice(args[0])
	if !ok {
		return
	}
	indices, err := parseIndices(args[2:])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	value, err := s.accessor(dev).GetName(args[1], indices...)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%v\n", value)
}

func (s *Shell) cmdSet(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: set <dev> <prop> <value> [i j ...]")
		return
	}
	dev, ok := s.lookupDevice(args[0])
	if !ok {
		return
	}
	indices, err := parseIndices(args[3:])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	acc := s.accessor(dev)
	value, err := s.parseValue(acc, args[1], args[2])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	written, err := acc.SetName(args[1], value, indices...)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%v\n", written)
}

func (s *Shell) cmdBind(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: bind <dev> <prop>")
		return
	}
	dev, ok := s.lookupDevice(args[0])
	if !ok {
		return
	}
	bp, err := s.accessor(dev).BindName(args[1])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	s.bound = bp
	s.boundName = args[0] + "." + args[1]
	fmt.Fprintf(s.rl.Stdout(), "bound %s (%s)\n", s.boundName, bp.Shape())
}

func (s *Shell) cmdBget(args []string) {
	if s.bound == nil {
		fmt.Fprintln(s.rl.Stdout(), "No bound property (see 'bind')")
		return
	}
	indices, err := parseIndices(args)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	value, err := s.bound.Get(indices...)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%v\n", value)
}

func (s *Shell) cmdBset(args []string) {
	if s.bound == nil {
		fmt.Fprintln(s.rl.Stdout(), "No bound property (see 'bind')")
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: bset <value> [i j ...]")
		return
	}
	indices, err := parseIndices(args[1:])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	value, err := parseValueAs(s.bound.ElementType(), args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	written, err := s.bound.Set(value, indices...)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%v\n", written)
}

func (s *Shell) cmdUnchecked(args []string) {
	switch {
	case len(args) == 0:
		// Report only.
	case args[0] == "on":
		s.unchecked = true
	case args[0] == "off":
		s.unchecked = false
	default:
		fmt.Fprintln(s.rl.Stdout(), "Usage: unchecked [on|off]")
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "unchecked access: %v\n", s.unchecked)
}

// parseValue converts command-line text into a value of the property's
// declared element type. Unknown element types fall back to string.
func (s *Shell) parseValue(acc device.Accessor, propName, text string) (any, error) {
	elemType, err := acc.ElementType(property.New(propName))
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			return nil, err
		}
		elemType = property.DataTypeUnknown
	}

	return parseValueAs(elemType, text)
}

// parseValueAs converts text into a value of the given element type.
// Unknown element types fall back to string.
func parseValueAs(elemType property.DataType, text string) (any, error) {
	switch elemType {
	case property.DataTypeBool:
		return strconv.ParseBool(text)
	case property.DataTypeInt8, property.DataTypeInt16, property.DataTypeInt32, property.DataTypeInt64,
		property.DataTypeUint8, property.DataTypeUint16, property.DataTypeUint32, property.DataTypeUint64:
		return strconv.ParseInt(text, 10, 64)
	case property.DataTypeFloat32, property.DataTypeFloat64:
		return strconv.ParseFloat(text, 64)
	case property.DataTypeBytes:
		return []byte(text), nil
	default:
		return text, nil
	}
}

func parseIndices(args []string) ([]int, error) {
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		idx, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("bad index %q", arg)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}
