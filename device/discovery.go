package device

import (
	"errors"
	"fmt"
	"strconv"

	"go.bug.st/serial/enumerator"
)

// ErrNotFound is returned when no supported keyboard is attached.
var ErrNotFound = errors.New("no supported device found")

// Port describes a discovered keyboard.
type Port struct {
	// Path is the serial port to open, e.g. /dev/ttyACM0 or COM3
	Path string

	// Model is the keyboard model name
	Model string

	// SerialNumber is the USB serial number, when the OS reports one
	SerialNumber string
}

// lister enumerates the serial ports of the host.
type lister func() ([]*enumerator.PortDetails, error)

var listPorts lister = enumerator.GetDetailedPortsList

// Find returns the paths of all attached supported keyboards in host
// enumeration order. It returns ErrNotFound if there are none.
func Find() ([]string, error) {
	ports, err := Discover()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(ports))
	for _, p := range ports {
		paths = append(paths, p.Path)
	}
	return paths, nil
}

// Discover is like Find but also reports the model and serial number of
// each keyboard.
func Discover() ([]Port, error) {
	details, err := listPorts()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}

	ports := match(details)
	if len(ports) == 0 {
		return nil, ErrNotFound
	}
	return ports, nil
}

// Filter returns the names of the ports whose USB identity matches a
// supported keyboard, preserving order.
func Filter(details []*enumerator.PortDetails) []string {
	var paths []string
	for _, p := range match(details) {
		paths = append(paths, p.Path)
	}
	return paths
}

func match(details []*enumerator.PortDetails) []Port {
	var ports []Port
	for _, d := range details {
		if d == nil || !d.IsUSB {
			continue
		}
		vid, err := parseID(d.VID)
		if err != nil {
			continue
		}
		pid, err := parseID(d.PID)
		if err != nil {
			continue
		}
		name, ok := Lookup(vid, pid)
		if !ok {
			continue
		}
		ports = append(ports, Port{
			Path:         d.Name,
			Model:        name,
			SerialNumber: d.SerialNumber,
		})
	}
	return ports
}

// parseID parses a hexadecimal USB ID as reported by the enumerator.
func parseID(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
