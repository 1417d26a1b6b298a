package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

const (
	dialTimeout   = 5 * time.Second
	writeTimeout  = 10 * time.Second
	statusTimeout = 2 * time.Second
)

// Printer sends rendered ticket bytes to a thermal printer. Transports
// open and close per job: a ticket printer sits idle between sales and a
// held-open handle only masks unplugged hardware.
type Printer interface {
	// Print sends raw ESC/POS bytes to the printer.
	Print(data []byte) error
	// Close releases the printer connection/handle.
	Close() error
	// IsConnected reports whether the printer is reachable right now.
	IsConnected() bool
}

// usbPrinter writes tickets to a USB line-printer device file.
type usbPrinter struct {
	path string
}

// NewUSBPrinter creates a printer backed by a device file such as
// /dev/usb/lp0.
func NewUSBPrinter(devicePath string) Printer {
	return &usbPrinter{path: devicePath}
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: opening USB device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: writing ticket to %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) Close() error { return nil }

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// networkPrinter dials a raw-socket printer, typically port 9100.
type networkPrinter struct {
	address string
}

// NewNetworkPrinter creates a printer reached over TCP. The address must
// include the port, e.g. "192.168.1.50:9100".
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{address: address}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, dialTimeout)
	if err != nil {
		return fmt.Errorf("printer: connecting to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: writing ticket to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error { return nil }

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, statusTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// nullPrinter swallows tickets. Used for terminals without hardware; the
// receipt payload is still composed and returned to the caller.
type nullPrinter struct{}

// NewNullPrinter creates a no-op printer.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print([]byte) error { return nil }

func (p *nullPrinter) Close() error { return nil }

func (p *nullPrinter) IsConnected() bool { return false }

// NewPrinterFromConfig builds the configured transport.
//
//	printerType: "usb", "network", or "null"
//	usbPath: device path for USB printers
//	address: host:port for network printers
func NewPrinterFromConfig(printerType, usbPath, address string) (Printer, error) {
	switch printerType {
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("printer: USB path is required for the usb printer type")
		}
		return NewUSBPrinter(usbPath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: address is required for the network printer type")
		}
		return NewNetworkPrinter(address), nil
	case "null", "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or null)", printerType)
	}
}
