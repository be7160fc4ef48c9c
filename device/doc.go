// Package device finds Focus-capable keyboards attached to the host.
//
// Supported hardware is identified by USB vendor and product ID. Find lists
// the serial ports whose USB identity matches one of the supported
// keyboards, in the order the operating system enumerates them:
//
//	paths, err := device.Find()
//	if errors.Is(err, device.ErrNotFound) {
//	    // no keyboard attached
//	}
//
// The catalog is only used for discovery. A port given explicitly by the
// user is opened as-is, whatever its USB identity.
package device
