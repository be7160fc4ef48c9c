package device

import "fmt"

// Descriptor identifies a USB device model.
type Descriptor struct {
	// VendorID is the USB vendor ID
	VendorID uint16

	// ProductID is the USB product ID
	ProductID uint16
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%04x:%04x", d.VendorID, d.ProductID)
}

type model struct {
	Descriptor
	name string
}

// supported lists the keyboards that speak Focus. The Atreus and Model01
// share a vendor ID and differ only by product ID.
var supported = [...]model{
	{Descriptor{VendorID: 0x3496, ProductID: 0x0006}, "Keyboardio Model100"},
	{Descriptor{VendorID: 0x1209, ProductID: 0x2303}, "Keyboardio Atreus"},
	{Descriptor{VendorID: 0x1209, ProductID: 0x2301}, "Keyboardio Model01"},
}

// Supported reports whether the vendor and product ID pair belongs to a
// supported keyboard.
func Supported(vendorID, productID uint16) bool {
	_, ok := Lookup(vendorID, productID)
	return ok
}

// Lookup returns the model name of a supported keyboard.
func Lookup(vendorID, productID uint16) (string, bool) {
	d := Descriptor{VendorID: vendorID, ProductID: productID}
	for _, m := range supported {
		if m.Descriptor == d {
			return m.name, true
		}
	}
	return "", false
}
