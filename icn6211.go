package icn6211

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddr is the I²C address the chip answers on unless its address
// straps select otherwise.
const DefaultAddr uint16 = 0x2C

// ErrOutOfRange is returned when a value does not fit the target
// register field. The check happens before any bus transaction.
var ErrOutOfRange = errors.New("icn6211: value out of range")

// Opts is the configuration for the ICN6211 bridge.
type Opts struct {
	// Addr is the I²C address of the chip. Defaults to DefaultAddr.
	Addr uint16
}

// Dev is the device handle for one ICN6211 bridge.
//
// A Dev is not safe for concurrent use. Composite setters issue several
// register writes with no bus-level atomicity, so two callers
// interleaving accesses can corrupt the shared high-bits timing
// registers. Serialize all access to the handle externally.
type Dev struct {
	c conn.Conn

	// Last values written through the composite timing setters. The
	// matching getters return these instead of reading the chip back, so
	// a direct register write or a chip reset leaves them stale.
	width, height int
	hfp, hsw, hbp int
}

// NewI2C returns a handle to an ICN6211 connected on the given bus.
//
// opts can be nil to use the default address. No transaction is issued;
// the chip's presence is only established implicitly by the first
// register access acknowledging on the bus.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	if addr > 0x7F {
		return nil, errors.New("icn6211: address must be a 7-bit I2C address")
	}
	return &Dev{c: &i2c.Dev{Bus: b, Addr: addr}}, nil
}

// String returns a string representation of the device.
//
// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("icn6211.Dev{%s}", d.c)
}

// Halt soft-resets the chip, stopping the RGB output.
//
// Halt implements conn.Resource.
func (d *Dev) Halt() error {
	return d.SoftReset()
}

// VendorID returns the vendor identification byte.
func (d *Dev) VendorID() (uint8, error) {
	v, err := d.readField(fldVendorID)
	return uint8(v), err
}

// DeviceID returns the 16-bit device identification value.
func (d *Dev) DeviceID() (uint16, error) {
	return d.readField(fldDeviceID)
}

// VersionID returns the chip revision byte.
func (d *Dev) VersionID() (uint8, error) {
	v, err := d.readField(fldVersionID)
	return uint8(v), err
}

// SoftReset returns the chip to its power-on defaults. Values cached by
// the composite timing setters are stale afterwards.
func (d *Dev) SoftReset() error {
	return d.setBit(fldReset, true)
}

// SaveConfig sets the config-commit bit. Timing and PLL changes only
// take effect on the output after the commit.
func (d *Dev) SaveConfig() error {
	return d.setBit(fldConfigFinish, true)
}

// OutSelConfig returns the output selection configuration byte.
func (d *Dev) OutSelConfig() (uint8, error) {
	v, err := d.readField(fldOutSelConfig)
	return uint8(v), err
}

// SetOutSelConfig writes the output selection configuration byte.
func (d *Dev) SetOutSelConfig(v uint8) error {
	return d.writeField(fldOutSelConfig, uint16(v))
}

// FRCEnabled reports whether frame rate control dithering is on.
func (d *Dev) FRCEnabled() (bool, error) {
	return d.getBit(fldFRCEn)
}

// SetFRCEnabled switches frame rate control dithering.
func (d *Dev) SetFRCEnabled(on bool) error {
	return d.setBit(fldFRCEn, on)
}

// OutBitSwap returns the output pin bit mapping.
func (d *Dev) OutBitSwap() (OutBitSwap, error) {
	v, err := d.readField(fldOutBitSwap)
	return OutBitSwap(v), err
}

// SetOutBitSwap selects the output pin bit mapping.
func (d *Dev) SetOutBitSwap(m OutBitSwap) error {
	return d.writeField(fldOutBitSwap, uint16(m))
}

// OutRGBSwap returns the output colour channel order.
func (d *Dev) OutRGBSwap() (OutRGBSwap, error) {
	v, err := d.readField(fldOutRGBSwap)
	return OutRGBSwap(v), err
}

// SetOutRGBSwap selects the output colour channel order.
func (d *Dev) SetOutRGBSwap(o OutRGBSwap) error {
	return d.writeField(fldOutRGBSwap, uint16(o))
}

// ClkPhase returns the output pixel clock phase.
func (d *Dev) ClkPhase() (ClkPhase, error) {
	v, err := d.readField(fldClkPhase)
	return ClkPhase(v), err
}

// SetClkPhase selects the output pixel clock phase.
func (d *Dev) SetClkPhase(p ClkPhase) error {
	return d.writeField(fldClkPhase, uint16(p))
}

// DEPolarity returns the data-enable signal polarity.
func (d *Dev) DEPolarity() (bool, error) {
	return d.getBit(fldDEPol)
}

// SetDEPolarity sets the data-enable signal polarity.
func (d *Dev) SetDEPolarity(p bool) error {
	return d.setBit(fldDEPol, p)
}

// VSPolarity returns the vertical sync polarity.
func (d *Dev) VSPolarity() (bool, error) {
	return d.getBit(fldVSPol)
}

// SetVSPolarity sets the vertical sync polarity.
func (d *Dev) SetVSPolarity(p bool) error {
	return d.setBit(fldVSPol, p)
}

// HSPolarity returns the horizontal sync polarity.
func (d *Dev) HSPolarity() (bool, error) {
	return d.getBit(fldHSPol)
}

// SetHSPolarity sets the horizontal sync polarity.
func (d *Dev) SetHSPolarity(p bool) error {
	return d.setBit(fldHSPol, p)
}

// GPIO0Sel returns the GPIO 0 function selector.
func (d *Dev) GPIO0Sel() (uint8, error) {
	v, err := d.readField(fldGPIO0Sel)
	return uint8(v), err
}

// SetGPIO0Sel writes the GPIO 0 function selector.
func (d *Dev) SetGPIO0Sel(v uint8) error {
	return d.writeField(fldGPIO0Sel, uint16(v))
}

// GPIO1Sel returns the GPIO 1 function selector.
func (d *Dev) GPIO1Sel() (uint8, error) {
	v, err := d.readField(fldGPIO1Sel)
	return uint8(v), err
}

// SetGPIO1Sel writes the GPIO 1 function selector.
func (d *Dev) SetGPIO1Sel(v uint8) error {
	return d.writeField(fldGPIO1Sel, uint16(v))
}

// IRQSel returns the IRQ source selector.
func (d *Dev) IRQSel() (uint8, error) {
	v, err := d.readField(fldIRQSel)
	return uint8(v), err
}

// SetIRQSel writes the IRQ source selector.
func (d *Dev) SetIRQSel(v uint8) error {
	return d.writeField(fldIRQSel, uint16(v))
}

// ErrorVector reads both halves of the MIPI error vector in one
// transaction and combines them into the logical 16-bit fault mask.
func (d *Dev) ErrorVector() (ErrorVector, error) {
	var buf [2]byte
	if err := d.readReg(regMipiErrVectorL, buf[:]); err != nil {
		return 0, err
	}
	return ErrorVector(buf[0]) | ErrorVector(buf[1])<<8, nil
}

// ErrorFlag reports whether one fault bit is set, reading only the
// register holding it.
func (d *Dev) ErrorFlag(f ErrorVector) (bool, error) {
	reg := uint8(regMipiErrVectorL)
	mask := byte(f)
	if f > 0xFF {
		reg = regMipiErrVectorH
		mask = byte(f >> 8)
	}
	var buf [1]byte
	if err := d.readReg(reg, buf[:]); err != nil {
		return false, err
	}
	return buf[0]&mask != 0, nil
}

// ClearErrors zeroes all sixteen fault bits in one transaction.
func (d *Dev) ClearErrors() error {
	return d.writeReg(regMipiErrVectorL, 0x00, 0x00)
}

// RegisterValue is one address and value pair from DumpRegisters.
type RegisterValue struct {
	Addr  uint8
	Value uint8
}

// DumpRegisters reads every known register once, in address order. One
// bus transaction is issued per register. For diagnostics only.
func (d *Dev) DumpRegisters() ([]RegisterValue, error) {
	out := make([]RegisterValue, 0, len(allRegisters))
	var buf [1]byte
	for _, reg := range allRegisters {
		if err := d.readReg(reg, buf[:]); err != nil {
			return nil, err
		}
		out = append(out, RegisterValue{Addr: reg, Value: buf[0]})
	}
	return out, nil
}

var _ conn.Resource = &Dev{}
