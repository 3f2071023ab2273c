package icn6211

import "fmt"

// MipiLaneNum returns the configured DSI data lane count.
func (d *Dev) MipiLaneNum() (MipiLaneNum, error) {
	v, err := d.readField(fldMipiLaneNum)
	return MipiLaneNum(v), err
}

// SetMipiLaneNum selects how many DSI data lanes the host drives.
func (d *Dev) SetMipiLaneNum(n MipiLaneNum) error {
	return d.writeField(fldMipiLaneNum, uint16(n))
}

// MipiClkPNSwap reports whether the clock lane P and N pins are
// swapped.
func (d *Dev) MipiClkPNSwap() (bool, error) {
	return d.getBit(fldMipiPNSwapClk)
}

// SetMipiClkPNSwap swaps the clock lane P and N pins.
func (d *Dev) SetMipiClkPNSwap(on bool) error {
	return d.setBit(fldMipiPNSwapClk, on)
}

// MipiDataPNSwap reports whether data lane n (0 to 3) has its P and N
// pins swapped.
func (d *Dev) MipiDataPNSwap(lane int) (bool, error) {
	f, err := pnSwapLane(lane)
	if err != nil {
		return false, err
	}
	return d.getBit(f)
}

// SetMipiDataPNSwap swaps the P and N pins of data lane n (0 to 3).
func (d *Dev) SetMipiDataPNSwap(lane int, on bool) error {
	f, err := pnSwapLane(lane)
	if err != nil {
		return err
	}
	return d.setBit(f, on)
}

func pnSwapLane(lane int) (field, error) {
	if lane < 0 || lane > 3 {
		return field{}, fmt.Errorf("%w: DSI data lane %d", ErrOutOfRange, lane)
	}
	return bitField(regMipiPNSwap, uint8(lane), 1), nil
}

// MipiXor returns the undocumented XOR bit carried over from the
// vendor configuration tool.
func (d *Dev) MipiXor() (bool, error) {
	return d.getBit(fldMipiXor)
}

// SetMipiXor sets the undocumented XOR bit.
func (d *Dev) SetMipiXor(on bool) error {
	return d.setBit(fldMipiXor, on)
}

// MipiMaxSizeLow returns the low byte of the maximum packet size.
func (d *Dev) MipiMaxSizeLow() (uint8, error) {
	v, err := d.readField(fldMipiMaxSizeL)
	return uint8(v), err
}

// SetMipiMaxSizeLow writes the low byte of the maximum packet size.
func (d *Dev) SetMipiMaxSizeLow(v uint8) error {
	return d.writeField(fldMipiMaxSizeL, uint16(v))
}

// MipiMaxSizeHigh returns the high byte of the maximum packet size.
func (d *Dev) MipiMaxSizeHigh() (uint8, error) {
	v, err := d.readField(fldMipiMaxSizeH)
	return uint8(v), err
}

// SetMipiMaxSizeHigh writes the high byte of the maximum packet size.
func (d *Dev) SetMipiMaxSizeHigh(v uint8) error {
	return d.writeField(fldMipiMaxSizeH, uint16(v))
}

// D-PHY timing parameters. Each is a single byte in units defined by
// the vendor; example configurations take them verbatim from the
// configuration tool.

// MipiTTermEnable returns the termination enable time byte.
func (d *Dev) MipiTTermEnable() (uint8, error) {
	v, err := d.readField(fldMipiTTermEn)
	return uint8(v), err
}

// SetMipiTTermEnable writes the termination enable time byte.
func (d *Dev) SetMipiTTermEnable(v uint8) error {
	return d.writeField(fldMipiTTermEn, uint16(v))
}

// MipiTHSSettle returns the high-speed settle time byte.
func (d *Dev) MipiTHSSettle() (uint8, error) {
	v, err := d.readField(fldMipiTHSSettle)
	return uint8(v), err
}

// SetMipiTHSSettle writes the high-speed settle time byte.
func (d *Dev) SetMipiTHSSettle(v uint8) error {
	return d.writeField(fldMipiTHSSettle, uint16(v))
}

// MipiTTASurePre returns the turnaround sure time byte.
func (d *Dev) MipiTTASurePre() (uint8, error) {
	v, err := d.readField(fldMipiTTASurePre)
	return uint8(v), err
}

// SetMipiTTASurePre writes the turnaround sure time byte.
func (d *Dev) SetMipiTTASurePre(v uint8) error {
	return d.writeField(fldMipiTTASurePre, uint16(v))
}

// MipiTLPXSet returns the LP transition time byte.
func (d *Dev) MipiTLPXSet() (uint8, error) {
	v, err := d.readField(fldMipiTLPXSet)
	return uint8(v), err
}

// SetMipiTLPXSet writes the LP transition time byte.
func (d *Dev) SetMipiTLPXSet(v uint8) error {
	return d.writeField(fldMipiTLPXSet, uint16(v))
}

// MipiTClkMiss returns the clock miss detection time byte.
func (d *Dev) MipiTClkMiss() (uint8, error) {
	v, err := d.readField(fldMipiTClkMiss)
	return uint8(v), err
}

// SetMipiTClkMiss writes the clock miss detection time byte.
func (d *Dev) SetMipiTClkMiss(v uint8) error {
	return d.writeField(fldMipiTClkMiss, uint16(v))
}

// MipiInitTimeLow returns the low byte of the initialization time.
func (d *Dev) MipiInitTimeLow() (uint8, error) {
	v, err := d.readField(fldMipiInitTimeL)
	return uint8(v), err
}

// SetMipiInitTimeLow writes the low byte of the initialization time.
func (d *Dev) SetMipiInitTimeLow(v uint8) error {
	return d.writeField(fldMipiInitTimeL, uint16(v))
}

// MipiInitTimeHigh returns the high byte of the initialization time.
func (d *Dev) MipiInitTimeHigh() (uint8, error) {
	v, err := d.readField(fldMipiInitTimeH)
	return uint8(v), err
}

// SetMipiInitTimeHigh writes the high byte of the initialization time.
func (d *Dev) SetMipiInitTimeHigh(v uint8) error {
	return d.writeField(fldMipiInitTimeH, uint16(v))
}

// MipiTClkTermEnable returns the clock lane termination enable time
// byte.
func (d *Dev) MipiTClkTermEnable() (uint8, error) {
	v, err := d.readField(fldMipiTClkTermEn)
	return uint8(v), err
}

// SetMipiTClkTermEnable writes the clock lane termination enable time
// byte.
func (d *Dev) SetMipiTClkTermEnable(v uint8) error {
	return d.writeField(fldMipiTClkTermEn, uint16(v))
}

// MipiTClkSettle returns the clock lane settle time byte.
func (d *Dev) MipiTClkSettle() (uint8, error) {
	v, err := d.readField(fldMipiTClkSettle)
	return uint8(v), err
}

// SetMipiTClkSettle writes the clock lane settle time byte.
func (d *Dev) SetMipiTClkSettle(v uint8) error {
	return d.writeField(fldMipiTClkSettle, uint16(v))
}

// PDCkTermForce reports whether clock lane termination power-down is
// forced.
func (d *Dev) PDCkTermForce() (bool, error) {
	return d.getBit(fldPDCkTermForce)
}

// SetPDCkTermForce forces the clock lane termination power-down.
func (d *Dev) SetPDCkTermForce(on bool) error {
	return d.setBit(fldPDCkTermForce, on)
}

// PDCkHSRXForce reports whether the clock lane HS receiver power-down
// is forced.
func (d *Dev) PDCkHSRXForce() (bool, error) {
	return d.getBit(fldPDCkHSRXForce)
}

// SetPDCkHSRXForce forces the clock lane HS receiver power-down.
func (d *Dev) SetPDCkHSRXForce(on bool) error {
	return d.setBit(fldPDCkHSRXForce, on)
}

// MipiForce0 returns the force register byte.
func (d *Dev) MipiForce0() (uint8, error) {
	v, err := d.readField(fldMipiForce0)
	return uint8(v), err
}

// SetMipiForce0 writes the force register byte. Example configurations
// use 0x20, an undocumented value from the reference driver.
func (d *Dev) SetMipiForce0(v uint8) error {
	return d.writeField(fldMipiForce0, uint16(v))
}
