package icn6211

import "fmt"

// The PLL registers synthesize the RGB pixel clock from the selected
// reference. The divider, fraction and integer values are chip-vendor
// magic produced by the configuration tool for a given panel timing;
// this driver only moves them, it does not derive them.

// PLLVcoISel returns the VCO current selection field.
func (d *Dev) PLLVcoISel() (uint8, error) {
	v, err := d.readField(fldPLLVcoISel)
	return uint8(v), err
}

// SetPLLVcoISel writes the VCO current selection field. Example
// configurations use 0x20, an undocumented value from the reference
// driver.
func (d *Dev) SetPLLVcoISel(v uint8) error {
	return d.writeField(fldPLLVcoISel, uint16(v))
}

// PLLClkQEnabled reports whether the PLL quadrature clock output is on.
func (d *Dev) PLLClkQEnabled() (bool, error) {
	return d.getBit(fldPLLClkQEn)
}

// SetPLLClkQEnabled switches the PLL quadrature clock output.
func (d *Dev) SetPLLClkQEnabled(on bool) error {
	return d.setBit(fldPLLClkQEn, on)
}

// PLLRefSel returns the PLL reference clock selection register.
func (d *Dev) PLLRefSel() (PllRefSel, error) {
	v, err := d.readField(fldPLLRefSel)
	return PllRefSel(v), err
}

// SetPLLRefSel selects the PLL reference clock source. The whole
// register is written with the vendor encoding.
func (d *Dev) SetPLLRefSel(s PllRefSel) error {
	return d.writeField(fldPLLRefSel, uint16(s))
}

// PLLDiv returns PLL divider register n (0 to 2).
func (d *Dev) PLLDiv(n int) (uint8, error) {
	f, err := pllReg(n, fldPLLDiv0, fldPLLDiv1, fldPLLDiv2)
	if err != nil {
		return 0, err
	}
	v, err := d.readField(f)
	return uint8(v), err
}

// SetPLLDiv writes PLL divider register n (0 to 2).
func (d *Dev) SetPLLDiv(n int, v uint8) error {
	f, err := pllReg(n, fldPLLDiv0, fldPLLDiv1, fldPLLDiv2)
	if err != nil {
		return err
	}
	return d.writeField(f, uint16(v))
}

// PLLFrac returns PLL fraction register n (0 to 2).
func (d *Dev) PLLFrac(n int) (uint8, error) {
	f, err := pllReg(n, fldPLLFrac0, fldPLLFrac1, fldPLLFrac2)
	if err != nil {
		return 0, err
	}
	v, err := d.readField(f)
	return uint8(v), err
}

// SetPLLFrac writes PLL fraction register n (0 to 2).
func (d *Dev) SetPLLFrac(n int, v uint8) error {
	f, err := pllReg(n, fldPLLFrac0, fldPLLFrac1, fldPLLFrac2)
	if err != nil {
		return err
	}
	return d.writeField(f, uint16(v))
}

// PLLInt returns PLL integer register n (0 or 1).
func (d *Dev) PLLInt(n int) (uint8, error) {
	f, err := pllReg(n, fldPLLInt0, fldPLLInt1)
	if err != nil {
		return 0, err
	}
	v, err := d.readField(f)
	return uint8(v), err
}

// SetPLLInt writes PLL integer register n (0 or 1).
func (d *Dev) SetPLLInt(n int, v uint8) error {
	f, err := pllReg(n, fldPLLInt0, fldPLLInt1)
	if err != nil {
		return err
	}
	return d.writeField(f, uint16(v))
}

// PLLRefClkDivRatio returns the reference clock pre-divider field.
func (d *Dev) PLLRefClkDivRatio() (PllRefClkDivRatio, error) {
	v, err := d.readField(fldPLLRefClkDiv)
	return PllRefClkDivRatio(v), err
}

// SetPLLRefClkDivRatio writes the reference clock pre-divider field.
func (d *Dev) SetPLLRefClkDivRatio(r PllRefClkDivRatio) error {
	return d.writeField(fldPLLRefClkDiv, uint16(r))
}

// PLLRefClkExtraDivide reports whether the extra reference divider is
// enabled.
func (d *Dev) PLLRefClkExtraDivide() (bool, error) {
	return d.getBit(fldPLLRefClkExtraDiv)
}

// SetPLLRefClkExtraDivide switches the extra reference divider.
func (d *Dev) SetPLLRefClkExtraDivide(on bool) error {
	return d.setBit(fldPLLRefClkExtraDiv, on)
}

// PLLOutDivRatio returns the PLL output divider field.
func (d *Dev) PLLOutDivRatio() (PllOutDivRatio, error) {
	v, err := d.readField(fldPLLOutDiv)
	return PllOutDivRatio(v), err
}

// SetPLLOutDivRatio writes the PLL output divider field.
func (d *Dev) SetPLLOutDivRatio(r PllOutDivRatio) error {
	return d.writeField(fldPLLOutDiv, uint16(r))
}

func pllReg(n int, regs ...field) (field, error) {
	if n < 0 || n >= len(regs) {
		return field{}, fmt.Errorf("%w: PLL register index %d", ErrOutOfRange, n)
	}
	return regs[n], nil
}
