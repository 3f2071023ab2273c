package icn6211

import "fmt"

// field describes one logical register field: a run of 1 to 16 bits
// inside a register spanning one or two bytes. Two-byte registers are
// big-endian on this chip family. The descriptor invariant is
// shift+width <= span*8.
type field struct {
	reg   uint8 // register address
	shift uint8 // bit offset of the field's least significant bit
	width uint8 // bit width, 1..16
	span  uint8 // register size in bytes, 1 or 2
}

// bitField describes a sub-register field of width bits at bit offset
// shift within a one-byte register.
func bitField(reg, shift, width uint8) field {
	return field{reg: reg, shift: shift, width: width, span: 1}
}

// byteField describes a whole one-byte register.
func byteField(reg uint8) field {
	return field{reg: reg, width: 8, span: 1}
}

// wordField describes a whole big-endian two-byte register.
func wordField(reg uint8) field {
	return field{reg: reg, width: 16, span: 2}
}

// readReg reads len(buf) bytes starting at reg in one transaction.
func (d *Dev) readReg(reg uint8, buf []byte) error {
	if err := d.c.Tx([]byte{reg}, buf); err != nil {
		return fmt.Errorf("icn6211: reading register 0x%02X: %w", reg, err)
	}
	return nil
}

// writeReg writes data starting at reg in one transaction.
func (d *Dev) writeReg(reg uint8, data ...byte) error {
	if err := d.c.Tx(append([]byte{reg}, data...), nil); err != nil {
		return fmt.Errorf("icn6211: writing register 0x%02X: %w", reg, err)
	}
	return nil
}

// readField reads the field's register span and extracts its bits.
func (d *Dev) readField(f field) (uint16, error) {
	buf := make([]byte, f.span)
	if err := d.readReg(f.reg, buf); err != nil {
		return 0, err
	}
	raw := uint16(buf[0])
	if f.span == 2 {
		raw = raw<<8 | uint16(buf[1])
	}
	return raw >> f.shift & uint16(uint32(1)<<f.width-1), nil
}

// writeField writes v into the field. The value is range-checked before
// any bus transaction. Fields covering the whole register span are
// written directly; narrower fields go through a read-modify-write so
// neighbouring bits are preserved.
func (d *Dev) writeField(f field, v uint16) error {
	if uint32(v) >= uint32(1)<<f.width {
		return fmt.Errorf("%w: 0x%X in %d-bit field at register 0x%02X", ErrOutOfRange, v, f.width, f.reg)
	}
	if f.width == f.span*8 {
		if f.span == 2 {
			return d.writeReg(f.reg, byte(v>>8), byte(v))
		}
		return d.writeReg(f.reg, byte(v))
	}
	buf := make([]byte, f.span)
	if err := d.readReg(f.reg, buf); err != nil {
		return err
	}
	raw := uint16(buf[0])
	if f.span == 2 {
		raw = raw<<8 | uint16(buf[1])
	}
	mask := uint16(uint32(1)<<f.width-1) << f.shift
	raw = raw&^mask | v<<f.shift
	if f.span == 2 {
		return d.writeReg(f.reg, byte(raw>>8), byte(raw))
	}
	return d.writeReg(f.reg, byte(raw))
}

// getBit reads a one-bit field as a bool.
func (d *Dev) getBit(f field) (bool, error) {
	v, err := d.readField(f)
	return v != 0, err
}

// setBit writes a one-bit field from a bool.
func (d *Dev) setBit(f field, on bool) error {
	var v uint16
	if on {
		v = 1
	}
	return d.writeField(f, v)
}
