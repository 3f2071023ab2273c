package icn6211

import "fmt"

// SetResolution programs the active display area. width and height may
// each be up to 4095 pixels. Their low bytes go to dedicated registers;
// the ninth and higher bits of both share one register, width in the
// low nibble and height in the high nibble. The three writes are issued
// in that order with no atomicity, so a transport failure can leave the
// chip partially updated.
func (d *Dev) SetResolution(width, height int) error {
	if width < 0 || width > 0xFFF || height < 0 || height > 0xFFF {
		return fmt.Errorf("%w: resolution %dx%d", ErrOutOfRange, width, height)
	}
	d.width, d.height = width, height
	if err := d.writeField(fldHActiveL, uint16(width&0xFF)); err != nil {
		return err
	}
	if err := d.writeField(fldVActiveL, uint16(height&0xFF)); err != nil {
		return err
	}
	return d.writeField(fldVHActiveH, uint16(width>>8|height>>8<<4))
}

// Resolution returns the last values passed to SetResolution. The chip
// is not read back, so the result is stale after a reset or a direct
// register write.
func (d *Dev) Resolution() (width, height int) {
	return d.width, d.height
}

// minPorch mirrors the vendor configuration tool: the minimum register
// tracks the porch value unless it needs more than one byte, or is
// exactly 0x80, in which case it is clamped to 0xFF. The 0x80 exception
// is not documented by the vendor.
func minPorch(v int) uint16 {
	if v <= 0xFF && v != 0x80 {
		return uint16(v)
	}
	return 0xFF
}

// SetHorizontalFrontPorch programs the horizontal front porch in pixel
// clocks, up to 1023. The low byte has its own register; the two high
// bits go into the shared high-bits register. The minimum front porch
// register is kept in step per minPorch.
func (d *Dev) SetHorizontalFrontPorch(v int) error {
	if v < 0 || v > 0x3FF {
		return fmt.Errorf("%w: horizontal front porch %d", ErrOutOfRange, v)
	}
	d.hfp = v
	if err := d.writeField(fldHFPL, uint16(v&0xFF)); err != nil {
		return err
	}
	if err := d.writeField(fldHFPH, uint16(v>>8)); err != nil {
		return err
	}
	return d.writeField(fldHFPMin, minPorch(v))
}

// HorizontalFrontPorch returns the last value passed to
// SetHorizontalFrontPorch without reading the chip back.
func (d *Dev) HorizontalFrontPorch() int {
	return d.hfp
}

// SetHorizontalSyncWidth programs the horizontal sync width in pixel
// clocks, up to 1023. The minimum sync width register is kept in step
// the same way as the front porch minimum.
func (d *Dev) SetHorizontalSyncWidth(v int) error {
	if v < 0 || v > 0x3FF {
		return fmt.Errorf("%w: horizontal sync width %d", ErrOutOfRange, v)
	}
	d.hsw = v
	if err := d.writeField(fldHSWL, uint16(v&0xFF)); err != nil {
		return err
	}
	if err := d.writeField(fldHSWH, uint16(v>>8)); err != nil {
		return err
	}
	return d.writeField(fldHSWMin, minPorch(v))
}

// HorizontalSyncWidth returns the last value passed to
// SetHorizontalSyncWidth without reading the chip back.
func (d *Dev) HorizontalSyncWidth() int {
	return d.hsw
}

// SetHorizontalBackPorch programs the horizontal back porch in pixel
// clocks, up to 1023. There is no matching minimum register.
func (d *Dev) SetHorizontalBackPorch(v int) error {
	if v < 0 || v > 0x3FF {
		return fmt.Errorf("%w: horizontal back porch %d", ErrOutOfRange, v)
	}
	d.hbp = v
	if err := d.writeField(fldHBPL, uint16(v&0xFF)); err != nil {
		return err
	}
	return d.writeField(fldHBPH, uint16(v>>8))
}

// HorizontalBackPorch returns the last value passed to
// SetHorizontalBackPorch without reading the chip back.
func (d *Dev) HorizontalBackPorch() int {
	return d.hbp
}

// SetVerticalFrontPorch programs the vertical front porch in lines.
func (d *Dev) SetVerticalFrontPorch(v uint8) error {
	return d.writeField(fldVFP, uint16(v))
}

// VerticalFrontPorch reads the vertical front porch back from the chip.
func (d *Dev) VerticalFrontPorch() (uint8, error) {
	v, err := d.readField(fldVFP)
	return uint8(v), err
}

// SetVerticalSyncWidth programs the vertical sync width in lines.
func (d *Dev) SetVerticalSyncWidth(v uint8) error {
	return d.writeField(fldVSW, uint16(v))
}

// VerticalSyncWidth reads the vertical sync width back from the chip.
func (d *Dev) VerticalSyncWidth() (uint8, error) {
	v, err := d.readField(fldVSW)
	return uint8(v), err
}

// SetVerticalBackPorch programs the vertical back porch in lines.
func (d *Dev) SetVerticalBackPorch(v uint8) error {
	return d.writeField(fldVBP, uint16(v))
}

// VerticalBackPorch reads the vertical back porch back from the chip.
func (d *Dev) VerticalBackPorch() (uint8, error) {
	v, err := d.readField(fldVBP)
	return uint8(v), err
}

// SyncEventDelay returns the sync event delay byte.
func (d *Dev) SyncEventDelay() (uint8, error) {
	v, err := d.readField(fldSyncEventDelay)
	return uint8(v), err
}

// SetSyncEventDelay writes the sync event delay byte.
func (d *Dev) SetSyncEventDelay(v uint8) error {
	return d.writeField(fldSyncEventDelay, uint16(v))
}

// FIFOMaxAddr returns the FIFO depth limit byte.
func (d *Dev) FIFOMaxAddr() (uint8, error) {
	v, err := d.readField(fldFIFOMaxAddr)
	return uint8(v), err
}

// SetFIFOMaxAddr writes the FIFO depth limit byte.
func (d *Dev) SetFIFOMaxAddr(v uint8) error {
	return d.writeField(fldFIFOMaxAddr, uint16(v))
}

// bistEnableMagic is written to the MIPI config password register when
// enabling the pattern generator, and zeroed again on disable. The
// value is not documented; it comes from the vendor configuration tool.
const bistEnableMagic = 0x43

// SetTestMode drives the built-in test pattern generator. A non-disable
// mode writes the pattern code, the undocumented enable byte and the
// generator enable bit. BistDisable clears the enable byte and the
// generator bit but leaves the pattern code at its last value.
func (d *Dev) SetTestMode(mode BistMode) error {
	if mode > BistColorSwitch {
		return fmt.Errorf("%w: test mode 0x%02X", ErrOutOfRange, uint8(mode))
	}
	if mode == BistDisable {
		if err := d.writeField(fldMipiCfgPW, 0x00); err != nil {
			return err
		}
		return d.setBit(fldBistGen, false)
	}
	if err := d.writeField(fldBistMode, uint16(mode)); err != nil {
		return err
	}
	if err := d.writeField(fldMipiCfgPW, bistEnableMagic); err != nil {
		return err
	}
	return d.setBit(fldBistGen, true)
}

// TestMode reads the pattern generator state back from the chip. It
// returns BistDisable whenever the generator enable bit is clear,
// regardless of the pattern code register.
func (d *Dev) TestMode() (BistMode, error) {
	on, err := d.getBit(fldBistGen)
	if err != nil || !on {
		return BistDisable, err
	}
	v, err := d.readField(fldBistMode)
	return BistMode(v), err
}

// SetBistFrameTime programs the test pattern frame time. frames must
// fit 15 bits. force makes the generator honour the programmed time
// instead of deriving it.
func (d *Dev) SetBistFrameTime(frames uint16, force bool) error {
	if frames > 0x7FFF {
		return fmt.Errorf("%w: bist frame time %d", ErrOutOfRange, frames)
	}
	if err := d.writeField(fldBistFrameTimeL, frames&0xFF); err != nil {
		return err
	}
	if err := d.writeField(fldBistFrameTimeH, frames>>8); err != nil {
		return err
	}
	return d.setBit(fldBistFrameTimeForce, force)
}
