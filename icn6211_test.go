package icn6211

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/physic"
)

// regBank is an in-memory register file behind the i2c.Bus interface.
// The first written byte of each transaction selects the register, as
// on the real chip.
type regBank struct {
	regs [256]byte
	txs  int
	fail error
}

func (b *regBank) String() string {
	return "regbank"
}

func (b *regBank) SetSpeed(f physic.Frequency) error {
	return nil
}

func (b *regBank) Tx(addr uint16, w, r []byte) error {
	b.txs++
	if b.fail != nil {
		return b.fail
	}
	if len(w) == 0 {
		return errors.New("regbank: transaction without register address")
	}
	reg := int(w[0])
	for i, v := range w[1:] {
		b.regs[(reg+i)&0xFF] = v
	}
	for i := range r {
		r[i] = b.regs[(reg+i)&0xFF]
	}
	return nil
}

func testDev(t *testing.T, b *regBank) *Dev {
	t.Helper()
	d, err := NewI2C(b, nil)
	if err != nil {
		t.Fatalf("NewI2C() = %v", err)
	}
	return d
}

func TestNewI2C(t *testing.T) {
	tests := []struct {
		name    string
		opts    *Opts
		wantErr bool
	}{
		{"nil options (default address)", nil, false},
		{"explicit default address", &Opts{Addr: 0x2C}, false},
		{"alternate address", &Opts{Addr: 0x2D}, false},
		{"address beyond 7 bits", &Opts{Addr: 0x80}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewI2C(&regBank{}, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewI2C() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIdentification(t *testing.T) {
	b := &regBank{}
	b.regs[regVendorID] = 0xC1
	b.regs[regDeviceIDH] = 0x62
	b.regs[regDeviceIDL] = 0x11
	b.regs[regVersionID] = 0x03
	d := testDev(t, b)

	if v, err := d.VendorID(); err != nil || v != 0xC1 {
		t.Errorf("VendorID() = 0x%02X, %v; want 0xC1", v, err)
	}
	// Two-byte registers are big-endian: the register at the lower
	// address holds the high byte.
	if v, err := d.DeviceID(); err != nil || v != 0x6211 {
		t.Errorf("DeviceID() = 0x%04X, %v; want 0x6211", v, err)
	}
	if v, err := d.VersionID(); err != nil || v != 0x03 {
		t.Errorf("VersionID() = 0x%02X, %v; want 0x03", v, err)
	}
}

func TestSoftResetAndSaveConfig(t *testing.T) {
	b := &regBank{}
	d := testDev(t, b)

	if err := d.SaveConfig(); err != nil {
		t.Fatalf("SaveConfig() = %v", err)
	}
	if b.regs[regConfigFinish] != 0x10 {
		t.Errorf("config register = 0x%02X, want 0x10", b.regs[regConfigFinish])
	}
	if err := d.SoftReset(); err != nil {
		t.Fatalf("SoftReset() = %v", err)
	}
	// Read-modify-write: the commit bit survives setting the reset bit.
	if b.regs[regConfigFinish] != 0x11 {
		t.Errorf("config register = 0x%02X, want 0x11", b.regs[regConfigFinish])
	}
}

func TestErrorVector(t *testing.T) {
	b := &regBank{}
	b.regs[regMipiErrVectorL] = 0x01 // bit 0
	b.regs[regMipiErrVectorH] = 0x02 // bit 9
	d := testDev(t, b)

	ev, err := d.ErrorVector()
	if err != nil {
		t.Fatalf("ErrorVector() = %v", err)
	}
	if ev != 0x0201 {
		t.Errorf("ErrorVector() = 0x%04X, want 0x0201", uint16(ev))
	}
	if !ev.Has(FaultSoT) || !ev.Has(FaultECCMulti) {
		t.Errorf("Has() missing expected faults in %v", ev)
	}
	if ev.Has(FaultChecksum) {
		t.Errorf("Has(FaultChecksum) = true in %v", ev)
	}
	if got := ev.String(); got != "SoT|ECCMulti" {
		t.Errorf("String() = %q, want %q", got, "SoT|ECCMulti")
	}
	if got := ErrorVector(0).String(); got != "none" {
		t.Errorf("String() = %q, want %q", got, "none")
	}
}

func TestErrorFlagReadsSingleRegister(t *testing.T) {
	b := &regBank{}
	b.regs[regMipiErrVectorH] = 0x02
	d := testDev(t, b)

	b.txs = 0
	on, err := d.ErrorFlag(FaultECCMulti)
	if err != nil || !on {
		t.Fatalf("ErrorFlag(FaultECCMulti) = %v, %v; want true", on, err)
	}
	if b.txs != 1 {
		t.Errorf("transactions = %d, want 1", b.txs)
	}
	if on, _ := d.ErrorFlag(FaultSoT); on {
		t.Error("ErrorFlag(FaultSoT) = true, want false")
	}
}

func TestClearErrors(t *testing.T) {
	b := &regBank{}
	b.regs[regMipiErrVectorL] = 0xFF
	b.regs[regMipiErrVectorH] = 0xFF
	d := testDev(t, b)

	b.txs = 0
	if err := d.ClearErrors(); err != nil {
		t.Fatalf("ClearErrors() = %v", err)
	}
	if b.txs != 1 {
		t.Errorf("transactions = %d, want 1", b.txs)
	}
	if b.regs[regMipiErrVectorL] != 0 || b.regs[regMipiErrVectorH] != 0 {
		t.Errorf("error registers = 0x%02X 0x%02X, want both zero",
			b.regs[regMipiErrVectorL], b.regs[regMipiErrVectorH])
	}
	ev, err := d.ErrorVector()
	if err != nil || ev != 0 {
		t.Errorf("ErrorVector() after clear = 0x%04X, %v; want 0", uint16(ev), err)
	}
}

func TestDumpRegisters(t *testing.T) {
	b := &regBank{}
	b.regs[regVendorID] = 0xC1
	b.regs[regMipiForce0] = 0x20
	d := testDev(t, b)

	b.txs = 0
	dump, err := d.DumpRegisters()
	if err != nil {
		t.Fatalf("DumpRegisters() = %v", err)
	}
	if len(dump) != len(allRegisters) {
		t.Fatalf("len(dump) = %d, want %d", len(dump), len(allRegisters))
	}
	if b.txs != len(allRegisters) {
		t.Errorf("transactions = %d, want %d", b.txs, len(allRegisters))
	}
	if dump[0] != (RegisterValue{Addr: regVendorID, Value: 0xC1}) {
		t.Errorf("dump[0] = %+v, want {0x00 0xC1}", dump[0])
	}
	last := dump[len(dump)-1]
	if last != (RegisterValue{Addr: regMipiForce0, Value: 0x20}) {
		t.Errorf("dump[last] = %+v, want {0xB6 0x20}", last)
	}
}

func TestDumpRegistersTransportFailure(t *testing.T) {
	b := &regBank{fail: errors.New("bus timeout")}
	d := testDev(t, b)

	if _, err := d.DumpRegisters(); err == nil {
		t.Error("DumpRegisters() = nil, want transport error")
	}
}

func TestTransportFailurePropagates(t *testing.T) {
	busErr := errors.New("no ack")
	b := &regBank{fail: busErr}
	d := testDev(t, b)

	_, err := d.VendorID()
	if !errors.Is(err, busErr) {
		t.Errorf("VendorID() error = %v, want wrapped %v", err, busErr)
	}
	err = d.SetSyncEventDelay(128)
	if !errors.Is(err, busErr) {
		t.Errorf("SetSyncEventDelay() error = %v, want wrapped %v", err, busErr)
	}
}
