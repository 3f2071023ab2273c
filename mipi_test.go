package icn6211

import (
	"errors"
	"testing"
)

func TestMipiLaneNum(t *testing.T) {
	b := &regBank{}
	b.regs[regDSICtrl] = 0x28 // undocumented upper bits as left by the chip
	d := testDev(t, b)

	if err := d.SetMipiLaneNum(FourLane); err != nil {
		t.Fatalf("SetMipiLaneNum() = %v", err)
	}
	// Only the 2-bit lane field changes.
	if b.regs[regDSICtrl] != 0x2B {
		t.Errorf("DSI ctrl = 0x%02X, want 0x2B", b.regs[regDSICtrl])
	}
	if n, err := d.MipiLaneNum(); err != nil || n != FourLane {
		t.Errorf("MipiLaneNum() = %v, %v; want FourLane", n, err)
	}
}

func TestMipiPNSwap(t *testing.T) {
	b := &regBank{}
	d := testDev(t, b)

	if err := d.SetMipiClkPNSwap(true); err != nil {
		t.Fatalf("SetMipiClkPNSwap() = %v", err)
	}
	if err := d.SetMipiDataPNSwap(0, true); err != nil {
		t.Fatalf("SetMipiDataPNSwap(0) = %v", err)
	}
	if err := d.SetMipiDataPNSwap(3, true); err != nil {
		t.Fatalf("SetMipiDataPNSwap(3) = %v", err)
	}
	if b.regs[regMipiPNSwap] != 0x19 {
		t.Errorf("PN swap register = 0x%02X, want 0x19", b.regs[regMipiPNSwap])
	}
	if on, err := d.MipiDataPNSwap(3); err != nil || !on {
		t.Errorf("MipiDataPNSwap(3) = %v, %v; want true", on, err)
	}
	if on, _ := d.MipiDataPNSwap(1); on {
		t.Error("MipiDataPNSwap(1) = true, want false")
	}
	if err := d.SetMipiDataPNSwap(4, true); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetMipiDataPNSwap(4) = %v, want ErrOutOfRange", err)
	}
}

func TestMipiPhyTimingBytes(t *testing.T) {
	b := &regBank{}
	d := testDev(t, b)

	tests := []struct {
		name string
		set  func(uint8) error
		get  func() (uint8, error)
		reg  uint8
	}{
		{"term enable", d.SetMipiTTermEnable, d.MipiTTermEnable, regMipiTTermEn},
		{"hs settle", d.SetMipiTHSSettle, d.MipiTHSSettle, regMipiTHSSettle},
		{"ta sure pre", d.SetMipiTTASurePre, d.MipiTTASurePre, regMipiTTASurePre},
		{"lpx set", d.SetMipiTLPXSet, d.MipiTLPXSet, regMipiTLPXSet},
		{"clk miss", d.SetMipiTClkMiss, d.MipiTClkMiss, regMipiTClkMiss},
		{"init time low", d.SetMipiInitTimeLow, d.MipiInitTimeLow, regMipiInitTimeL},
		{"init time high", d.SetMipiInitTimeHigh, d.MipiInitTimeHigh, regMipiInitTimeH},
		{"clk term enable", d.SetMipiTClkTermEnable, d.MipiTClkTermEnable, regMipiTClkTermEn},
		{"clk settle", d.SetMipiTClkSettle, d.MipiTClkSettle, regMipiTClkSettle},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := uint8(0x40 + i)
			if err := tt.set(v); err != nil {
				t.Fatalf("set = %v", err)
			}
			if b.regs[tt.reg] != v {
				t.Errorf("register 0x%02X = 0x%02X, want 0x%02X", tt.reg, b.regs[tt.reg], v)
			}
			if got, err := tt.get(); err != nil || got != v {
				t.Errorf("get = 0x%02X, %v; want 0x%02X", got, err, v)
			}
		})
	}
}

func TestClockLanePowerDownForce(t *testing.T) {
	b := &regBank{}
	d := testDev(t, b)

	if err := d.SetPDCkTermForce(true); err != nil {
		t.Fatalf("SetPDCkTermForce() = %v", err)
	}
	if err := d.SetPDCkHSRXForce(true); err != nil {
		t.Fatalf("SetPDCkHSRXForce() = %v", err)
	}
	if b.regs[regMipiPDCkLane] != 0x05 {
		t.Errorf("PD ck lane register = 0x%02X, want 0x05", b.regs[regMipiPDCkLane])
	}
	if err := d.SetPDCkTermForce(false); err != nil {
		t.Fatalf("SetPDCkTermForce(false) = %v", err)
	}
	if b.regs[regMipiPDCkLane] != 0x04 {
		t.Errorf("PD ck lane register = 0x%02X, want 0x04", b.regs[regMipiPDCkLane])
	}
}

func TestMipiForce0(t *testing.T) {
	b := &regBank{}
	d := testDev(t, b)

	if err := d.SetMipiForce0(0x20); err != nil {
		t.Fatalf("SetMipiForce0() = %v", err)
	}
	if b.regs[regMipiForce0] != 0x20 {
		t.Errorf("force register = 0x%02X, want 0x20", b.regs[regMipiForce0])
	}
	if v, err := d.MipiForce0(); err != nil || v != 0x20 {
		t.Errorf("MipiForce0() = 0x%02X, %v; want 0x20", v, err)
	}
}
