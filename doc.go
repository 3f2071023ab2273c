// Package icn6211 controls a Chipone ICN6211 MIPI DSI to TTL RGB
// display bridge via I²C.
//
// The ICN6211 converts a MIPI DSI video stream (1 to 4 data lanes) into
// parallel TTL RGB output for panels up to 4095×4095 pixels. The host
// does not send pixel data over I²C; the register bus only carries
// configuration: timing generator, PLL, MIPI D-PHY parameters, output
// format, test pattern generator and error reporting.
//
// # Features
//
//   - Typed accessors for the whole vendor register map
//   - Composite resolution and porch/sync setters that split values
//     across the shared high-bits registers
//   - Built-in test pattern generator control (solid, chessboard,
//     colour bar, colour switch)
//   - 16-bit MIPI error vector read and clear
//   - Full register dump for diagnostics
//
// # Hardware Connection
//
// Connect the bridge's configuration interface to your system via I²C:
//
//	Bridge Pin → System Pin
//	GND        → GND
//	VCC        → 3.3V
//	SCL        → I²C Clock
//	SDA        → I²C Data
//
// The chip answers on address 0x2C unless strapped otherwise. The DSI
// lanes connect to the video source and are not touched by this driver.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/icn6211"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Create device
//		dev, _ := icn6211.NewI2C(bus, nil)
//
//		// Configure an 800x480 panel
//		dev.SetResolution(800, 480)
//		dev.SetHorizontalFrontPorch(40)
//		dev.SetHorizontalSyncWidth(40)
//		dev.SetHorizontalBackPorch(40)
//		dev.SetVerticalFrontPorch(10)
//		dev.SetVerticalSyncWidth(10)
//		dev.SetVerticalBackPorch(10)
//		dev.SetMipiLaneNum(icn6211.OneLane)
//
//		// Commit: timing takes effect once the config bit is set
//		if err := dev.SaveConfig(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Caveats
//
// The resolution and horizontal porch/sync getters return the value
// cached at the last setter call; the chip is never read back for them.
// Writing those registers directly, or resetting the chip, leaves the
// cache stale.
//
// A Dev must be owned by one goroutine at a time. Composite setters
// issue several bus transactions with no atomicity; callers needing
// concurrency must serialize whole operations, not single transfers.
//
// Several register values (the 0x43 test mode enable byte, the
// front-porch minimum clamp, the PLL VCO and MIPI force values used in
// the example) are opaque constants from the vendor configuration tool
// and reference driver. They are preserved verbatim, not derived.
package icn6211
