package icn6211

import "strings"

// BistMode selects the output of the built-in test pattern generator.
type BistMode uint8

const (
	BistDisable         BistMode = 0x00
	BistMono            BistMode = 0x01
	BistMonoColorBorder BistMode = 0x02
	BistChessboard      BistMode = 0x03
	BistColorBar        BistMode = 0x04
	BistColorSwitch     BistMode = 0x05
)

// OutRGBSwap selects the colour channel order on the RGB output bus.
type OutRGBSwap uint8

const (
	OrderRGB OutRGBSwap = 0x00
	OrderRBG OutRGBSwap = 0x01
	OrderGRB OutRGBSwap = 0x02
	OrderGBR OutRGBSwap = 0x03
	OrderBRG OutRGBSwap = 0x04
	OrderBGR OutRGBSwap = 0x05
)

// OutBitSwap selects how panel data bits map onto the output pins.
type OutBitSwap uint8

const (
	BitSwap666Straight        OutBitSwap = 0x00 // 666: bits 5:0 to pins 5:0
	BitSwap666Reversed        OutBitSwap = 0x01 // 666: bits 5:0 to pins 0:5
	BitSwap666Shifted         OutBitSwap = 0x02 // 666: bits 7:2 to pins 5:0
	BitSwap666ShiftedReversed OutBitSwap = 0x03 // 666: bits 7:2 to pins 0:5
	BitSwap888Straight        OutBitSwap = 0x04 // 888: bits 7:0 to pins 7:0
	BitSwap888Reversed        OutBitSwap = 0x05 // 888: bits 7:0 to pins 0:7
)

// MipiLaneNum selects how many DSI data lanes the host drives.
type MipiLaneNum uint8

const (
	OneLane   MipiLaneNum = 0x00
	TwoLane   MipiLaneNum = 0x01
	ThreeLane MipiLaneNum = 0x02
	FourLane  MipiLaneNum = 0x03
)

// PllRefSel selects the PLL reference clock source. The values are
// whole-register encodings taken from the vendor configuration tool.
type PllRefSel uint8

const (
	PllRefExternal PllRefSel = 0x90
	PllRefMipiClk  PllRefSel = 0x92
)

// PllOutDivRatio selects the PLL output divider, dividing by 2^n.
type PllOutDivRatio uint8

const (
	PllOutDiv1  PllOutDivRatio = 0x00
	PllOutDiv2  PllOutDivRatio = 0x01
	PllOutDiv4  PllOutDivRatio = 0x02
	PllOutDiv8  PllOutDivRatio = 0x03
	PllOutDiv16 PllOutDivRatio = 0x04
)

// PllRefClkDivRatio selects the reference clock pre-divider, dividing
// by n+1.
type PllRefClkDivRatio uint8

const (
	PllRefClkDiv1 PllRefClkDivRatio = 0x00
	PllRefClkDiv2 PllRefClkDivRatio = 0x01
	PllRefClkDiv3 PllRefClkDivRatio = 0x02
	PllRefClkDiv4 PllRefClkDivRatio = 0x03
	PllRefClkDiv5 PllRefClkDivRatio = 0x04
	PllRefClkDiv6 PllRefClkDivRatio = 0x05
	PllRefClkDiv7 PllRefClkDivRatio = 0x06
	PllRefClkDiv8 PllRefClkDivRatio = 0x07
)

// ClkPhase selects the output pixel clock phase in quarter steps.
type ClkPhase uint8

const (
	ClkPhase0        ClkPhase = 0x00
	ClkPhaseQuarter  ClkPhase = 0x01
	ClkPhaseHalf     ClkPhase = 0x02
	ClkPhase3Quarter ClkPhase = 0x03
)

// ErrorVector is the 16-bit MIPI receiver fault mask. Bits 0 to 7 live
// in the low error vector register, bits 8 to 15 in the high one. The
// hardware sets bits asynchronously; software reads them on demand and
// clears them by writing zero.
type ErrorVector uint16

const (
	FaultSoT                ErrorVector = 1 << 0  // start of transmission error
	FaultSoTSync            ErrorVector = 1 << 1  // SoT sync not recovered
	FaultEoTSync            ErrorVector = 1 << 2  // end of transmission sync error
	FaultEscapeEntry        ErrorVector = 1 << 3  // escape mode entry command error
	FaultLPTransmitSync     ErrorVector = 1 << 4  // low-power transmit sync error
	FaultPeripheralTimeout  ErrorVector = 1 << 5  // HS receive timeout
	FaultFalseControl       ErrorVector = 1 << 6
	FaultContention         ErrorVector = 1 << 7
	FaultECCSingle          ErrorVector = 1 << 8 // single-bit ECC error, corrected
	FaultECCMulti           ErrorVector = 1 << 9 // multi-bit ECC error, not corrected
	FaultChecksum           ErrorVector = 1 << 10
	FaultDataType           ErrorVector = 1 << 11 // DSI data type not recognized
	FaultVCID               ErrorVector = 1 << 12 // DSI virtual channel ID invalid
	FaultTransmissionLength ErrorVector = 1 << 13
	FaultReserved14         ErrorVector = 1 << 14
	FaultProtocolViolation  ErrorVector = 1 << 15
)

// Has reports whether all fault bits in f are set.
func (e ErrorVector) Has(f ErrorVector) bool {
	return e&f == f
}

var faultNames = []struct {
	mask ErrorVector
	name string
}{
	{FaultSoT, "SoT"},
	{FaultSoTSync, "SoTSync"},
	{FaultEoTSync, "EoTSync"},
	{FaultEscapeEntry, "EscapeEntry"},
	{FaultLPTransmitSync, "LPTransmitSync"},
	{FaultPeripheralTimeout, "PeripheralTimeout"},
	{FaultFalseControl, "FalseControl"},
	{FaultContention, "Contention"},
	{FaultECCSingle, "ECCSingle"},
	{FaultECCMulti, "ECCMulti"},
	{FaultChecksum, "Checksum"},
	{FaultDataType, "DataType"},
	{FaultVCID, "VCID"},
	{FaultTransmissionLength, "TransmissionLength"},
	{FaultReserved14, "Reserved14"},
	{FaultProtocolViolation, "ProtocolViolation"},
}

// String returns the set fault names joined by "|", or "none".
func (e ErrorVector) String() string {
	if e == 0 {
		return "none"
	}
	var names []string
	for _, f := range faultNames {
		if e&f.mask != 0 {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, "|")
}
