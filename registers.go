package icn6211

// Register addresses from the vendor register map. The chip exposes an
// 8-bit register space; multi-byte registers are big-endian.
const (
	regVendorID  = 0x00
	regDeviceIDH = 0x01
	regDeviceIDL = 0x02
	regVersionID = 0x03

	// Called FIRMWARE_VERSION in the datasheet, but the register
	// description documents output selection. Vendor typo.
	regOutSelConfig = 0x08
	regConfigFinish = 0x09
	regSysCtrl0     = 0x10
	regSysCtrl1     = 0x11

	regHActiveL   = 0x20
	regVActiveL   = 0x21
	regVHActiveH  = 0x22
	regHFPL       = 0x23
	regHSWL       = 0x24
	regHBPL       = 0x25
	regHFPHSWHBPH = 0x26
	regVFP        = 0x27
	regVSW        = 0x28
	regVBP        = 0x29

	regBistPol        = 0x2A
	regBistFrameTimeL = 0x31
	regBistFrameTimeH = 0x32
	regFIFOMaxAddr    = 0x33
	regSyncEventDly   = 0x34
	regHSWMin         = 0x35
	regHFPMin         = 0x36

	regPLLCtrl1  = 0x51
	regPLLCtrl6  = 0x56
	regPLLDiv0   = 0x63
	regPLLDiv1   = 0x64
	regPLLDiv2   = 0x65
	regPLLFrac0  = 0x66
	regPLLFrac1  = 0x67
	regPLLFrac2  = 0x68
	regPLLInt0   = 0x69
	regPLLInt1   = 0x6A
	regPLLRefDiv = 0x6B

	regMipiCfgPW = 0x7A
	regGPIO0Sel  = 0x7B
	regGPIO1Sel  = 0x7C
	regIRQSel    = 0x7D

	regMipiErrVectorL  = 0x80
	regMipiErrVectorH  = 0x81
	regMipiMaxSizeL    = 0x84
	regMipiMaxSizeH    = 0x85
	regDSICtrl         = 0x86
	regMipiPNSwap      = 0x87
	regMipiTTermEn     = 0x90
	regMipiTHSSettle   = 0x91
	regMipiTTASurePre  = 0x92
	regMipiTLPXSet     = 0x94
	regMipiTClkMiss    = 0x95
	regMipiInitTimeL   = 0x96
	regMipiInitTimeH   = 0x97
	regMipiTClkTermEn  = 0x99
	regMipiTClkSettle  = 0x9A
	regMipiPDCkLane    = 0xB5
	regMipiForce0      = 0xB6
)

// Field descriptors for every named field of the chip. Read-only fields
// simply have no setter method on Dev.
var (
	fldVendorID  = byteField(regVendorID)
	fldDeviceID  = wordField(regDeviceIDH)
	fldVersionID = byteField(regVersionID)

	fldOutSelConfig = byteField(regOutSelConfig)
	fldReset        = bitField(regConfigFinish, 0, 1)
	fldConfigFinish = bitField(regConfigFinish, 4, 1)

	fldFRCEn      = bitField(regSysCtrl0, 7, 1)
	fldOutBitSwap = bitField(regSysCtrl0, 4, 3)
	fldOutRGBSwap = bitField(regSysCtrl0, 0, 3)
	fldClkPhase   = bitField(regSysCtrl1, 4, 2)

	fldHActiveL  = byteField(regHActiveL)
	fldVActiveL  = byteField(regVActiveL)
	fldVHActiveH = byteField(regVHActiveH)
	fldHFPL      = byteField(regHFPL)
	fldHSWL      = byteField(regHSWL)
	fldHBPL      = byteField(regHBPL)
	// The three horizontal timing values share one high-bits register,
	// each claiming a disjoint 2-bit slot.
	fldHFPH = bitField(regHFPHSWHBPH, 4, 2)
	fldHSWH = bitField(regHFPHSWHBPH, 2, 2)
	fldHBPH = bitField(regHFPHSWHBPH, 0, 2)
	fldVFP  = byteField(regVFP)
	fldVSW  = byteField(regVSW)
	fldVBP  = byteField(regVBP)

	fldDEPol    = bitField(regBistPol, 0, 1)
	fldVSPol    = bitField(regBistPol, 1, 1)
	fldHSPol    = bitField(regBistPol, 2, 1)
	fldBistGen  = bitField(regBistPol, 3, 1)
	fldBistMode = bitField(regBistPol, 4, 4)

	fldBistFrameTimeL     = byteField(regBistFrameTimeL)
	fldBistFrameTimeH     = bitField(regBistFrameTimeH, 0, 7)
	fldBistFrameTimeForce = bitField(regBistFrameTimeH, 7, 1)
	fldFIFOMaxAddr        = byteField(regFIFOMaxAddr)
	fldSyncEventDelay     = byteField(regSyncEventDly)
	fldHSWMin             = byteField(regHSWMin)
	fldHFPMin             = byteField(regHFPMin)

	fldPLLVcoISel        = bitField(regPLLCtrl1, 0, 6)
	fldPLLClkQEn         = bitField(regPLLCtrl1, 7, 1)
	fldPLLRefSel         = byteField(regPLLCtrl6)
	fldPLLDiv0           = byteField(regPLLDiv0)
	fldPLLDiv1           = byteField(regPLLDiv1)
	fldPLLDiv2           = byteField(regPLLDiv2)
	fldPLLFrac0          = byteField(regPLLFrac0)
	fldPLLFrac1          = byteField(regPLLFrac1)
	fldPLLFrac2          = byteField(regPLLFrac2)
	fldPLLInt0           = byteField(regPLLInt0)
	fldPLLInt1           = byteField(regPLLInt1)
	fldPLLRefClkDiv      = bitField(regPLLRefDiv, 0, 4)
	fldPLLRefClkExtraDiv = bitField(regPLLRefDiv, 4, 1)
	fldPLLOutDiv         = bitField(regPLLRefDiv, 5, 3)

	fldMipiCfgPW = byteField(regMipiCfgPW)
	fldGPIO0Sel  = byteField(regGPIO0Sel)
	fldGPIO1Sel  = byteField(regGPIO1Sel)
	fldIRQSel    = byteField(regIRQSel)

	fldMipiMaxSizeL   = byteField(regMipiMaxSizeL)
	fldMipiMaxSizeH   = byteField(regMipiMaxSizeH)
	fldMipiLaneNum    = bitField(regDSICtrl, 0, 2)
	fldMipiPNSwapClk  = bitField(regMipiPNSwap, 4, 1)
	fldMipiXor        = bitField(regMipiPNSwap, 5, 1)
	fldMipiTTermEn    = byteField(regMipiTTermEn)
	fldMipiTHSSettle  = byteField(regMipiTHSSettle)
	fldMipiTTASurePre = byteField(regMipiTTASurePre)
	fldMipiTLPXSet    = byteField(regMipiTLPXSet)
	fldMipiTClkMiss   = byteField(regMipiTClkMiss)
	fldMipiInitTimeL  = byteField(regMipiInitTimeL)
	fldMipiInitTimeH  = byteField(regMipiInitTimeH)
	fldMipiTClkTermEn = byteField(regMipiTClkTermEn)
	fldMipiTClkSettle = byteField(regMipiTClkSettle)
	fldPDCkTermForce  = bitField(regMipiPDCkLane, 0, 1)
	fldPDCkHSRXForce  = bitField(regMipiPDCkLane, 2, 1)
	fldMipiForce0     = byteField(regMipiForce0)
)

// allRegisters is every known register address in dump order.
var allRegisters = []uint8{
	regVendorID, regDeviceIDH, regDeviceIDL, regVersionID,
	regOutSelConfig, regConfigFinish, regSysCtrl0, regSysCtrl1,
	regHActiveL, regVActiveL, regVHActiveH,
	regHFPL, regHSWL, regHBPL, regHFPHSWHBPH,
	regVFP, regVSW, regVBP,
	regBistPol, regBistFrameTimeL, regBistFrameTimeH,
	regFIFOMaxAddr, regSyncEventDly, regHSWMin, regHFPMin,
	regPLLCtrl1, regPLLCtrl6,
	regPLLDiv0, regPLLDiv1, regPLLDiv2,
	regPLLFrac0, regPLLFrac1, regPLLFrac2,
	regPLLInt0, regPLLInt1, regPLLRefDiv,
	regMipiCfgPW, regGPIO0Sel, regGPIO1Sel, regIRQSel,
	regMipiErrVectorL, regMipiErrVectorH,
	regMipiMaxSizeL, regMipiMaxSizeH, regDSICtrl, regMipiPNSwap,
	regMipiTTermEn, regMipiTHSSettle, regMipiTTASurePre,
	regMipiTLPXSet, regMipiTClkMiss,
	regMipiInitTimeL, regMipiInitTimeH,
	regMipiTClkTermEn, regMipiTClkSettle,
	regMipiPDCkLane, regMipiForce0,
}
