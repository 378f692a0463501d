package drv2605l

// Register addresses
const (
	Status          = 0x00
	ModeReg         = 0x01
	RTPInput        = 0x02
	LibrarySel      = 0x03
	WaveformSeq     = 0x04 // first of 8 contiguous sequencer slots
	GoReg           = 0x0C
	OverdriveOffset = 0x0D
	SustainPos      = 0x0E
	SustainNeg      = 0x0F
	BrakeTime       = 0x10
	RatedVoltageReg = 0x16
	OverdriveReg    = 0x17
	FeedbackControl = 0x1A
	Control1        = 0x1B
	Control2        = 0x1C
	Control3        = 0x1D
)

// Mode register fields
const (
	DevReset byte = (1 << 7)
	Standby  byte = (1 << 6)

	ModeInternalTrigger byte = 0x00
	ModeExternalEdge    byte = 0x01
	ModeExternalLevel   byte = 0x02
	ModePWMAnalog       byte = 0x03
	ModeRealTime        byte = 0x05

	modeMask byte = 0b0000_0111
)

// Status register fields
const (
	DiagResult byte = (1 << 3)
	OverTemp   byte = (1 << 1)
	OCDetect   byte = (1 << 0)

	deviceIDShift = 5
	deviceIDMask  = 0x07
)

// Feedback control register fields
const (
	motorLRA byte = (1 << 7)
	motorERM byte = 0x00

	motorMask byte = (1 << 7)
)

// Waveform library identifiers for the library selection register.
const (
	LibEmpty byte = iota
	LibA
	LibB
	LibC
	LibD
	LibE
	LibLRA
)

// Device constants
const (
	// Addr is the fixed 7-bit bus address of the DRV2605L.
	Addr = 0x5A
	// DeviceID is the part identifier reported in the status register
	// (bits 7:5) by a DRV2605L.
	DeviceID = 0x07

	// seqSlots is the number of waveform sequencer registers.
	seqSlots = 8
)
