package ssd1306

// Transaction markers. The first byte of every bus write tells the controller
// how to interpret the rest.
const (
	commandMarker = 0x80
	dataMarker    = 0x40
)

const (
	setMemoryMode         = 0x20
	setColumnAddr         = 0x21
	setPageAddr           = 0x22
	setStartLine          = 0x40
	setContrast           = 0x81
	setChargePump         = 0x8D
	setSegmentRemap       = 0xA1
	setDisplayAllOnResume = 0xA4
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setMultiplexRatio     = 0xA8
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDetect         = 0xDB
)

// Command arguments.
const (
	memoryModeVertical = 0x01
	chargePumpOn       = 0x14
	comPinsSequential  = 0x02
	comPinsAlternative = 0x12
	clockDivDefault    = 0x80
	prechargePeriod    = 0xF1
	vcomDeselectLevel  = 0x30
	contrastMax        = 0xFF
)
