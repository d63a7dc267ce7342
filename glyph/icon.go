package glyph

// Icon identifiers.
const (
	IconFull  = iota // filled circle
	IconHalf         // half filled circle
	IconEmpty        // circle outline
)

// Icons is the icon table, indexed by icon id * Size.
var Icons = columns([][Size]byte{
	IconFull:  {0x3c, 0x7e, 0xff, 0xff, 0xff, 0xff, 0x7e, 0x3c},
	IconHalf:  {0x3c, 0x4e, 0x8f, 0x8f, 0x8f, 0x8f, 0x4e, 0x3c},
	IconEmpty: {0x3c, 0x42, 0x81, 0x81, 0x81, 0x81, 0x42, 0x3c},
})
