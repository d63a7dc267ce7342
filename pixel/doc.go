// Package pixel implements the monochrome color and image types used by page-addressed OLED panels.
//
// The types are compatible with Go's native [color.Color] and [image.Image] / [draw.Image] interfaces.
package pixel
