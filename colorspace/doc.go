// Package colorspace converts three-channel RGB images to grayscale and
// between RGB and HSV.
//
// All planes stay in the 0..255 sample domain. HSV hue is stored as
// degrees·255/360 so that the value channel (index 2) can be equalized like
// any other 8-bit plane and the hue survives a round trip.
package colorspace
