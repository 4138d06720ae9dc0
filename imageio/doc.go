// Package imageio moves pictures between files, the standard image types and
// raster.Image.
//
// Decoding accepts PNG, JPEG and GIF from the standard library plus BMP, TIFF
// and WEBP through golang.org/x/image. Encoding is chosen from the file
// extension (.png, .jpg/.jpeg, .bmp). Fit downscales large inputs before
// processing, and ReferenceDither runs an independent Floyd–Steinberg engine
// for side-by-side comparison with package diffusion.
package imageio
