// Package histogram implements tone analysis and histogram equalization.
//
// What:
//
//   - Analyze counts pixels per discrete level 0..255 of a single-channel
//     plane and normalizes the counts into a probability distribution.
//   - Cumulate turns a distribution into its prefix sum.
//   - Equalize remaps one channel through newLevel = round(255·C[oldLevel])
//     and returns the recomputed distribution of the result.
//   - Render draws both curves into a 256×512 chart for inspection.
//
// Color images are equalized on their value/brightness channel: convert to
// HSV upstream (see package colorspace), equalize channel 2, convert back.
//
// The distribution recomputed after Equalize generally differs from the
// input's, because the remapping is many-to-one on the 0..255 domain. Only a
// single-spike distribution is guaranteed to be a fixed point of a second
// pass; callers should not rely on that for general images.
//
// Complexity:
//
//   - Analyze: O(rows·cols), Cumulate: O(256), Equalize: O(rows·cols·channels).
//
// Errors:
//
//   - raster.ErrNilImage, raster.ErrChannelCount: malformed input.
//   - ErrChannelIndex: equalized channel outside the image.
package histogram
