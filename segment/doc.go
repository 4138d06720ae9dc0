// Package segment finds connected runs of pixels at one level in a
// single-channel plane, such as the black edge pixels produced by
// edge.MarrHildreth, and removes the runs that are too short.
//
// What:
//
//   - Find labels the connected components ("segments") of pixels equal to a
//     level, with 4- or 8-connectivity.
//   - Prune repaints every segment smaller than a minimum size.
//
// Complexity:
//
//   - Find:  O(rows×cols×d), Memory: O(rows×cols)   (d = 4 or 8 neighbors).
//   - Prune: same as Find plus O(pruned pixels).
//
// Errors:
//
//   - raster.ErrNilImage, raster.ErrChannelCount for a malformed plane.
//   - ErrConnectivity for a Connectivity other than Conn4 or Conn8.
package segment
