package histogram

import "errors"

var (
	// ErrChannelIndex indicates the selected channel does not exist in the image.
	ErrChannelIndex = errors.New("histogram: channel index out of range")
)
