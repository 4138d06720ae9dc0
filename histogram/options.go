// SPDX-License-Identifier: MIT

package histogram

// DefaultChannel selects the last channel of the image: V for HSV input,
// the only plane for gray input.
const DefaultChannel = -1

const panicChannelInvalid = "histogram: WithChannel: channel must be >= 0"

// Option mutates the equalizer configuration.
type Option func(*Options)

// Options holds the resolved equalizer configuration.
type Options struct {
	channel int // DefaultChannel or an explicit index
}

// WithChannel selects the channel to analyze and remap. Panics on a negative
// index (programmer error); an index beyond the image's channels is reported
// by Equalize as ErrChannelIndex.
func WithChannel(ch int) Option {
	if ch < 0 {
		panic(panicChannelInvalid)
	}

	return func(o *Options) { o.channel = ch }
}

func gatherOptions(opts ...Option) Options {
	o := Options{channel: DefaultChannel}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// resolve returns the concrete channel index for an image with n channels.
func (o Options) resolve(n int) (int, error) {
	ch := o.channel
	if ch == DefaultChannel {
		ch = n - 1
	}
	if ch < 0 || ch >= n {
		return 0, ErrChannelIndex
	}

	return ch, nil
}
