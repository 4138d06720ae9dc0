package app

import (
	"github.com/katalvlaran/pixlath/imageio"
	"github.com/katalvlaran/pixlath/internal/logging"
	"github.com/katalvlaran/pixlath/raster"
)

// load reads path as a raster with the given channel count, downscaled to
// the configured maximum size.
func (st *state) load(path string, channels int) (*raster.Image, error) {
	m, err := imageio.Open(path)
	if err != nil {
		return nil, err
	}
	if n := st.cfg.MaxSize; n > 0 {
		m = imageio.Fit(m, n, n)
	}
	img, err := imageio.FromImage(m, channels)
	if err != nil {
		return nil, err
	}
	logging.DebugWithComponent(logging.ComponentIO, "loaded",
		"path", path, "rows", img.Rows(), "cols", img.Cols(), "channels", img.Channels())

	return img, nil
}

// store saturates img to 8 bits and writes it to path.
func (st *state) store(path string, img *raster.Image) error {
	m, err := imageio.ToImage(img)
	if err != nil {
		return err
	}
	if err := imageio.Save(path, m); err != nil {
		return err
	}
	logging.InfoWithComponent(logging.ComponentIO, "saved",
		"path", path, "rows", img.Rows(), "cols", img.Cols(), "channels", img.Channels())

	return nil
}
