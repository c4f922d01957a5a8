package texture

import (
	"image"
	"image/color"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/gl-waves/internal/logger"
)

// Options controls how a set of images is loaded.
type Options struct {
	MaxSize  int        // 0 keeps the source size
	Strict   bool       // fail instead of substituting placeholders
	Fallback color.RGBA // placeholder colour
}

// LoadImages decodes every path in order. In strict mode every failure is
// collected and returned together. Otherwise a failed image is replaced by
// a placeholder and logged.
func LoadImages(paths []string, opts Options) ([]*image.RGBA, error) {
	imgs := make([]*image.RGBA, len(paths))
	var errs error

	for i, path := range paths {
		img, err := DecodeFile(path)
		if err != nil {
			if opts.Strict {
				errs = multierr.Append(errs, err)
				continue
			}
			logger.Warn("texture load failed, using placeholder",
				zap.String("path", path),
				zap.Error(err),
			)
			imgs[i] = Placeholder(opts.Fallback)
			continue
		}
		imgs[i] = Fit(img, opts.MaxSize)
	}

	if errs != nil {
		return nil, errs
	}
	return imgs, nil
}
