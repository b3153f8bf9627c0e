package transform

import "errors"

// ErrCropOutOfRange reports a crop request whose clamped region cannot be
// materialized from the source image. The message text is part of the
// public contract.
var ErrCropOutOfRange = errors.New("crop rectangle is larger than the input image")

// ErrAllocation reports a transformation whose parameters describe a buffer
// that cannot be allocated, such as a resize to zero or negative dimensions.
var ErrAllocation = errors.New("cannot allocate image buffer")
