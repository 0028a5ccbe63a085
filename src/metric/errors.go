package metric

import "errors"

// ErrEmptyInput is returned by every estimator when the residual array is
// empty; the median of an empty sample is undefined.
var ErrEmptyInput = errors.New("metric: empty residual array")
