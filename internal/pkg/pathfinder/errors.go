package pathfinder

import "errors"

var ErrUnknownMetric = errors.New("unknown metric")
