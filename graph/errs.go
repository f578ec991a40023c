package graph

import "errors"

var (
	ErrConstInEncoder    = errors.New("constant reached the graph encoder")
	ErrMarkerInEncoder   = errors.New("marker reached the graph encoder")
	ErrUnsupportedAction = errors.New("unsupported value action")
	ErrWideOr            = errors.New("disjunction is not binary")
)
