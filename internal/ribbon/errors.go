package ribbon

import "errors"

var (
	// ErrNoChain indicates a trigger addressed a chain that does not exist.
	ErrNoChain = errors.New("ribbon: no chain at index")

	// ErrMissingAnchor indicates a chain endpoint has no anchor.
	ErrMissingAnchor = errors.New("ribbon: missing anchor")
)
