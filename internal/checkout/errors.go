package checkout

import "errors"

var (
	ErrEmptyTourID      = errors.New("please choose a tour to book")
	ErrMissingSessionID = errors.New("checkout session has no id")
	ErrRedirect         = errors.New("could not open the checkout page")
)
