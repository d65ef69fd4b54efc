package trade

import "errors"

var (
	// ErrInvalidTrade means the offer pair failed the fairness rules.
	ErrInvalidTrade = errors.New("trade is not valid based on game rules")
	// ErrTradeNotFound means the trade id does not exist.
	ErrTradeNotFound = errors.New("trade not found")
	// ErrForbidden means the caller is not the trade's responder.
	ErrForbidden = errors.New("not authorized for this trade")
	// ErrAlreadyProcessed means the trade already left the pending state.
	ErrAlreadyProcessed = errors.New("trade already processed")
	// ErrInvalidParticipants means the requester or responder no longer exists.
	ErrInvalidParticipants = errors.New("invalid trade participants")
)
