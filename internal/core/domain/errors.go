package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIdentity is the class of errors returned when the given donor
	// reference can't be used as a ledger key.
	ErrInvalidIdentity = errors.New("invalid identity")
	// ErrMissingResource is the class of errors returned when a named resource
	// is used before being created.
	ErrMissingResource = errors.New("missing resource")
	// ErrResourceUnavailable is the class of errors returned when a resource
	// referenced by a named key can't be found in storage.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrInvalidKeyVariant is returned when a key is not of account variant.
	ErrInvalidKeyVariant = fmt.Errorf(
		"%w: key must be of account variant", ErrInvalidIdentity,
	)
	// ErrMalformedKey is returned when a key can't be parsed.
	ErrMalformedKey = fmt.Errorf("%w: malformed key", ErrInvalidIdentity)
	// ErrMissingFundRaisingPurseURef is returned when the fundraising purse
	// has not been created yet.
	ErrMissingFundRaisingPurseURef = fmt.Errorf(
		"%w: fundraising purse uref not found", ErrMissingResource,
	)
	// ErrMissingLedgerSeedURef is returned when the donation ledger has not
	// been created yet.
	ErrMissingLedgerSeedURef = fmt.Errorf(
		"%w: ledger seed uref not found", ErrMissingResource,
	)
	// ErrPurseNotFound is returned when no purse is stored at the address of
	// the given uref.
	ErrPurseNotFound = fmt.Errorf("%w: purse not found", ErrResourceUnavailable)
	// ErrLedgerNotFound is returned when no ledger is stored at the address
	// of the given uref.
	ErrLedgerNotFound = fmt.Errorf("%w: ledger not found", ErrResourceUnavailable)

	// ErrMalformedURef is returned when a uref string can't be parsed.
	ErrMalformedURef = errors.New("malformed uref")
	// ErrForbidden is returned when a uref lacks the access rights required by
	// the operation.
	ErrForbidden = errors.New("uref access rights forbid the operation")
	// ErrInvalidAmount is returned for non-positive or fractional amounts and
	// for those exceeding MaxAmountDigits digits.
	ErrInvalidAmount = errors.New("amount must be a positive integer")
	// ErrInsufficientFunds is returned when withdrawing more than the purse
	// balance.
	ErrInsufficientFunds = errors.New("purse balance is insufficient")
	// ErrInvalidPage is returned for pages out of the supported bounds.
	ErrInvalidPage = errors.New("invalid page")
	// ErrCounterOverflow is returned when incrementing a counter would wrap.
	ErrCounterOverflow = errors.New("donation counter overflow")
	// ErrNamedKeyAlreadyExists is returned when adding a named key that is
	// already bound.
	ErrNamedKeyAlreadyExists = errors.New("named key already exists")
	// ErrAlreadyInitialized is returned when initializing the fundraiser twice.
	ErrAlreadyInitialized = errors.New("fundraiser is already initialized")
)
