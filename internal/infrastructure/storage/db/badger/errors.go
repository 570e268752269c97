package dbbadger

import "errors"

var (
	// ErrPurseAlreadyExists is returned when adding a purse twice.
	ErrPurseAlreadyExists = errors.New("purse already exists")
	// ErrLedgerAlreadyExists is returned when adding a ledger twice.
	ErrLedgerAlreadyExists = errors.New("ledger already exists")
)
