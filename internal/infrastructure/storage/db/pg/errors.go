package postgresdb

import "errors"

var (
	ErrPurseAlreadyExists  = errors.New("purse already exists")
	ErrLedgerAlreadyExists = errors.New("ledger already exists")
)
