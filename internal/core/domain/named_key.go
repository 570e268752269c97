package domain

import "context"

const (
	// FundraisingPurseKey names the uref of the escrow purse.
	FundraisingPurseKey = "fundraising_purse"
	// LedgerKey names the uref of the donation ledger.
	LedgerKey = "ledger"
)

// NamedKey binds a well-known name to a stored uref.
type NamedKey struct {
	Name string
	URef string
}

// NamedKeyRepository is the abstraction for any kind of database intended to
// persist the process-wide named keys.
type NamedKeyRepository interface {
	// AddKey binds the uref to the given name only if it's not bound yet,
	// otherwise it returns ErrNamedKeyAlreadyExists.
	AddKey(ctx context.Context, name string, uref URef) error
	// PutKey binds the uref to the given name, overwriting any previous one.
	PutKey(ctx context.Context, name string, uref URef) error
	// GetKey returns the uref bound to the given name, nil if missing.
	GetKey(ctx context.Context, name string) (*URef, error)
	// GetAllKeys returns all named keys.
	GetAllKeys(ctx context.Context) ([]NamedKey, error)
}
