package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	accountHashPrefix = "account-hash-"
	hashPrefix        = "hash-"

	// AddrLength is the length in bytes of hashes and uref addresses.
	AddrLength = 32
)

// KeyTag identifies the variant of a Key.
type KeyTag uint8

const (
	KeyTagAccount KeyTag = iota
	KeyTagHash
	KeyTagURef
)

func (t KeyTag) String() string {
	switch t {
	case KeyTagAccount:
		return "account"
	case KeyTagHash:
		return "hash"
	case KeyTagURef:
		return "uref"
	default:
		return "unknown"
	}
}

// AccountHash identifies a donor account.
type AccountHash [AddrLength]byte

func (a AccountHash) String() string {
	return accountHashPrefix + hex.EncodeToString(a[:])
}

// Key is a tagged reference to either an account, a stored value or a uref.
// Only account keys identify donors.
type Key struct {
	tag     KeyTag
	account AccountHash
	hash    [AddrLength]byte
	uref    URef
}

func NewAccountKey(account AccountHash) Key {
	return Key{tag: KeyTagAccount, account: account}
}

func NewHashKey(hash [AddrLength]byte) Key {
	return Key{tag: KeyTagHash, hash: hash}
}

func NewURefKey(uref URef) Key {
	return Key{tag: KeyTagURef, uref: uref}
}

// ParseKey parses the formatted string of any Key variant.
func ParseKey(str string) (Key, error) {
	str = strings.TrimSpace(str)

	switch {
	case strings.HasPrefix(str, accountHashPrefix):
		buf, err := parseAddr(strings.TrimPrefix(str, accountHashPrefix))
		if err != nil {
			return Key{}, err
		}
		return NewAccountKey(AccountHash(buf)), nil
	case strings.HasPrefix(str, hashPrefix):
		buf, err := parseAddr(strings.TrimPrefix(str, hashPrefix))
		if err != nil {
			return Key{}, err
		}
		return NewHashKey(buf), nil
	case strings.HasPrefix(str, urefPrefix):
		uref, err := ParseURef(str)
		if err != nil {
			return Key{}, fmt.Errorf("%w: %s", ErrMalformedKey, err)
		}
		return NewURefKey(uref), nil
	default:
		return Key{}, fmt.Errorf("%w: unknown prefix", ErrMalformedKey)
	}
}

func (k Key) Tag() KeyTag {
	return k.tag
}

// AsAccount returns the account hash of an account key.
func (k Key) AsAccount() (AccountHash, bool) {
	if k.tag != KeyTagAccount {
		return AccountHash{}, false
	}
	return k.account, true
}

func (k Key) String() string {
	switch k.tag {
	case KeyTagAccount:
		return k.account.String()
	case KeyTagHash:
		return hashPrefix + hex.EncodeToString(k.hash[:])
	case KeyTagURef:
		return k.uref.String()
	default:
		return ""
	}
}

func parseAddr(str string) ([AddrLength]byte, error) {
	var addr [AddrLength]byte

	buf, err := hex.DecodeString(str)
	if err != nil {
		return addr, fmt.Errorf("%w: address must be in hex format", ErrMalformedKey)
	}
	if len(buf) != AddrLength {
		return addr, fmt.Errorf(
			"%w: address must be %d bytes long", ErrMalformedKey, AddrLength,
		)
	}
	copy(addr[:], buf)
	return addr, nil
}
