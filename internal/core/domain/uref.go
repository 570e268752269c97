package domain

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

const urefPrefix = "uref-"

// AccessRights is the bitmask of the operations allowed through a URef.
type AccessRights uint8

const (
	AccessNone  AccessRights = 0
	AccessRead  AccessRights = 1 << 0
	AccessWrite AccessRights = 1 << 1
	AccessAdd   AccessRights = 1 << 2

	AccessReadAdd      = AccessRead | AccessAdd
	AccessReadAddWrite = AccessRead | AccessAdd | AccessWrite
)

func (r AccessRights) IsReadable() bool {
	return r&AccessRead != 0
}

func (r AccessRights) IsWriteable() bool {
	return r&AccessWrite != 0
}

func (r AccessRights) IsAddable() bool {
	return r&AccessAdd != 0
}

// URef is an unforgeable reference to a stored resource, made of a random
// address and of the access rights granted to whoever holds it.
type URef struct {
	addr   [AddrLength]byte
	rights AccessRights
}

func NewURef(addr [AddrLength]byte, rights AccessRights) URef {
	return URef{addr, rights & AccessReadAddWrite}
}

// ParseURef parses a string in the format uref-<hex addr>-<octal rights>.
func ParseURef(str string) (URef, error) {
	if !strings.HasPrefix(str, urefPrefix) {
		return URef{}, fmt.Errorf("%w: missing prefix", ErrMalformedURef)
	}
	parts := strings.Split(strings.TrimPrefix(str, urefPrefix), "-")
	if len(parts) != 2 {
		return URef{}, fmt.Errorf("%w: missing access rights", ErrMalformedURef)
	}

	buf, err := hex.DecodeString(parts[0])
	if err != nil || len(buf) != AddrLength {
		return URef{}, fmt.Errorf(
			"%w: address must be a %d bytes hex string", ErrMalformedURef, AddrLength,
		)
	}
	rights, err := strconv.ParseUint(parts[1], 8, 8)
	if err != nil || len(parts[1]) != 3 {
		return URef{}, fmt.Errorf(
			"%w: access rights must be 3 octal digits", ErrMalformedURef,
		)
	}
	if AccessRights(rights) > AccessReadAddWrite {
		return URef{}, fmt.Errorf("%w: unknown access rights", ErrMalformedURef)
	}

	var addr [AddrLength]byte
	copy(addr[:], buf)
	return NewURef(addr, AccessRights(rights)), nil
}

func (u URef) Addr() [AddrLength]byte {
	return u.addr
}

func (u URef) Rights() AccessRights {
	return u.rights
}

// AddrString returns the hex address, without access rights. Storage
// references resources by it.
func (u URef) AddrString() string {
	return hex.EncodeToString(u.addr[:])
}

func (u URef) String() string {
	return fmt.Sprintf("%s%s-%03o", urefPrefix, u.AddrString(), uint8(u.rights))
}

// IntoAdd returns the add-only view of the uref. Views can only narrow the
// rights of a uref, never widen them.
func (u URef) IntoAdd() URef {
	return URef{u.addr, u.rights & AccessAdd}
}

// IntoRead returns the read-only view of the uref.
func (u URef) IntoRead() URef {
	return URef{u.addr, u.rights & AccessRead}
}

func (u URef) IsReadable() bool {
	return u.rights.IsReadable()
}

func (u URef) IsWriteable() bool {
	return u.rights.IsWriteable()
}

func (u URef) IsAddable() bool {
	return u.rights.IsAddable()
}
