package domain

import (
	"fmt"
	"math"
	"time"
)

// Ledger is a durable mapping from keys to monotonic counters.
type Ledger struct {
	Addr      string
	Name      string
	CreatedAt int64
}

func NewLedger(uref URef, name string) *Ledger {
	return &Ledger{
		Addr:      uref.AddrString(),
		Name:      name,
		CreatedAt: time.Now().Unix(),
	}
}

// LedgerEntry is the counter stored for a key of a ledger. An entry is never
// materialized before its first increment.
type LedgerEntry struct {
	LedgerAddr string
	Key        string
	Count      uint64
	UpdatedAt  int64
}

func NewLedgerEntry(ledgerAddr, key string) *LedgerEntry {
	return &LedgerEntry{
		LedgerAddr: ledgerAddr,
		Key:        key,
	}
}

// ID uniquely identifies the entry among those of every ledger.
func (e LedgerEntry) ID() string {
	return LedgerEntryID(e.LedgerAddr, e.Key)
}

// Increment adds one to the counter.
func (e *LedgerEntry) Increment() error {
	if e.Count == math.MaxUint64 {
		return ErrCounterOverflow
	}
	e.Count++
	e.UpdatedAt = time.Now().Unix()
	return nil
}

func LedgerEntryID(ledgerAddr, key string) string {
	return fmt.Sprintf("%s:%s", ledgerAddr, key)
}
