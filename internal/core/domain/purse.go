package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxAmountDigits is the max number of decimal digits of any amount or
// balance, the same as a U512 can hold.
const MaxAmountDigits = 78

var maxAmount = decimal.New(1, MaxAmountDigits).Sub(decimal.New(1, 0))

// Purse is a balance holding resource. Its balance is always an integer
// amount.
type Purse struct {
	Addr      string
	Balance   decimal.Decimal
	CreatedAt int64
}

func NewPurse(uref URef) *Purse {
	return &Purse{
		Addr:      uref.AddrString(),
		Balance:   decimal.Zero,
		CreatedAt: time.Now().Unix(),
	}
}

// Deposit increases the balance by the given amount.
func (p *Purse) Deposit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	balance := p.Balance.Add(amount)
	if balance.GreaterThan(maxAmount) {
		return fmt.Errorf(
			"%w: balance can't exceed %d digits", ErrInvalidAmount, MaxAmountDigits,
		)
	}
	p.Balance = balance
	return nil
}

// Withdraw decreases the balance by the given amount.
func (p *Purse) Withdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if p.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	p.Balance = p.Balance.Sub(amount)
	return nil
}

// ValidateAmount makes sure the amount is a positive integer of at most
// MaxAmountDigits digits.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.Equal(amount.Truncate(0)) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf(
			"%w: amount can't exceed %d digits", ErrInvalidAmount, MaxAmountDigits,
		)
	}
	return nil
}
