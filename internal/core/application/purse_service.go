package application

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/thanhpk/randstr"
)

// DepositCapability is the add-only handle to a purse that is handed out to
// depositors. It never carries read or write rights.
type DepositCapability struct {
	uref domain.URef
}

// ParseDepositCapability parses the string form of a capability. Any right
// other than add is dropped.
func ParseDepositCapability(str string) (DepositCapability, error) {
	uref, err := domain.ParseURef(str)
	if err != nil {
		return DepositCapability{}, err
	}
	if !uref.IsAddable() {
		return DepositCapability{}, domain.ErrForbidden
	}
	return DepositCapability{uref.IntoAdd()}, nil
}

func (c DepositCapability) String() string {
	return c.uref.String()
}

// PurseHandle is the full access handle to a purse. It can only be obtained
// from CreatePurse or from a uref already persisted by this package, so that
// nobody can turn a deposit capability back into a handle.
type PurseHandle struct {
	uref domain.URef
}

// PurseService owns balance holding purses and controls who may add to or
// read from them, based on the access rights of the given handles.
type PurseService interface {
	CreatePurse(ctx context.Context) (PurseHandle, error)
	IssueDepositCapability(purse PurseHandle) DepositCapability
	GetBalance(ctx context.Context, purse PurseHandle) (decimal.Decimal, error)
	Deposit(
		ctx context.Context, capability DepositCapability, amount decimal.Decimal,
	) error
	Withdraw(
		ctx context.Context, purse PurseHandle, amount decimal.Decimal,
	) error
}

type purseService struct {
	repository domain.PurseRepository
}

func NewPurseService(repository domain.PurseRepository) PurseService {
	return newPurseService(repository)
}

func newPurseService(repository domain.PurseRepository) *purseService {
	return &purseService{repository}
}

func (s *purseService) CreatePurse(ctx context.Context) (PurseHandle, error) {
	uref := newURef()
	if err := s.repository.AddPurse(ctx, domain.NewPurse(uref)); err != nil {
		return PurseHandle{}, err
	}
	return PurseHandle{uref}, nil
}

func (s *purseService) IssueDepositCapability(
	purse PurseHandle,
) DepositCapability {
	return DepositCapability{purse.uref.IntoAdd()}
}

func (s *purseService) GetBalance(
	ctx context.Context, purse PurseHandle,
) (decimal.Decimal, error) {
	if !purse.uref.IsReadable() {
		return decimal.Zero, domain.ErrForbidden
	}

	p, err := s.repository.GetPurse(ctx, purse.uref.AddrString())
	if err != nil {
		return decimal.Zero, err
	}
	return p.Balance, nil
}

func (s *purseService) Deposit(
	ctx context.Context, capability DepositCapability, amount decimal.Decimal,
) error {
	if !capability.uref.IsAddable() {
		return domain.ErrForbidden
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}

	return s.repository.UpdatePurse(
		ctx, capability.uref.AddrString(),
		func(p *domain.Purse) (*domain.Purse, error) {
			if err := p.Deposit(amount); err != nil {
				return nil, err
			}
			return p, nil
		},
	)
}

func (s *purseService) Withdraw(
	ctx context.Context, purse PurseHandle, amount decimal.Decimal,
) error {
	if !purse.uref.IsWriteable() {
		return domain.ErrForbidden
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}

	return s.repository.UpdatePurse(
		ctx, purse.uref.AddrString(),
		func(p *domain.Purse) (*domain.Purse, error) {
			if err := p.Withdraw(amount); err != nil {
				return nil, err
			}
			return p, nil
		},
	)
}

// newURef returns a full access uref with a random address.
func newURef() domain.URef {
	var addr [domain.AddrLength]byte
	copy(addr[:], randstr.Bytes(domain.AddrLength))
	return domain.NewURef(addr, domain.AccessReadAddWrite)
}
