package postgresdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
)

const (
	insertPurseQuery = `INSERT INTO purse (addr, balance, created_at)
VALUES ($1, $2::text::numeric, $3)`
	selectPurseQuery = `SELECT addr, balance::text, created_at FROM purse
WHERE addr = $1`
	selectPurseForUpdateQuery = selectPurseQuery + " FOR UPDATE"
	updatePurseBalanceQuery   = `UPDATE purse SET balance = $2::text::numeric
WHERE addr = $1`
)

type purseRepositoryImpl struct {
	db func(ctx context.Context) querier
}

func NewPurseRepositoryImpl(
	db func(ctx context.Context) querier,
) domain.PurseRepository {
	return &purseRepositoryImpl{db}
}

func (p *purseRepositoryImpl) AddPurse(
	ctx context.Context, purse *domain.Purse,
) error {
	if _, err := p.db(ctx).Exec(
		ctx, insertPurseQuery,
		purse.Addr, purse.Balance.String(), purse.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return ErrPurseAlreadyExists
		}
		return err
	}
	return nil
}

func (p *purseRepositoryImpl) GetPurse(
	ctx context.Context, addr string,
) (*domain.Purse, error) {
	return p.getPurse(ctx, selectPurseQuery, addr)
}

func (p *purseRepositoryImpl) UpdatePurse(
	ctx context.Context,
	addr string,
	updateFn func(p *domain.Purse) (*domain.Purse, error),
) error {
	purse, err := p.getPurse(ctx, selectPurseForUpdateQuery, addr)
	if err != nil {
		return err
	}

	updatedPurse, err := updateFn(purse)
	if err != nil {
		return err
	}

	_, err = p.db(ctx).Exec(
		ctx, updatePurseBalanceQuery, addr, updatedPurse.Balance.String(),
	)
	return err
}

func (p *purseRepositoryImpl) getPurse(
	ctx context.Context, query, addr string,
) (*domain.Purse, error) {
	var (
		purse   domain.Purse
		balance string
	)
	if err := p.db(ctx).QueryRow(ctx, query, addr).Scan(
		&purse.Addr, &balance, &purse.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPurseNotFound
		}
		return nil, err
	}

	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, err
	}
	purse.Balance = amount

	return &purse, nil
}
