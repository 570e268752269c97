package postgresdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
)

const (
	insertNamedKeyQuery = `INSERT INTO named_key (name, uref) VALUES ($1, $2)`
	upsertNamedKeyQuery = `INSERT INTO named_key (name, uref) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET uref = EXCLUDED.uref`
	selectNamedKeyQuery     = `SELECT uref FROM named_key WHERE name = $1`
	selectAllNamedKeysQuery = `SELECT name, uref FROM named_key ORDER BY name`
)

type namedKeyRepositoryImpl struct {
	db func(ctx context.Context) querier
}

func NewNamedKeyRepositoryImpl(
	db func(ctx context.Context) querier,
) domain.NamedKeyRepository {
	return &namedKeyRepositoryImpl{db}
}

func (n *namedKeyRepositoryImpl) AddKey(
	ctx context.Context, name string, uref domain.URef,
) error {
	if _, err := n.db(ctx).Exec(
		ctx, insertNamedKeyQuery, name, uref.String(),
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNamedKeyAlreadyExists
		}
		return err
	}
	return nil
}

func (n *namedKeyRepositoryImpl) PutKey(
	ctx context.Context, name string, uref domain.URef,
) error {
	_, err := n.db(ctx).Exec(ctx, upsertNamedKeyQuery, name, uref.String())
	return err
}

func (n *namedKeyRepositoryImpl) GetKey(
	ctx context.Context, name string,
) (*domain.URef, error) {
	var str string
	if err := n.db(ctx).QueryRow(
		ctx, selectNamedKeyQuery, name,
	).Scan(&str); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	uref, err := domain.ParseURef(str)
	if err != nil {
		return nil, err
	}
	return &uref, nil
}

func (n *namedKeyRepositoryImpl) GetAllKeys(
	ctx context.Context,
) ([]domain.NamedKey, error) {
	rows, err := n.db(ctx).Query(ctx, selectAllNamedKeysQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make([]domain.NamedKey, 0)
	for rows.Next() {
		var key domain.NamedKey
		if err := rows.Scan(&key.Name, &key.URef); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
