package postgresdb

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v4"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
)

const (
	insertLedgerQuery = `INSERT INTO ledger (addr, name, created_at)
VALUES ($1, $2, $3)`
	selectLedgerQuery = `SELECT addr, name, created_at FROM ledger
WHERE addr = $1`
	selectEntryQuery = `SELECT ledger_addr, key, count::text, updated_at
FROM ledger_entry WHERE ledger_addr = $1 AND key = $2`
	selectEntryForUpdateQuery = selectEntryQuery + " FOR UPDATE"
	selectEntriesQuery        = `SELECT ledger_addr, key, count::text, updated_at
FROM ledger_entry WHERE ledger_addr = $1 ORDER BY key`
	selectEntriesPageQuery = selectEntriesQuery + " LIMIT $2 OFFSET $3"
	upsertEntryQuery       = `INSERT INTO ledger_entry
(ledger_addr, key, count, updated_at)
VALUES ($1, $2, $3::text::numeric, $4)
ON CONFLICT (ledger_addr, key)
DO UPDATE SET count = EXCLUDED.count, updated_at = EXCLUDED.updated_at`
	// Serializes concurrent first increments of the same key.
	lockEntryKeyQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`
)

type ledgerRepositoryImpl struct {
	db func(ctx context.Context) querier
}

func NewLedgerRepositoryImpl(
	db func(ctx context.Context) querier,
) domain.LedgerRepository {
	return &ledgerRepositoryImpl{db}
}

func (l *ledgerRepositoryImpl) AddLedger(
	ctx context.Context, ledger *domain.Ledger,
) error {
	if _, err := l.db(ctx).Exec(
		ctx, insertLedgerQuery, ledger.Addr, ledger.Name, ledger.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return ErrLedgerAlreadyExists
		}
		return err
	}
	return nil
}

func (l *ledgerRepositoryImpl) GetLedger(
	ctx context.Context, addr string,
) (*domain.Ledger, error) {
	var ledger domain.Ledger
	if err := l.db(ctx).QueryRow(ctx, selectLedgerQuery, addr).Scan(
		&ledger.Addr, &ledger.Name, &ledger.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLedgerNotFound
		}
		return nil, err
	}
	return &ledger, nil
}

func (l *ledgerRepositoryImpl) GetEntry(
	ctx context.Context, ledgerAddr, key string,
) (*domain.LedgerEntry, error) {
	return l.getEntry(ctx, selectEntryQuery, ledgerAddr, key)
}

func (l *ledgerRepositoryImpl) GetEntries(
	ctx context.Context, ledgerAddr string, page domain.Page,
) ([]domain.LedgerEntry, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if page == nil {
		rows, err = l.db(ctx).Query(ctx, selectEntriesQuery, ledgerAddr)
	} else {
		offset, limit, perr := domain.PageOffset(page)
		if perr != nil {
			return nil, perr
		}
		rows, err = l.db(ctx).Query(
			ctx, selectEntriesPageQuery, ledgerAddr, limit, offset,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (l *ledgerRepositoryImpl) UpdateEntry(
	ctx context.Context,
	ledgerAddr, key string,
	updateFn func(e *domain.LedgerEntry) (*domain.LedgerEntry, error),
) error {
	id := domain.LedgerEntryID(ledgerAddr, key)
	if _, err := l.db(ctx).Exec(ctx, lockEntryKeyQuery, id); err != nil {
		return err
	}

	entry, err := l.getEntry(ctx, selectEntryForUpdateQuery, ledgerAddr, key)
	if err != nil {
		return err
	}

	updatedEntry, err := updateFn(entry)
	if err != nil {
		return err
	}

	_, err = l.db(ctx).Exec(
		ctx, upsertEntryQuery,
		updatedEntry.LedgerAddr, updatedEntry.Key,
		strconv.FormatUint(updatedEntry.Count, 10), updatedEntry.UpdatedAt,
	)
	return err
}

func (l *ledgerRepositoryImpl) getEntry(
	ctx context.Context, query, ledgerAddr, key string,
) (*domain.LedgerEntry, error) {
	entry, err := scanEntry(l.db(ctx).QueryRow(ctx, query, ledgerAddr, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var (
		entry domain.LedgerEntry
		count string
	)
	if err := row.Scan(
		&entry.LedgerAddr, &entry.Key, &count, &entry.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c, err := strconv.ParseUint(count, 10, 64)
	if err != nil {
		return nil, err
	}
	entry.Count = c

	return &entry, nil
}
