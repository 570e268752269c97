package db_test

import (
	"context"
	"database/sql"

	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
	postgresdb "github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/pg"

	_ "github.com/jackc/pgx/v4/stdlib"
)

func setupPgDb(addr string) (ports.RepoManager, error) {
	if err := truncateDb(addr); err != nil {
		return nil, err
	}

	return postgresdb.NewRepoManager(postgresdb.DbConfig{
		DataSourceURL:      addr,
		MigrationSourceURL: "file://../pg/migration",
	})
}

func tearDownPgDb(addr string, repoManager ports.RepoManager) error {
	repoManager.Close()
	return truncateDb(addr)
}

// truncateDb empties all tables except the migrations one, if they exist.
func truncateDb(addr string) error {
	db, err := sql.Open("pgx", addr)
	if err != nil {
		return err
	}
	defer db.Close()

	truncateQuery := `
	  DO $$
	  DECLARE
	      stmt RECORD;
	  BEGIN
	      FOR stmt IN
	          SELECT tablename FROM pg_tables
	          WHERE schemaname = 'public' AND tablename NOT LIKE '%migrations'
	      LOOP
	          EXECUTE 'TRUNCATE TABLE ' || quote_ident(stmt.tablename) || ' CASCADE;';
	      END LOOP;
	  END $$;
`
	_, err = db.ExecContext(context.Background(), truncateQuery)
	return err
}
