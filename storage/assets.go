package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
)

/*

solved-puzzle asset catalogs

An asset catalog is, for one board size n, the full list of canonical
solution strings known for that size: a JSON array cached as a blob in
Redis and persisted as a blob in Postgres.  This is the optional
playback path: a client that wants to replay a pre-solved board of
size n for a given size fetches the catalog and picks a solution
string out of it, rather than running the generator itself.

*/

// SaveAssetCatalog replaces the stored catalog for board size n with
// solutions.  Every entry must be a valid, solved n-board.
func SaveAssetCatalog(ctx context.Context, n int, solutions []string) error {
	for _, sol := range solutions {
		if err := validateBoard(n, sol); err != nil {
			return fmt.Errorf("Refusing to save an invalid catalog entry: %v", err)
		}
	}
	ac := &assetCatalog{N: int32(n), Solutions: solutions}
	if err := ac.databaseUpsert(ctx); err != nil {
		return err
	}
	ac.cacheInsert()
	return nil
}

// LoadAssetCatalog returns the stored catalog of solved boards of
// size n, checking the cache before the database.  Returns an error
// if no catalog has ever been saved for that size.
func LoadAssetCatalog(ctx context.Context, n int) ([]string, error) {
	ac := &assetCatalog{N: int32(n)}
	if ac.cacheLoad() {
		return ac.Solutions, nil
	}
	if err := ac.databaseLoad(ctx); err != nil {
		return nil, err
	}
	ac.cacheInsert()
	return ac.Solutions, nil
}

type assetCatalog struct {
	N         int32
	Solutions []string
}

func (ac *assetCatalog) key() string {
	return fmt.Sprintf("ASSETS:%d", ac.N)
}

func (ac *assetCatalog) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", ac.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading asset catalog for n=%d: %v", ac.N, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	if err := json.Unmarshal(bytes, &ac.Solutions); err != nil {
		panic(fmt.Errorf("Failed to unmarshal asset catalog for n=%d: %v", ac.N, err))
	}
	return true
}

func (ac *assetCatalog) cacheInsert() {
	bytes, err := json.Marshal(ac.Solutions)
	if err != nil {
		panic(fmt.Errorf("Failed to marshal asset catalog for n=%d: %v", ac.N, err))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", ac.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving asset catalog for n=%d: %v", ac.N, err)
		}
		return
	}
	rdExecute(body)
}

func (ac *assetCatalog) databaseLoad(ctx context.Context) error {
	var loadErr error
	body := func(tx pgx.Tx) error {
		var blob string
		row := tx.QueryRow(ctx, "SELECT solutions FROM assets WHERE n = $1", ac.N)
		if err := row.Scan(&blob); err != nil {
			loadErr = fmt.Errorf("No stored asset catalog for n=%d: %v", ac.N, err)
			return nil
		}
		if err := json.Unmarshal([]byte(blob), &ac.Solutions); err != nil {
			loadErr = fmt.Errorf("Corrupt asset catalog for n=%d: %v", ac.N, err)
		}
		return nil
	}
	pgExecute(ctx, body)
	return loadErr
}

func (ac *assetCatalog) databaseUpsert(ctx context.Context) error {
	bytes, err := json.Marshal(ac.Solutions)
	if err != nil {
		return fmt.Errorf("Failed to marshal asset catalog for n=%d: %v", ac.N, err)
	}
	var upsertErr error
	body := func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			"INSERT INTO assets (n, solutions) VALUES ($1, $2) "+
				"ON CONFLICT (n) DO UPDATE SET solutions = EXCLUDED.solutions",
			ac.N, string(bytes))
		if err != nil {
			upsertErr = fmt.Errorf("Database error saving asset catalog for n=%d: %v", ac.N, err)
		}
		return nil
	}
	pgExecute(ctx, body)
	return upsertErr
}
