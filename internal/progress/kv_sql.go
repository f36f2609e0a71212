package progress

import (
	"database/sql"
	"errors"
	"time"
)

// SQLKV backs the KV boundary with the kv table (sqlite or postgres).
type SQLKV struct {
	db *sql.DB
}

func NewSQLKV(db *sql.DB) *SQLKV { return &SQLKV{db: db} }

func (s *SQLKV) Get(key string) (string, bool, error) {
	row := s.db.QueryRow(`SELECT value FROM kv WHERE key=$1`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (s *SQLKV) Set(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO kv (key,value,updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at`,
		key, value, time.Now().Unix())
	return err
}
