// Package repo implements keystore storage on postgres
package repo

import (
	"context"

	"knownkey/internal/modkit/repokit"
	perr "knownkey/internal/platform/errors"
	"knownkey/internal/services/api/keystore/domain"

	"github.com/google/uuid"
)

// StorageRepo is the keystore persistence surface
type StorageRepo interface {
	EnsureSchema(ctx context.Context) error
	Get(ctx context.Context, hash string) (domain.Key, error)
	Upsert(ctx context.Context, hash string, id uuid.UUID) (domain.Key, error)
	Delete(ctx context.Context, hash string) (bool, error)
}

// PG returns a binder producing postgres backed repos
func PG() repokit.Binder[StorageRepo] {
	return repokit.BindFunc[StorageRepo](func(q repokit.Queryer) StorageRepo { return &pgRepo{q: q} })
}

type pgRepo struct{ q repokit.Queryer }

const schemaSQL = `
CREATE TABLE IF NOT EXISTS known_keys (
	hash       text        PRIMARY KEY,
	id         uuid        NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
)`

func (r *pgRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.q.Exec(ctx, schemaSQL)
	return perr.FromPostgres(err, "keystore ensure schema")
}

func (r *pgRepo) Get(ctx context.Context, hash string) (domain.Key, error) {
	var (
		k  domain.Key
		id string
	)
	err := r.q.QueryRow(ctx,
		`SELECT hash, id::text, created_at FROM known_keys WHERE hash = $1`, hash,
	).Scan(&k.Hash, &id, &k.CreatedAt)
	if err != nil {
		return domain.Key{}, perr.FromPostgres(err, "known key not found")
	}
	return withID(k, id)
}

func (r *pgRepo) Upsert(ctx context.Context, hash string, id uuid.UUID) (domain.Key, error) {
	var (
		k   domain.Key
		out string
	)
	err := r.q.QueryRow(ctx, `
		INSERT INTO known_keys (hash, id) VALUES ($1, $2::uuid)
		ON CONFLICT (hash) DO UPDATE SET id = EXCLUDED.id
		RETURNING hash, id::text, created_at`,
		hash, id.String(),
	).Scan(&k.Hash, &out, &k.CreatedAt)
	if err != nil {
		return domain.Key{}, perr.FromPostgres(err, "keystore upsert")
	}
	return withID(k, out)
}

func (r *pgRepo) Delete(ctx context.Context, hash string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM known_keys WHERE hash = $1`, hash)
	if err != nil {
		return false, perr.FromPostgres(err, "keystore delete")
	}
	return tag.RowsAffected() > 0, nil
}

func withID(k domain.Key, raw string) (domain.Key, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return domain.Key{}, perr.Wrapf(err, perr.ErrorCodeDB, "keystore stored id %q", raw)
	}
	k.ID = id
	return k, nil
}
