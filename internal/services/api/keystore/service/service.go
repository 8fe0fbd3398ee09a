// Package service implements the keystore
package service

import (
	"context"

	"knownkey/internal/modkit/repokit"
	perr "knownkey/internal/platform/errors"
	"knownkey/internal/platform/net/http/bind"
	str "knownkey/internal/platform/strings"
	"knownkey/internal/services/api/keystore/domain"
	krepo "knownkey/internal/services/api/keystore/repo"

	"github.com/google/uuid"
)

// Service is the concrete implementation of domain.ServicePort
type Service struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[krepo.StorageRepo]

	// NewID generates ids for puts without one
	NewID func() uuid.UUID
}

// New constructs a keystore service
func New(db repokit.TxRunner, binder repokit.Binder[krepo.StorageRepo]) *Service {
	if db == nil {
		panic("keystore.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("keystore.Service requires a non-nil repo Binder")
	}
	return &Service{DB: db, Repo: binder, NewID: uuid.New}
}

// EnsureSchema creates the known_keys table if needed
func (s *Service) EnsureSchema(ctx context.Context) error {
	return repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		return s.Repo.Bind(q).EnsureSchema(ctx)
	})
}

// Get returns the key stored for hash
func (s *Service) Get(ctx context.Context, hash string) (domain.Key, error) {
	if err := bind.Struct(domain.HashQuery{Hash: hash}); err != nil {
		return domain.Key{}, err
	}
	return repokit.Read(ctx, s.DB, s.Repo, func(r krepo.StorageRepo) (domain.Key, error) {
		return r.Get(ctx, hash)
	})
}

// Put registers or replaces the id for in.Hash
// a missing or empty id gets a fresh one
func (s *Service) Put(ctx context.Context, in domain.PutInput) (domain.Key, error) {
	if err := bind.Struct(in); err != nil {
		return domain.Key{}, err
	}
	id := s.NewID()
	if raw := str.Deref(in.ID); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return domain.Key{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, "id must be a valid UUID"), "id")
		}
		id = parsed
	}

	var out domain.Key
	err := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		var e error
		out, e = s.Repo.Bind(q).Upsert(ctx, in.Hash, id)
		return e
	})
	return out, err
}

// Delete removes the mapping for hash; unknown hashes are NotFound
func (s *Service) Delete(ctx context.Context, hash string) error {
	if err := bind.Struct(domain.HashQuery{Hash: hash}); err != nil {
		return err
	}
	return repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		ok, err := s.Repo.Bind(q).Delete(ctx, hash)
		if err != nil {
			return err
		}
		if !ok {
			return perr.NotFoundf("known key not found")
		}
		return nil
	})
}
