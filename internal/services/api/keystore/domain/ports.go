package domain

import "context"

// ServicePort defines the keystore service interface
type ServicePort interface {
	Get(ctx context.Context, hash string) (Key, error)
	Put(ctx context.Context, in PutInput) (Key, error)
	Delete(ctx context.Context, hash string) error
}

// Schema creates the storage the keystore needs
type Schema interface {
	EnsureSchema(ctx context.Context) error
}
