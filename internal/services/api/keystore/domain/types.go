// Package domain defines the keystore types
package domain

import (
	"time"

	"github.com/google/uuid"
)

// HashHeader names the request header that carries the hash on GET and DELETE
const HashHeader = "X-Hash-Value"

// Key maps a hash to its opaque id
type Key struct {
	Hash      string
	ID        uuid.UUID
	CreatedAt time.Time
}

// HashQuery validates a hash taken from the X-Hash-Value header
type HashQuery struct {
	Hash string `json:"hash" validate:"required,max=512,hashkey"`
}

// PutInput registers or replaces a mapping; ID is generated when omitted
type PutInput struct {
	Hash string  `json:"hash" validate:"required,max=512,hashkey"`
	ID   *string `json:"id"   validate:"omitempty,uuid"`
}

// IDResponse is the lookup wire shape
type IDResponse struct {
	ID string `json:"id"`
}
