package actor

import "github.com/google/uuid"

// ID identifies an actor. The zero value means "no actor", which is what a
// projectile fired by the environment carries as its owner.
type ID = uuid.UUID

// Nil is the empty actor id.
var Nil = uuid.Nil

// NewID returns a random actor id.
func NewID() ID {
	return uuid.New()
}

// NamedID derives a stable id from a scenario name so restored snapshots keep
// pointing at the same actors.
func NamedID(name string) ID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("actor/"+name))
}
