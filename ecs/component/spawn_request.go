package component

import "github.com/milk9111/cannonball/impact"

// SpawnRequest is a one-shot entity asking for a child projectile. It is
// consumed after the projectile pass of the tick that queued it.
type SpawnRequest struct {
	Request impact.SpawnRequest
}

var SpawnRequestComponent = NewComponent[SpawnRequest]()
