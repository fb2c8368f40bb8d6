package component

// TTL destroys its entity after Ticks world updates.
type TTL struct {
	Ticks int
}

var TTLComponent = NewComponent[TTL]()
