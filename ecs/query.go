package ecs

// smallest returns the set with the fewest members, or nil if any set is
// missing.
func smallest(sets ...*SparseSet) *SparseSet {
	var best *SparseSet
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if best == nil || s.Len() < best.Len() {
			best = s
		}
	}
	return best
}

// IntersectEntities returns the entities present in every set, in the order
// of the smallest one.
func IntersectEntities(sets ...*SparseSet) []Entity {
	base := smallest(sets...)
	if base == nil {
		return nil
	}
	out := make([]Entity, 0, base.Len())
outer:
	for _, e := range base.dense {
		for _, s := range sets {
			if s != base && !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}
