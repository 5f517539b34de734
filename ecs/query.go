package ecs

// IntersectEntities returns entities present in every set, in the dense
// order of the smallest one.
func IntersectEntities(sets ...*SparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	base := sets[smallest]
	out := make([]Entity, 0, base.Len())
	for _, e := range base.denseEntities {
		keep := true
		for i, s := range sets {
			if i != smallest && !s.Has(e) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, e)
		}
	}
	return out
}
