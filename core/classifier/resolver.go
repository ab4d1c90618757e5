package classifier

import "fmt"

// MaxInheritanceDepth bounds every parent chain. Real datasets stay within
// four levels; anything deeper points at a cycle.
const MaxInheritanceDepth = 32

// Resolver merges an entry's properties with those of its ancestors. Entries
// live in a flat arena and parents are found through a pattern → slot map.
type Resolver struct {
	entries    []Entry
	properties []string
	byPattern  map[string]int
}

// ResolverStats describes the inheritance forest.
type ResolverStats struct {
	Entries  int `json:"entries"`
	Roots    int `json:"roots"`
	MaxDepth int `json:"max_depth"`
}

// NewResolver indexes entries by pattern. properties is the dataset's
// property schema in header order.
func NewResolver(entries []Entry, properties []string) *Resolver {
	byPattern := make(map[string]int, len(entries))
	for i, e := range entries {
		byPattern[e.Pattern] = i
	}
	return &Resolver{
		entries:    entries,
		properties: properties,
		byPattern:  byPattern,
	}
}

// Entry returns the entry stored in slot.
func (r *Resolver) Entry(slot int) Entry {
	return r.entries[slot]
}

// parent returns the slot of the parent of slot; ok is false for roots.
func (r *Resolver) parent(slot int) (int, bool, error) {
	ref := r.entries[slot].Parent
	if ref == "" {
		return 0, false, nil
	}
	p, found := r.byPattern[ref]
	if !found {
		return 0, false, fmt.Errorf("%w: %q references unknown parent %q",
			ErrBrokenInheritance, r.entries[slot].Pattern, ref)
	}
	return p, true, nil
}

// Resolve walks from slot up to its root. Values declared closer to the
// matched entry win; a property nobody declares is reported as Unknown.
func (r *Resolver) Resolve(slot int) (Capabilities, error) {
	values := make([]string, len(r.properties))

	cur := slot
	for steps := 0; ; steps++ {
		if steps >= MaxInheritanceDepth {
			return Capabilities{}, fmt.Errorf("%w: chain from %q exceeds %d levels",
				ErrBrokenInheritance, r.entries[slot].Pattern, MaxInheritanceDepth)
		}

		props := r.entries[cur].Properties
		for i, name := range r.properties {
			if values[i] != "" {
				continue
			}
			if v, ok := props[name]; ok {
				values[i] = v
			}
		}

		next, ok, err := r.parent(cur)
		if err != nil {
			return Capabilities{}, err
		}
		if !ok {
			break
		}
		cur = next
	}

	matched := r.entries[slot]
	caps := Capabilities{
		Pattern:    matched.Pattern,
		Parent:     matched.Parent,
		Properties: make([]Property, len(r.properties)),
	}
	for i, name := range r.properties {
		v := values[i]
		if v == "" {
			v = Unknown
		}
		caps.Properties[i] = Property{Name: name, Value: v}
	}
	return caps, nil
}

// Validate checks every chain once: each parent must exist, no chain may
// loop back on itself and none may exceed MaxInheritanceDepth.
func (r *Resolver) Validate() (ResolverStats, error) {
	const (
		unvisited = iota
		onPath
		done
	)

	stats := ResolverStats{Entries: len(r.entries)}
	depth := make([]int, len(r.entries))
	state := make([]uint8, len(r.entries))
	var path []int

	for start := range r.entries {
		if state[start] == done {
			continue
		}

		path = path[:0]
		base := 0
		cur := start
		for {
			if state[cur] == done {
				base = depth[cur]
				break
			}
			if state[cur] == onPath {
				return stats, fmt.Errorf("%w: cycle through %q", ErrBrokenInheritance, r.entries[cur].Pattern)
			}
			state[cur] = onPath
			path = append(path, cur)

			next, ok, err := r.parent(cur)
			if err != nil {
				return stats, err
			}
			if !ok {
				stats.Roots++
				break
			}
			cur = next
		}

		d := base
		for i := len(path) - 1; i >= 0; i-- {
			d++
			if d > MaxInheritanceDepth {
				return stats, fmt.Errorf("%w: chain from %q exceeds %d levels",
					ErrBrokenInheritance, r.entries[path[0]].Pattern, MaxInheritanceDepth)
			}
			depth[path[i]] = d
			state[path[i]] = done
		}
		if d > stats.MaxDepth {
			stats.MaxDepth = d
		}
	}

	return stats, nil
}
