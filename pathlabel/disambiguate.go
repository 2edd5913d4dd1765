package pathlabel

import "strings"

// Separator splits paths into segments and joins suffixes back together.
const Separator = "/"

// chunk is one candidate suffix and the full paths currently mapped to it.
// A generation is a set of chunks keyed by suffix; it is rebuilt wholesale
// each round rather than mutated in place.
type chunk struct {
	suffix  string
	members []string
}

// Disambiguate computes, for every path, the shortest trailing run of
// segments that distinguishes it from every other path in the set, joined
// with Separator. Paths must be non-empty and pairwise distinct as full
// strings; behavior for empty paths or duplicates is unspecified.
//
// Suffixes are assigned greedily: once a path's suffix is unique within a
// round it is frozen, even if paths frozen later end up with longer
// suffixes than a globally minimal assignment would give them. Paths that
// still collide at their full depth keep the full path as a best-effort
// label.
func Disambiguate(paths []string) map[string]string {
	segs := make(map[string][]string, len(paths))
	depth := make(map[string]int, len(paths))
	maxDepth := 0
	for _, p := range paths {
		s := strings.Split(p, Separator)
		segs[p] = s
		depth[p] = 1
		if len(s) > maxDepth {
			maxDepth = len(s)
		}
	}

	gen := buildGeneration(paths, segs, depth)

	// each round deepens only colliding chunks, and a path can deepen at
	// most len(segs)-1 times, so maxDepth rounds always suffice
	for round := 1; round < maxDepth; round++ {
		if maxOverlap(gen) == 1 {
			break
		}
		for _, c := range gen {
			if len(c.members) == 1 {
				continue // frozen
			}
			for _, p := range c.members {
				if depth[p] < len(segs[p]) {
					depth[p]++
				}
			}
		}
		gen = buildGeneration(paths, segs, depth)
	}

	labels := make(map[string]string, len(paths))
	for _, c := range gen {
		for _, p := range c.members {
			labels[p] = c.suffix
		}
	}
	return labels
}

// buildGeneration groups paths by their current candidate suffix (the last
// depth[p] segments of each path).
func buildGeneration(paths []string, segs map[string][]string, depth map[string]int) map[string]*chunk {
	gen := make(map[string]*chunk)
	for _, p := range paths {
		s := segs[p]
		suffix := strings.Join(s[len(s)-depth[p]:], Separator)
		c, ok := gen[suffix]
		if !ok {
			c = &chunk{suffix: suffix}
			gen[suffix] = c
		}
		c.members = append(c.members, p)
	}
	return gen
}

func maxOverlap(gen map[string]*chunk) int {
	most := 0
	for _, c := range gen {
		if len(c.members) > most {
			most = len(c.members)
		}
	}
	return most
}
