package inkpress

import (
	"sort"
	"strings"
)

// GroupIndex maps a group name (a series or tag) to the published entries
// belonging to it, newest first. It is derived data: handlers rebuild it from
// the current entry set on demand and throw it away after rendering.
type GroupIndex map[string][]ContentEntry

// GroupsFunc selects which group names an entry belongs to. Series and tags
// are the two groupings shipped with the engine.
type GroupsFunc func(ContentEntry) []string

// BySeries selects an entry's series memberships.
func BySeries(e ContentEntry) []string { return e.Series }

// ByTag selects an entry's tag memberships.
func ByTag(e ContentEntry) []string { return e.Tags }

// DistinctGroups returns every group name that at least one published entry
// belongs to, sorted lexicographically. Draft entries contribute nothing, and
// blank names are skipped.
func DistinctGroups(entries []ContentEntry, groupsOf GroupsFunc) []string {
	set := make(map[string]struct{})
	for _, e := range entries {
		if e.Draft {
			continue
		}
		for _, g := range groupsOf(e) {
			if g = strings.TrimSpace(g); g != "" {
				set[g] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(set))
	for g := range set {
		names = append(names, g)
	}
	sort.Strings(names)
	return names
}

// EntriesForGroup returns the published entries belonging to group, newest
// first. Entries sharing a publication date keep their relative input order,
// so the result is reproducible for identical input. An unknown group yields
// an empty slice. The input slice is never modified.
func EntriesForGroup(entries []ContentEntry, groupsOf GroupsFunc, group string) []ContentEntry {
	group = strings.TrimSpace(group)
	if group == "" {
		return nil
	}
	var matched []ContentEntry
	for _, e := range entries {
		if e.Draft {
			continue
		}
		for _, g := range groupsOf(e) {
			if strings.TrimSpace(g) == group {
				matched = append(matched, e)
				break
			}
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PublishedAt.After(matched[j].PublishedAt)
	})
	return matched
}

// BuildIndex assembles the full group-to-entries mapping. It is exactly the
// composition of DistinctGroups and EntriesForGroup; the map carries one key
// per distinct group, no more and no less.
func BuildIndex(entries []ContentEntry, groupsOf GroupsFunc) GroupIndex {
	groups := DistinctGroups(entries, groupsOf)
	idx := make(GroupIndex, len(groups))
	for _, g := range groups {
		idx[g] = EntriesForGroup(entries, groupsOf, g)
	}
	return idx
}
