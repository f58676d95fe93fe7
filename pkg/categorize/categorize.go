package categorize

import "github.com/matzehuels/techstack/pkg/deps"

// Categorize partitions list by rules. Categories follow the rule group
// order with the fallback last; empty categories are omitted. A name that
// occurs more than once is placed only once.
func Categorize(rules Rules, list []deps.Dependency) Map {
	buckets := make(map[string][]string)
	seen := make(map[string]bool, len(list))
	for _, d := range list {
		if seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		cat := rules.Match(d.Name)
		buckets[cat] = append(buckets[cat], d.Name)
	}

	var m Map
	add := func(name string) {
		if members := buckets[name]; len(members) > 0 {
			m = append(m, Category{Name: name, Members: members})
			delete(buckets, name)
		}
	}
	for _, g := range rules.Groups {
		add(g.Name)
	}
	add(rules.fallback())
	return m
}
