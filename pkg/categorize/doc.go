// Package categorize assigns dependencies to semantic categories using
// ordered keyword rules.
//
// A [Rules] value holds an ordered list of keyword groups for one ecosystem.
// A dependency belongs to the first group with a keyword that occurs as a
// substring of its lower-cased name ("eslint-config-airbnb" matches
// "eslint"). Dependencies that match no group land in the fallback category.
// Group order decides ties, never keyword specificity.
//
// The result is a [Map]: an ordered list of non-empty categories that
// serializes to a JSON object with the same key order.
//
//	m := categorize.Categorize(categorize.NodeRules(), list)
//	for _, c := range m {
//	    fmt.Println(c.Name, c.Members)
//	}
//
// Built-in rules can be overridden per ecosystem with a TOML or YAML file,
// see [LoadRules].
package categorize
