package categorize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Category is one named group of dependency names.
type Category struct {
	Name    string
	Members []string
}

// Map is an ordered category-to-members mapping.
type Map []Category

// Names returns the category names in order.
func (m Map) Names() []string {
	names := make([]string, len(m))
	for i, c := range m {
		names[i] = c.Name
	}
	return names
}

// Get returns the members of the named category.
func (m Map) Get(name string) ([]string, bool) {
	for _, c := range m {
		if c.Name == name {
			return c.Members, true
		}
	}
	return nil, false
}

// All returns every member in category order.
func (m Map) All() []string {
	var all []string
	for _, c := range m {
		all = append(all, c.Members...)
	}
	return all
}

// Len returns the total number of members.
func (m Map) Len() int {
	n := 0
	for _, c := range m {
		n += len(c.Members)
	}
	return n
}

// Filter returns the categories restricted to members accepted by keep,
// dropping categories that become empty. Member order is preserved.
func (m Map) Filter(keep func(string) bool) Map {
	var out Map
	for _, c := range m {
		var members []string
		for _, name := range c.Members {
			if keep(name) {
				members = append(members, name)
			}
		}
		if len(members) > 0 {
			out = append(out, Category{Name: c.Name, Members: members})
		}
	}
	return out
}

// MarshalJSON encodes m as an object whose key order is the category order.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		members := c.Members
		if members == nil {
			members = []string{}
		}
		val, err := json.Marshal(members)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of string arrays, keeping key order.
// A repeated key extends the existing category.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("category map: expected object, got %v", tok)
	}

	var out Map
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("category map: expected key, got %v", tok)
		}
		var members []string
		if err := dec.Decode(&members); err != nil {
			return fmt.Errorf("category map: %s: %w", name, err)
		}
		if i, ok := index[name]; ok {
			out[i].Members = append(out[i].Members, members...)
			continue
		}
		index[name] = len(out)
		out = append(out, Category{Name: name, Members: members})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("category map: unexpected trailing data")
	}
	*m = out
	return nil
}
