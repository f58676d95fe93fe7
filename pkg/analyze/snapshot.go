package analyze

import (
	"github.com/matzehuels/techstack/pkg/categorize"
	"github.com/matzehuels/techstack/pkg/deps"
)

// Stack is the analysis result for one ecosystem.
type Stack struct {
	Dependencies []deps.Dependency `json:"dependencies"`
	Categories   categorize.Map    `json:"categories"`
	Description  string            `json:"description,omitempty"`
}

// Snapshot is the result of one analysis run.
type Snapshot struct {
	Ecosystems []deps.Ecosystem `json:"ecosystems"`
	Node       *Stack           `json:"node,omitempty"`
	Python     *Stack           `json:"python,omitempty"`
	Warnings   []string         `json:"warnings,omitempty"`
}

// Detected reports whether any manifest was found.
func (s *Snapshot) Detected() bool {
	return len(s.Ecosystems) > 0
}

// Type classifies the project as "node", "python", "both" or "unknown".
func (s *Snapshot) Type() string {
	switch {
	case s.Node != nil && s.Python != nil:
		return "both"
	case s.Node != nil:
		return "node"
	case s.Python != nil:
		return "python"
	default:
		return "unknown"
	}
}

// Stack returns the result for ecosystem e, or nil.
func (s *Snapshot) Stack(e deps.Ecosystem) *Stack {
	switch e {
	case deps.EcosystemNode:
		return s.Node
	case deps.EcosystemPython:
		return s.Python
	}
	return nil
}

func (s *Snapshot) setStack(e deps.Ecosystem, st *Stack) {
	switch e {
	case deps.EcosystemNode:
		s.Node = st
	case deps.EcosystemPython:
		s.Python = st
	}
}

// Dependencies returns every dependency in ecosystem order.
func (s *Snapshot) Dependencies() []deps.Dependency {
	var all []deps.Dependency
	for _, e := range s.Ecosystems {
		if st := s.Stack(e); st != nil {
			all = append(all, st.Dependencies...)
		}
	}
	return all
}

// Categories returns the category maps of all ecosystems merged in
// ecosystem order. Categories with the same name are concatenated.
func (s *Snapshot) Categories() categorize.Map {
	var merged categorize.Map
	index := make(map[string]int)
	for _, e := range s.Ecosystems {
		st := s.Stack(e)
		if st == nil {
			continue
		}
		for _, c := range st.Categories {
			if i, ok := index[c.Name]; ok {
				merged[i].Members = append(merged[i].Members, c.Members...)
				continue
			}
			index[c.Name] = len(merged)
			merged = append(merged, categorize.Category{Name: c.Name, Members: append([]string(nil), c.Members...)})
		}
	}
	return merged
}

// Description returns the descriptions of all ecosystems joined by a
// newline, in ecosystem order.
func (s *Snapshot) Description() string {
	var out string
	for _, e := range s.Ecosystems {
		st := s.Stack(e)
		if st == nil || st.Description == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += st.Description
	}
	return out
}
