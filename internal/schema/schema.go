// Package schema accumulates the union of property names observed at every
// structural path ("signature") across both documents in a diff, and
// flattens a node's raw properties into a fixed-order vector aligned to its
// schema.
package schema

import "github.com/xmldiff/xmldiff/internal/bigram"

// Schema is the accumulated property-name set observed at one structural
// signature, identified by an id assigned on first sight.
type Schema struct {
	ID   int
	name string

	// order preserves first-seen order for stable column formatting.
	order []string
	seen  map[string]bool
}

func newSchema(id int, name string) *Schema {
	return &Schema{ID: id, name: name, seen: map[string]bool{}}
}

func (s *Schema) union(names []string) {
	for _, n := range names {
		if !s.seen[n] {
			s.seen[n] = true
			s.order = append(s.order, n)
		}
	}
}

// Registry maps structural signatures to Schemas, shared between the two
// documents being compared so matching schemas get identical ids.
type Registry struct {
	counter *Counter
	bySig   map[string]*Schema
}

// NewRegistry returns an empty Registry backed by its own Counter.
func NewRegistry() *Registry {
	return &Registry{counter: NewCounter(), bySig: map[string]*Schema{}}
}

// AddPropertyNames registers signature on first sight, allocating a fresh
// id from the shared Counter, and unions names into its property set.
func (r *Registry) AddPropertyNames(signature string, names []string) {
	s, ok := r.bySig[signature]
	if !ok {
		s = newSchema(r.counter.Next(), signature)
		r.bySig[signature] = s
	}
	s.union(names)
}

// Format flattens properties into a vector aligned to the schema registered
// for signature, in that schema's stable first-seen column order. Missing
// properties are represented as the empty Bigram. If signature was never
// registered, Format returns (-1, nil); correct callers always call
// AddPropertyNames (indirectly, via constructing every NodeInfo) before
// calling Format, so this path indicates a programming error in the core.
func (r *Registry) Format(signature string, properties map[string]bigram.Bigram) (int, []bigram.Bigram) {
	s, ok := r.bySig[signature]
	if !ok {
		return -1, nil
	}

	vec := make([]bigram.Bigram, len(s.order))
	for i, name := range s.order {
		if b, ok := properties[name]; ok {
			vec[i] = b
		} else {
			vec[i] = bigram.Empty
		}
	}
	return s.ID, vec
}

// ColumnCount returns the number of columns Format would emit for
// signature, or -1 if the signature is unknown.
func (r *Registry) ColumnCount(signature string) int {
	s, ok := r.bySig[signature]
	if !ok {
		return -1
	}
	return len(s.order)
}

// Count returns the number of distinct schema ids allocated so far. Since
// ids are dense and allocated in first-observation order across both
// documents sharing this Registry, iterating 0..Count()-1 visits schemas in
// the same deterministic order the diff engine needs for bucket iteration.
func (r *Registry) Count() int {
	return r.counter.Value()
}
