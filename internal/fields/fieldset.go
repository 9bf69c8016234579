// SPDX-License-Identifier: MIT

package fields

// fieldSet collects fields by name in first-seen order.
type fieldSet struct {
	index  map[string]int
	fields []Field
}

func newFieldSet() *fieldSet {
	return &fieldSet{index: make(map[string]int)}
}

// add appends a field, or replaces the value of an earlier field with the
// same name without moving it.
func (s *fieldSet) add(name string, value any) {
	if i, ok := s.index[name]; ok {
		s.fields[i].Value = value
		return
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, Field{Name: name, Value: value})
}
