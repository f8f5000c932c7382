package lisp

// bindingPair is a single symbol binding.  The value is owned by the
// bindings that contain it.
type bindingPair struct {
	name  string
	value *LVal
}

// bindings is an ordered set of symbol bindings.  The order in which symbols
// were first bound is preserved and rebinding a symbol updates it in place.
type bindings struct {
	pairs []bindingPair
	index map[string]int
}

func newBindings(n int) *bindings {
	return &bindings{
		pairs: make([]bindingPair, 0, n),
		index: make(map[string]int, n),
	}
}

// Len returns the number of symbols bound.
func (s *bindings) Len() int {
	return len(s.pairs)
}

// Name returns the name of the variable at index i.
func (s *bindings) Name(i int) string {
	return s.pairs[i].name
}

// Get returns the value bound to name.
func (s *bindings) Get(name string) (*LVal, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.pairs[i].value, true
}

// PutIndex rebinds the variable at index i to v.
func (s *bindings) PutIndex(i int, v *LVal) {
	s.pairs[i].value = v
}

// Put binds name to v.  If name was previously bound its entry will be
// updated.  Otherwise Put creates a new binding.
func (s *bindings) Put(name string, v *LVal) {
	i, ok := s.index[name]
	if ok {
		s.PutIndex(i, v)
		return
	}
	s.index[name] = len(s.pairs)
	s.pairs = append(s.pairs, bindingPair{name, v})
}
