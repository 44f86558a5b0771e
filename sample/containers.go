package sample

// Set is an unordered collection of comparable values of any type.
// Adding a non-comparable value (a slice, map or func) panics.
type Set map[any]struct{}

// NewSet returns a Set holding items.
func NewSet(items ...any) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s Set) Add(item any) {
	s[item] = struct{}{}
}

func (s Set) Contains(item any) bool {
	_, ok := s[item]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Properties is a string to string mapping.
type Properties map[string]string

// Property returns the value for key, or fallback when key is unset.
func (p Properties) Property(key, fallback string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return fallback
}
