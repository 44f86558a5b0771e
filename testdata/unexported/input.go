package testdata

// Account has accessors generated for its unexported fields
type Account struct {
	// Exported without a bean tag: options only
	Host string `debugmap:"visible"`

	// Getter, setter and option
	owner string `bean:"rw" debugmap:"visible"`

	// Getter only, the setter is written by hand
	balance int `bean:"ro" debugmap:"visible"`

	// No accessors, still copied by ToOption
	closed bool `bean:"skip" debugmap:"visible"`

	// Ignored entirely
	cache map[string]any
}
