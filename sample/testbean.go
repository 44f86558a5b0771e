// Package sample holds simple beans used to exercise bean factories and the
// code they wire together.
package sample

import (
	"strings"
	"time"

	"github.com/creasty/defaults"
)

//go:generate go run github.com/limz/beanfixture --prefix --output=testbean_options.go . TestBean NestedTestBean

// TestBean is a bag of typed properties with plain accessors. Values are
// absent when zero: an empty string, a nil pointer or NoColour.
//
// A TestBean is not safe for concurrent use.
type TestBean struct {
	beanName      string  `bean:"rw" debugmap:"visible"`
	beanFactory   Factory `bean:"rw" debugmap:"hidden"`
	postProcessed bool    `bean:"rw" debugmap:"visible"`

	country string `bean:"rw" debugmap:"visible"`
	name    string `bean:"rw" debugmap:"visible"`
	sex     string `bean:"ro" debugmap:"visible"`
	age     int    `bean:"rw" debugmap:"visible"`
	jedi    bool   `bean:"rw" debugmap:"visible"`
	touchy  string `bean:"ro" debugmap:"sensitive"`

	// spouse may point back at this bean.
	spouse *TestBean `bean:"rw" debugmap:"hidden"`

	stringArray        []string `bean:"rw" debugmap:"visible-format"`
	someIntegerArray   []*int   `bean:"rw" debugmap:"visible"`
	nestedIntegerArray [][]*int `bean:"rw" debugmap:"visible"`
	someIntArray       []int    `bean:"rw" debugmap:"visible-format"`
	nestedIntArray     [][]int  `bean:"rw" debugmap:"visible"`

	date    time.Time `bean:"rw" debugmap:"visible-format"`
	myFloat float32   `bean:"rw" debugmap:"visible"`

	friends        []any       `bean:"rw" debugmap:"visible"`
	someSet        Set         `bean:"rw" debugmap:"visible"`
	someMap        map[any]any `bean:"rw" debugmap:"visible"`
	someList       []any       `bean:"rw" debugmap:"visible"`
	someProperties Properties  `bean:"rw" debugmap:"visible-format"`

	doctor            *NestedTestBean  `bean:"rw" debugmap:"visible"`
	lawyer            *NestedTestBean  `bean:"rw" debugmap:"visible"`
	nestedIndexedBean *IndexedTestBean `bean:"rw" debugmap:"hidden"`

	destroyed bool `bean:"skip" debugmap:"visible"`

	someNumber      *float64 `bean:"rw" debugmap:"visible"`
	favouriteColour Colour   `bean:"rw" debugmap:"visible"`
	someBoolean     *bool    `bean:"rw" debugmap:"visible"`
	otherColours    []any    `bean:"rw" debugmap:"visible"`
	pets            []any    `bean:"rw" debugmap:"visible"`
}

// New returns a TestBean with every default applied.
func New() *TestBean {
	return NewTestBeanWithOptionsAndDefaults()
}

func NewNamed(name string) *TestBean {
	return NewTestBeanWithOptionsAndDefaults(WithTestBeanName(name))
}

func NewWithSpouse(spouse *TestBean) *TestBean {
	return NewTestBeanWithOptionsAndDefaults(WithTestBeanSpouse(spouse))
}

func NewNamedAged(name string, age int) *TestBean {
	return NewTestBeanWithOptionsAndDefaults(
		WithTestBeanName(name),
		WithTestBeanAge(age),
	)
}

func NewWithSpouseAndProperties(spouse *TestBean, props Properties) *TestBean {
	return NewTestBeanWithOptionsAndDefaults(
		WithTestBeanSpouse(spouse),
		WithTestBeanSomeProperties(props),
	)
}

func NewWithList(list []any) *TestBean {
	return NewTestBeanWithOptionsAndDefaults(SetTestBeanSomeList(list))
}

func NewWithSet(set Set) *TestBean {
	return NewTestBeanWithOptionsAndDefaults(WithTestBeanSomeSet(set))
}

func NewWithMap(m map[any]any) *TestBean {
	return NewTestBeanWithOptionsAndDefaults(SetTestBeanSomeMap(m))
}

func NewWithProperties(props Properties) *TestBean {
	return NewTestBeanWithOptionsAndDefaults(WithTestBeanSomeProperties(props))
}

// SetDefaults fills every zero-valued property that has a default. It is
// called by defaults.Set and never overwrites a value already present.
func (t *TestBean) SetDefaults() {
	if t.date.IsZero() {
		t.date = time.Now()
	}
	if t.friends == nil {
		t.friends = []any{}
	}
	if t.someSet == nil {
		t.someSet = Set{}
	}
	if t.someMap == nil {
		t.someMap = map[any]any{}
	}
	if t.someList == nil {
		t.someList = []any{}
	}
	if t.someProperties == nil {
		t.someProperties = Properties{}
	}
	if t.doctor == nil {
		t.doctor = &NestedTestBean{}
	}
	if t.lawyer == nil {
		t.lawyer = &NestedTestBean{}
	}
}

var _ defaults.Setter = (*TestBean)(nil)

// SetSex sets sex, and name too while name is still absent.
func (t *TestBean) SetSex(sex string) {
	t.sex = sex
	if t.name == "" {
		t.name = sex
	}
}

// SetTouchy sets touchy unless it contains a '.' (ErrFormat) or a ','
// (ErrValidation). On error touchy is left unchanged.
func (t *TestBean) SetTouchy(touchy string) error {
	if strings.ContainsRune(touchy, '.') {
		return &PropertyError{Property: "touchy", Value: touchy, Reason: "can't contain a '.'", Err: ErrFormat}
	}
	if strings.ContainsRune(touchy, ',') {
		return &PropertyError{Property: "touchy", Value: touchy, Reason: "can't contain a ','", Err: ErrValidation}
	}
	t.touchy = touchy
	return nil
}

// Destroy marks the bean as destroyed. There is no way back.
func (t *TestBean) Destroy() {
	t.destroyed = true
}

func (t *TestBean) WasDestroyed() bool {
	return t.destroyed
}

// Equal reports whether t and other have the same name and age. No other
// property takes part.
func (t *TestBean) Equal(other *TestBean) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.name == other.name && t.age == other.age
}

// Hash is consistent with Equal.
func (t *TestBean) Hash() int {
	return t.age
}

// Compare reports t as greater than other for every input, t itself
// included. It is not a valid ordering; do not sort with it.
func (t *TestBean) Compare(other any) int {
	return 1
}

// String returns the bean's name.
func (t *TestBean) String() string {
	return t.name
}
