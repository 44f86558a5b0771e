package sample

import "fmt"

// NestedTestBean is the associate owned by a TestBean through its doctor and
// lawyer properties.
type NestedTestBean struct {
	Company string `debugmap:"visible"`
}

// NewNestedTestBean returns a NestedTestBean working for company.
func NewNestedTestBean(company string) *NestedTestBean {
	return NewNestedTestBeanWithOptions(WithNestedTestBeanCompany(company))
}

// Equal reports whether n and other work for the same company.
func (n *NestedTestBean) Equal(other *NestedTestBean) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	return n.Company == other.Company
}

func (n *NestedTestBean) String() string {
	if n == nil {
		return "NestedTestBean: <nil>"
	}
	return fmt.Sprintf("NestedTestBean: %s", n.Company)
}

// IndexedTestBean holds TestBeans in every kind of indexed container.
type IndexedTestBean struct {
	Array []*TestBean
	List  []any
	Set   Set
	Map   map[string]any
}

// NewIndexedTestBean returns an IndexedTestBean populated with the beans
// name0 to name7, aged 0 to 7.
func NewIndexedTestBean() *IndexedTestBean {
	beans := make([]*TestBean, 8)
	for i := range beans {
		beans[i] = NewNamedAged(fmt.Sprintf("name%d", i), i)
	}
	return &IndexedTestBean{
		Array: []*TestBean{beans[0], beans[1]},
		List:  []any{beans[2], beans[3]},
		Set:   NewSet(beans[6], beans[7]),
		Map: map[string]any{
			"key1": beans[4],
			"key2": beans[5],
		},
	}
}
