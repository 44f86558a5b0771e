package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type bean struct {
	name string
}

func (b *bean) DebugMap() map[string]any {
	return map[string]any{"name": b.name}
}

func TestDebugValue(t *testing.T) {
	t.Parallel()

	three := 3
	var nilBean *bean
	var nilMap map[string]int
	var nilSlice []int
	when := time.Date(2001, time.April, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    any
		fmtValue bool
		want     any
	}{
		{"nil", nil, false, "nil"},
		{"empty string", "", false, "(empty)"},
		{"string", "rod", false, "rod"},
		{"int", 42, false, 42},
		{"bool", true, false, true},
		{"float", 1.5, false, 1.5},
		{"pointer", &three, false, 3},
		{"nil pointer", nilBean, false, "nil"},
		{"debug map", &bean{name: "rod"}, false, map[string]any{"name": "rod"}},
		{"map", map[string]int{"a": 1}, false, "(map of size 1)"},
		{"map formatted", map[string]int{"a": 1}, true, "map[a:1]"},
		{"nil map", nilMap, false, "nil"},
		{"slice", []int{1, 2}, false, "(slice of size 2)"},
		{"slice formatted", []int{1, 2}, true, "[1 2]"},
		{"nil slice", nilSlice, false, "nil"},
		{"any slice", []any{"", 1, &bean{name: "x"}}, false, []any{"(empty)", 1, map[string]any{"name": "x"}}},
		{"struct", when, false, "(value)"},
		{"struct formatted", when, true, when.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DebugValue(tt.value, tt.fmtValue))
		})
	}
}

func TestSensitiveDebugValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nil", SensitiveDebugValue(nil))
	assert.Equal(t, "(empty)", SensitiveDebugValue(""))
	assert.Equal(t, "(sensitive)", SensitiveDebugValue("hunter2"))
	assert.Equal(t, "(sensitive)", SensitiveDebugValue(1234))
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	got := Flatten(map[string]any{
		"name": "rod",
		"doctor": map[string]any{
			"Company": "clinic",
			"address": map[string]any{"city": "Linz"},
		},
		"empty": map[string]any{},
	})

	assert.Equal(t, map[string]any{
		"name":                "rod",
		"doctor.Company":      "clinic",
		"doctor.address.city": "Linz",
	}, got)
}
