package testdata

// SlicesAndMaps tests collection fields
type SlicesAndMaps struct {
	Tags     []string          `debugmap:"visible-format"`
	Ports    []int             `debugmap:"visible"`
	Labels   map[string]string `debugmap:"visible"`
	friends  []any             `bean:"rw" debugmap:"visible"`
	registry map[any]any       `bean:"rw" debugmap:"visible-format"`
}
