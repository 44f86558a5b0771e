package sample

// Factory is the container that creates and wires beans. It is opaque to
// the fixtures; they only keep a reference to it.
type Factory interface {
	Bean(name string) (any, error)
}

// NameAware beans are told the name they were registered under.
type NameAware interface {
	SetBeanName(name string)
}

// FactoryAware beans are handed the Factory that owns them.
type FactoryAware interface {
	SetBeanFactory(factory Factory)
}

// Disposable beans are released by their container on shutdown.
type Disposable interface {
	Destroy()
}

var (
	_ NameAware    = (*TestBean)(nil)
	_ FactoryAware = (*TestBean)(nil)
	_ Disposable   = (*TestBean)(nil)
)
