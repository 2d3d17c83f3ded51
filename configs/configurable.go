package configs

// Configurable is a value type stored under a fixed path in config files
type Configurable interface {
	ConfigPath() string
}

// Lookup decodes the first value at T's config path
func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigPath())
}
