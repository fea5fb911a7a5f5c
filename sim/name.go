package sim

import "log"

// NameMustBeValid panics if the given name is empty. Names are used
// pervasively as map keys and log identifiers, so an empty name is always a
// programming mistake rather than a runtime condition to recover from.
func NameMustBeValid(name string) {
	if name == "" {
		log.Panic("name must not be empty")
	}
}
