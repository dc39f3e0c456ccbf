package progress

// This file exports private functions used for unit testing

// Lookup resolves a token the way the native trampoline does.
func Lookup(token uintptr) *Bridge {
	return lookup(token)
}
