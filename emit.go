package ptree

// emit traces x with a label and returns it unchanged.
func emit[X any](x X, label string) X {
	tracer().Debugf("%s: %v", label, x)
	return x
}

// emitSlice is emit for slices, tracing the length alongside.
func emitSlice[X any](xs []X, label string) []X {
	tracer().Debugf("%s (%d): %v", label, len(xs), xs)
	return xs
}
