package testdata

// Size is a named input length for benchmarks.
type Size struct {
	Name string
	N    int
}

// Sizes are the input lengths benchmarks are run over.
var Sizes = []Size{
	{"1B", 1},
	{"64B", 64},
	{"1KiB", 1024},
	{"8KiB", 8 * 1024},
	{"64KiB", 64 * 1024},
	{"1MiB", 1024 * 1024},
}
