package simdb64

// Kernel identifies a chunk transform implementation.
type Kernel int

const (
	// KernelScalar transforms a chunk one byte at a time with plain integer
	// arithmetic over the shared tables.
	KernelScalar Kernel = iota
	// KernelLanes transforms a chunk as 16-lane vectors, the same data flow a
	// 128-bit SIMD unit executes.
	KernelLanes
)

func (k Kernel) String() string {
	switch k {
	case KernelScalar:
		return "scalar"
	case KernelLanes:
		return "lanes"
	}
	return "unknown"
}

// chunkSize is the number of ASCII bytes one kernel call consumes or
// produces; rawChunkSize is the matching number of raw bytes.
const (
	chunkSize    = 16
	rawChunkSize = 12
)
