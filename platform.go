package simdb64

import (
	"fmt"
	"os"

	"golang.org/x/sys/cpu"
)

var version = 0x010000

// kernelEnv forces a kernel by name ("lanes" or "scalar") instead of the one
// picked from CPU features.
const kernelEnv = "SIMDB64_KERNEL"

// useLaneEncode and useLaneDecode select the lane kernel for each direction.
var (
	useLaneEncode = detectKernel() == KernelLanes
	useLaneDecode = detectKernel() == KernelLanes
)

// detectKernel prefers the lane kernel on hosts with 128-bit byte shuffles
// (SSSE3 PSHUFB on amd64, ASIMD TBL on arm64).
func detectKernel() Kernel {
	switch os.Getenv(kernelEnv) {
	case "scalar":
		return KernelScalar
	case "lanes":
		return KernelLanes
	}
	if cpu.X86.HasSSSE3 || cpu.ARM64.HasASIMD {
		return KernelLanes
	}
	return KernelScalar
}

// Version returns the version of the library.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", version>>16&0xff, version>>8&0xff, version&0xff)
}

// DecodeKernel returns the name of the implementation being used for decode operations
func DecodeKernel() string {
	if useLaneDecode {
		return KernelLanes.String()
	}
	return KernelScalar.String()
}

// EncodeKernel returns the name of the implementation being used for encode operations
func EncodeKernel() string {
	if useLaneEncode {
		return KernelLanes.String()
	}
	return KernelScalar.String()
}

// encodeBlock encodes the first 12 bytes of src into 16 characters.
func encodeBlock(dst, src *[chunkSize]byte) {
	if useLaneEncode {
		encodeChunk(dst, src)
		return
	}
	encodeChunkScalar(dst, src)
}

// decodeBlock decodes 16 characters into the first 12 bytes of dst. It
// reports false, leaving dst unspecified, if any character is outside the
// alphabet.
func decodeBlock(dst, src *[chunkSize]byte) bool {
	if useLaneDecode {
		return decodeChunk(dst, src)
	}
	return decodeChunkScalar(dst, src)
}
