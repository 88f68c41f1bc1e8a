//go:build cgo

// Command libising builds the native shared object:
//
//	go build -buildmode=c-shared -o libising.so ./cmd/libising
//
// Every entry returns an int status: 0 ok, 1 invalid size, 2 invalid
// temperature, 3 unknown stream.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"ising-mc/internal/export"
)

var streams = export.NewStreams()

// mcmove performs one sweep over n spins (n must be a perfect square) at the
// given temperature using the process-wide stream.
//
//export mcmove
func mcmove(spins *C.int8_t, n C.int, temperature C.double) C.int {
	return C.int(streams.MCMove(hostSpins(spins, n), float64(temperature), export.DefaultStream))
}

// mcmove_stream is mcmove with an explicit stream handle.
//
//export mcmove_stream
func mcmove_stream(spins *C.int8_t, n C.int, temperature C.double, stream C.uint32_t) C.int {
	return C.int(streams.MCMove(hostSpins(spins, n), float64(temperature), uint32(stream)))
}

//export ising_seed
func ising_seed(seed C.int64_t) C.int {
	return C.int(streams.Reseed(export.DefaultStream, int64(seed)))
}

//export ising_stream_open
func ising_stream_open(seed C.int64_t) C.uint32_t {
	return C.uint32_t(streams.Open(int64(seed)))
}

//export ising_stream_close
func ising_stream_close(stream C.uint32_t) C.int {
	return C.int(streams.Close(uint32(stream)))
}

// hostSpins views host memory as a Go slice for the duration of one call.
// A nil pointer or non-positive length yields an empty slice, which the
// kernel rejects as an invalid size.
func hostSpins(p *C.int8_t, n C.int) []int8 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*int8)(unsafe.Pointer(p)), int(n))
}

func main() {}
