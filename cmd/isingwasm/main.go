//go:build wasip1

// Command isingwasm builds the WebAssembly reactor module:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o ising.wasm ./cmd/isingwasm
//
// The exports mirror cmd/libising. Because the module owns its linear
// memory, hosts obtain a lattice buffer with ising_alloc, write spins into
// it, call mcmove, and release it with ising_free.
package main

import (
	"sync"
	"unsafe"

	"ising-mc/internal/export"
)

var (
	streams = export.NewStreams()

	buffersMu sync.Mutex
	buffers   = map[uintptr][]int8{}
)

//go:wasmexport mcmove
func mcmove(spins unsafe.Pointer, n int32, temperature float64) int32 {
	return int32(streams.MCMove(hostSpins(spins, n), temperature, export.DefaultStream))
}

//go:wasmexport mcmove_stream
func mcmoveStream(spins unsafe.Pointer, n int32, temperature float64, stream uint32) int32 {
	return int32(streams.MCMove(hostSpins(spins, n), temperature, stream))
}

//go:wasmexport ising_seed
func isingSeed(seed int64) int32 {
	return int32(streams.Reseed(export.DefaultStream, seed))
}

//go:wasmexport ising_stream_open
func isingStreamOpen(seed int64) uint32 {
	return streams.Open(seed)
}

//go:wasmexport ising_stream_close
func isingStreamClose(stream uint32) int32 {
	return int32(streams.Close(stream))
}

// ising_alloc reserves n spin bytes inside linear memory and keeps them
// reachable until ising_free.
//
//go:wasmexport ising_alloc
func isingAlloc(n int32) unsafe.Pointer {
	if n <= 0 {
		return nil
	}
	buf := make([]int8, n)
	p := unsafe.Pointer(unsafe.SliceData(buf))
	buffersMu.Lock()
	buffers[uintptr(p)] = buf
	buffersMu.Unlock()
	return p
}

//go:wasmexport ising_free
func isingFree(p unsafe.Pointer) {
	buffersMu.Lock()
	delete(buffers, uintptr(p))
	buffersMu.Unlock()
}

func hostSpins(p unsafe.Pointer, n int32) []int8 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*int8)(p), int(n))
}

func main() {}
