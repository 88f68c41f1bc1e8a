// Package export is the single implementation behind the native and
// WebAssembly entry points. It turns host calls into kernel calls and
// kernel errors into integer status codes a foreign caller can read.
package export

import (
	"sync"

	"ising-mc/pkg/core"
	"ising-mc/pkg/ising"

	"github.com/pkg/errors"
)

// Status is the integer result returned across the export boundary.
type Status int32

const (
	StatusOK                 Status = 0
	StatusInvalidSize        Status = 1
	StatusInvalidTemperature Status = 2
	StatusUnknownStream      Status = 3
)

// DefaultStream is the process-wide stream used by the plain mcmove entry.
const DefaultStream uint32 = 0

// DefaultSeed seeds DefaultStream until the host reseeds it.
const DefaultSeed int64 = 42

var errUnknownStream = errors.New("unknown stream")

// StatusOf maps a kernel error onto a Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, core.ErrInvalidSize):
		return StatusInvalidSize
	case errors.Is(err, core.ErrInvalidTemperature):
		return StatusInvalidTemperature
	default:
		return StatusUnknownStream
	}
}

// String names the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidSize:
		return "invalid size"
	case StatusInvalidTemperature:
		return "invalid temperature"
	case StatusUnknownStream:
		return "unknown stream"
	}
	return "unknown status"
}

// Streams is a table of host-visible RNG streams. The table itself is safe
// for concurrent use, but a single stream is not: hosts running sweeps in
// parallel must open one stream per concurrent simulation.
type Streams struct {
	mu   sync.Mutex
	next uint32
	rngs map[uint32]*core.RNG
}

// NewStreams returns a table holding only DefaultStream.
func NewStreams() *Streams {
	return &Streams{
		next: DefaultStream + 1,
		rngs: map[uint32]*core.RNG{DefaultStream: core.NewRNG(DefaultSeed)},
	}
}

// Open registers a new stream seeded with seed and returns its handle.
func (s *Streams) Open(seed int64) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		id := s.next
		s.next++
		if _, taken := s.rngs[id]; taken || id == DefaultStream {
			continue
		}
		s.rngs[id] = core.NewRNG(seed)
		return id
	}
}

// Close forgets a stream. DefaultStream cannot be closed.
func (s *Streams) Close(id uint32) Status {
	if id == DefaultStream {
		return StatusUnknownStream
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rngs[id]; !ok {
		return StatusUnknownStream
	}
	delete(s.rngs, id)
	return StatusOK
}

// Reseed restarts a stream from seed.
func (s *Streams) Reseed(id uint32, seed int64) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rngs[id]; !ok {
		return StatusUnknownStream
	}
	s.rngs[id] = core.NewRNG(seed)
	return StatusOK
}

func (s *Streams) lookup(id uint32) (*core.RNG, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rng, ok := s.rngs[id]
	if !ok {
		return nil, errors.Wrapf(errUnknownStream, "stream %d", id)
	}
	return rng, nil
}

// MCMove runs one sweep over a host buffer using stream id. Size and
// temperature are checked before the stream is consulted, and a non-OK
// status guarantees the buffer was not written.
func (s *Streams) MCMove(spins []int8, temperature float64, id uint32) Status {
	lat, err := core.View(spins)
	if err != nil {
		return StatusOf(err)
	}
	m, err := ising.NewMetropolis(temperature)
	if err != nil {
		return StatusOf(err)
	}
	rng, err := s.lookup(id)
	if err != nil {
		return StatusOf(err)
	}
	m.Sweep(&lat, rng)
	return StatusOK
}
