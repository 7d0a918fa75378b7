package telemetry

import (
	"hash/fnv"
	"math/rand"
)

// Signal names one noisy telemetry channel.
type Signal string

const (
	SignalSpeed Signal = "speed" // per-lap average speed
	SignalFuel  Signal = "fuel"  // per-lap fuel burn
	SignalWear  Signal = "wear"  // cumulative tyre wear
)

var signals = []Signal{SignalSpeed, SignalFuel, SignalWear}

// Streams holds one random source per signal, all derived from a single seed.
// Each signal draws from its own stream, so widening the speed band or adding draws
// to one channel leaves the other channels' laps unchanged for the same seed.
// The speed stream is seeded with the seed itself; fuel and wear mix in a hash of
// the signal name.
type Streams struct {
	seed    int64
	streams map[Signal]*rand.Rand
}

// NewStreams seeds every telemetry signal from seed.
func NewStreams(seed int64) *Streams {
	s := &Streams{seed: seed, streams: make(map[Signal]*rand.Rand, len(signals))}
	for _, sig := range signals {
		s.streams[sig] = rand.New(rand.NewSource(signalSeed(seed, sig)))
	}
	return s
}

// For returns the stream of sig, or nil for an unknown signal.
func (s *Streams) For(sig Signal) *rand.Rand {
	return s.streams[sig]
}

// Seed is the seed the streams were derived from.
func (s *Streams) Seed() int64 { return s.seed }

func signalSeed(seed int64, sig Signal) int64 {
	if sig == SignalSpeed {
		return seed
	}
	h := fnv.New64a()
	h.Write([]byte(sig))
	return seed ^ int64(h.Sum64())
}
