package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreams_SameSeedSameDraws(t *testing.T) {
	// GIVEN two stream sets from the same seed
	a, b := NewStreams(42), NewStreams(42)

	// THEN every signal yields the same sequence
	for _, sig := range signals {
		for i := 0; i < 3; i++ {
			assert.Equal(t, a.For(sig).Float64(), b.For(sig).Float64(), "%s draw %d", sig, i)
		}
	}
}

func TestStreams_SignalsAreIndependent(t *testing.T) {
	// GIVEN one set that draws heavily from speed
	a, b := NewStreams(42), NewStreams(42)
	for i := 0; i < 100; i++ {
		a.For(SignalSpeed).Float64()
	}

	// THEN its wear stream is unaffected
	assert.Equal(t, b.For(SignalWear).Float64(), a.For(SignalWear).Float64())
}

func TestStreams_SignalsDiffer(t *testing.T) {
	s := NewStreams(42)
	assert.NotEqual(t, s.For(SignalSpeed).Int63(), s.For(SignalFuel).Int63())
}

func TestStreams_ForIsStable(t *testing.T) {
	s := NewStreams(7)
	assert.Same(t, s.For(SignalFuel), s.For(SignalFuel))
	assert.Nil(t, s.For("brake"))
	assert.Equal(t, int64(7), s.Seed())
}
