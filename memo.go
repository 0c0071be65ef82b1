package charts

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// Memo keeps the last computed value with the key it was computed for. It
// belongs to its caller and is not safe for concurrent use.
type Memo[K comparable, V any] struct {
	key   K
	value V
	ok    bool
}

// Get returns the cached value when key matches the previous one, otherwise
// it calls compute and remembers the result. The second return value
// reports whether compute was called.
func (m *Memo[K, V]) Get(key K, compute func() V) (V, bool) {
	if m.ok && m.key == key {
		return m.value, false
	}
	m.key = key
	m.value = compute()
	m.ok = true
	return m.value, true
}

func (m *Memo[K, V]) Reset() {
	var (
		key K
		val V
	)
	m.key, m.value, m.ok = key, val, false
}

// Signature builds a fingerprint of every input that affects a layout.
type Signature struct {
	hash hash.Hash64
	buf  [8]byte
}

func NewSignature() *Signature {
	return &Signature{
		hash: fnv.New64a(),
	}
}

func (s *Signature) String(str string) *Signature {
	s.Int(len(str))
	s.hash.Write([]byte(str))
	return s
}

func (s *Signature) Float(f float64) *Signature {
	binary.LittleEndian.PutUint64(s.buf[:], math.Float64bits(f))
	s.hash.Write(s.buf[:])
	return s
}

func (s *Signature) Int(i int) *Signature {
	binary.LittleEndian.PutUint64(s.buf[:], uint64(i))
	s.hash.Write(s.buf[:])
	return s
}

func (s *Signature) Bool(b bool) *Signature {
	if b {
		return s.Int(1)
	}
	return s.Int(0)
}

func (s *Signature) Sum() uint64 {
	return s.hash.Sum64()
}
