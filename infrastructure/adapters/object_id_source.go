package adapters

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"
	"voice-translator-lambda/application/ports/outbound"

	"github.com/google/uuid"
)

const idSuffixModulus = 1000000

// timestampIDSource yields epoch milliseconds followed by a six digit random suffix.
// The millisecond part is bumped past the last issued value, so ids never repeat within
// a process; the suffix separates processes that start an invocation in the same millisecond.
type timestampIDSource struct {
	mu     sync.Mutex
	clock  func() time.Time
	suffix func() uint32
	last   int64
}

func NewTimestampIDSource() outbound.ObjectIDSource {
	return newTimestampIDSource(time.Now, randomSuffix)
}

func newTimestampIDSource(clock func() time.Time, suffix func() uint32) *timestampIDSource {
	return &timestampIDSource{clock: clock, suffix: suffix}
}

func (s *timestampIDSource) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.clock().UnixMilli()
	if next <= s.last {
		next = s.last + 1
	}
	s.last = next
	return fmt.Sprintf("%d%06d", next, s.suffix()%idSuffixModulus)
}

func randomSuffix() uint32 {
	id := uuid.New()
	return binary.BigEndian.Uint32(id[:4])
}

type uuidIDSource struct{}

func NewUUIDIDSource() outbound.ObjectIDSource {
	return uuidIDSource{}
}

func (uuidIDSource) NextID() string {
	return uuid.NewString()
}
