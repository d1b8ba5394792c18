package transforms

// ResyncInfo carries resynchronization-point metadata signaled by a
// streaming manifest. It is passive configuration data consumed by a
// higher-level streaming client; the transform core itself never reads it.
//
// Field semantics follow the DASH Resync element (ISO/IEC 23009-1).
type ResyncInfo struct {
	resyncType    uint32
	maxTimeDelta  uint32
	maxIndexDelta float32
	minIndexDelta float32
	hasMarker     bool
}

// NewResyncInfo builds an immutable metadata carrier. minIndexDelta
// defaults to 0 when not signaled.
func NewResyncInfo(resyncType, maxTimeDelta uint32, maxIndexDelta, minIndexDelta float32, hasMarker bool) *ResyncInfo {
	return &ResyncInfo{
		resyncType:    resyncType,
		maxTimeDelta:  maxTimeDelta,
		maxIndexDelta: maxIndexDelta,
		minIndexDelta: minIndexDelta,
		hasMarker:     hasMarker,
	}
}

// Type returns the resynchronization point type: 0 for container-level
// access only, greater values bound the strictness of the sample access
// points present.
func (r *ResyncInfo) Type() uint32 { return r.resyncType }

// MaxTimeDelta returns the upper bound on presentation-time spacing
// between consecutive resynchronization points, in the representation's
// timescale. Unknown when not signaled.
func (r *ResyncInfo) MaxTimeDelta() uint32 { return r.maxTimeDelta }

// MaxIndexDelta returns the bandwidth-normalized upper bound on byte-offset
// spacing between consecutive resynchronization points.
func (r *ResyncInfo) MaxIndexDelta() float32 { return r.maxIndexDelta }

// MinIndexDelta returns the bandwidth-normalized lower bound on byte-offset
// spacing; 0 when not signaled.
func (r *ResyncInfo) MinIndexDelta() float32 { return r.minIndexDelta }

// HasMarker reports whether every resynchronization point is
// self-identifying in the container bitstream.
func (r *ResyncInfo) HasMarker() bool { return r.hasMarker }
