package pie

// SegmentIndex answers lookups over an ordered, immutable set of segments.
type SegmentIndex struct {
	segments []Segment
}

// NewSegmentIndex indexes a copy of segments.
func NewSegmentIndex(segments []Segment) *SegmentIndex {
	own := make([]Segment, len(segments))
	copy(own, segments)
	return &SegmentIndex{segments: own}
}

// FindByAngle returns the segment whose [StartAngle, EndAngle) contains angle.
func (x *SegmentIndex) FindByAngle(angle float64) (Segment, bool) {
	for _, s := range x.segments {
		if s.Contains(angle) {
			return s, true
		}
	}
	return Segment{}, false
}

// FindByID returns the segment with the given id.
func (x *SegmentIndex) FindByID(id string) (Segment, bool) {
	for _, s := range x.segments {
		if s.ID == id {
			return s, true
		}
	}
	return Segment{}, false
}

// Segments returns a copy of the indexed segments in order.
func (x *SegmentIndex) Segments() []Segment {
	out := make([]Segment, len(x.segments))
	copy(out, x.segments)
	return out
}

// Len returns the number of segments.
func (x *SegmentIndex) Len() int { return len(x.segments) }
