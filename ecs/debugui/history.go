package debugui

// sampleHistory is a fixed-size ring of samples for plotting.
type sampleHistory struct {
	samples []float32
	offset  int
}

func newSampleHistory(capacity int) *sampleHistory {
	return &sampleHistory{samples: make([]float32, max(capacity, 1))}
}

func (h *sampleHistory) push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
}

// ordered returns the samples oldest first.
func (h *sampleHistory) ordered() []float32 {
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.offset:])
	copy(out[n:], h.samples[:h.offset])
	return out
}

func (h *sampleHistory) mean() float32 {
	var sum float32
	for _, v := range h.samples {
		sum += v
	}
	return sum / float32(len(h.samples))
}

func (h *sampleHistory) peak() float32 {
	var top float32
	for _, v := range h.samples {
		top = max(top, v)
	}
	return top
}
