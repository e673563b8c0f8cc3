package component

type Health struct {
	Current float64
	Max     float64
}

func (h *Health) Dead() bool { return h.Current <= 0 }
