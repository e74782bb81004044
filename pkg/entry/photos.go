package entry

// Photo is an inline image reference (usually a data URL) and its caption.
type Photo struct {
	Src     string `json:"src" yaml:"src"`
	Caption string `json:"caption" yaml:"caption"`
}

// Photos is an ordered attachment list. Order only changes through RemoveAt.
type Photos []Photo

// Append adds one photo per source, in the order given, with empty captions.
func (p *Photos) Append(srcs ...string) {
	for _, src := range srcs {
		*p = append(*p, Photo{Src: src})
	}
}

// SetCaption replaces the caption at i. It reports false when i is out of range.
func (p *Photos) SetCaption(i int, text string) bool {
	if i < 0 || i >= len(*p) {
		return false
	}
	(*p)[i].Caption = text
	return true
}

// RemoveAt drops the photo at i; later photos shift down by one.
func (p *Photos) RemoveAt(i int) bool {
	if i < 0 || i >= len(*p) {
		return false
	}
	next := make(Photos, 0, len(*p)-1)
	next = append(next, (*p)[:i]...)
	*p = append(next, (*p)[i+1:]...)
	return true
}

func (p Photos) Clone() Photos {
	if p == nil {
		return Photos{}
	}
	return append(Photos{}, p...)
}
