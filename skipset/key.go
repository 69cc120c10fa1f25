package skipset

// kind tags a key as a real element or one of the two synthetic bounds that
// cap every level chain.
type kind uint8

const (
	negInf kind = iota
	normal
	posInf
)

// key pairs an element with its kind. Sentinel keys order below and above
// every normal key, so a ladder search never runs off either end of a level.
type key[E comparable] struct {
	kind kind
	elem E
}

// less orders keys: negInf < any normal < posInf, with normal keys compared
// through lt.
func (k key[E]) less(other key[E], lt Less[E]) bool {
	switch k.kind {
	case negInf:
		return other.kind != negInf
	case posInf:
		return false
	default:
		return other.kind == posInf ||
			(other.kind == normal && lt(k.elem, other.elem))
	}
}

// equal requires matching kinds; sentinels compare equal regardless of the
// zero-value payload they carry.
func (k key[E]) equal(other key[E]) bool {
	return k.kind == other.kind && (k.kind != normal || k.elem == other.elem)
}
