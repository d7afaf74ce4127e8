package num

type RandSource interface {
	Uint64() uint64
}

// DifferenceDynUint subtracts the smaller of a and b from the larger.
func DifferenceDynUint(a, b DynUint) DynUint {
	if a.Cmp(b) >= 0 {
		return a.MustSub(b)
	}
	return b.MustSub(a)
}

func LargerDynUint(a, b DynUint) DynUint {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerDynUint(a, b DynUint) DynUint {
	if b.LessThan(a) {
		return b
	}
	return a
}
