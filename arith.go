package num

// Byte-level kernels shared by the DynUint methods. None of them write to
// their inputs; every result is a freshly allocated slice.

// longShort orders two buffers by length. On a tie, a is the long one.
func longShort(a, b []byte) (long, short []byte) {
	if len(b) > len(a) {
		return b, a
	}
	return a, b
}

// lastNonZero returns the index of the most significant non-zero byte, or -1
// if every byte is zero.
func lastNonZero(b []byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0 {
			return i
		}
	}
	return -1
}

func addBytes(a, b []byte) []byte {
	long, short := longShort(a, b)

	// one spare byte for the carry-out:
	out := make([]byte, len(long), len(long)+1)

	var carry uint16
	for i, lb := range long {
		sum := uint16(lb) + carry
		if i < len(short) {
			sum += uint16(short[i])
		}
		if sum > 0xff {
			out[i] = byte(sum - 256)
			carry = 1
		} else {
			out[i] = byte(sum)
			carry = 0
		}
	}
	if carry != 0 {
		out = append(out, 1)
	}
	return out
}

// subBytes computes u - n over len(u) bytes. Bytes of n beyond len(u) are
// ignored, so the caller must already know that n <= u.
func subBytes(u, n []byte) (out []byte, borrowOut bool) {
	out = make([]byte, len(u))

	var borrow int16
	for i, ub := range u {
		diff := int16(ub) - borrow
		if i < len(n) {
			diff -= int16(n[i])
		}
		if diff < 0 {
			diff += 256
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(diff)
	}
	return out, borrow != 0
}

func andBytes(a, b []byte) []byte {
	long, short := longShort(a, b)
	out := make([]byte, len(long))
	for i := range short {
		out[i] = long[i] & short[i]
	}
	return out
}

// divPow2Bytes drops byteShift low bytes, then shifts the rest right by
// bitShift (0-7) bits, pulling bits down from the next-higher byte.
func divPow2Bytes(b []byte, byteShift int, bitShift uint) []byte {
	if byteShift >= len(b) {
		return []byte{}
	}

	out := make([]byte, len(b)-byteShift)
	copy(out, b[byteShift:])

	if bitShift > 0 {
		last := len(out) - 1
		for i := 0; i < last; i++ {
			out[i] = (out[i] >> bitShift) | (out[i+1] << (8 - bitShift))
		}
		out[last] >>= bitShift
	}
	return out
}

// mulPow2Bytes prepends byteShift zero bytes, then shifts left by bitShift
// (0-7) bits, pushing bits up into the next-higher byte. The result grows by
// one byte only if bits are carried out of the top.
func mulPow2Bytes(b []byte, byteShift int, bitShift uint) []byte {
	ln := byteShift + len(b)
	out := make([]byte, ln, ln+1)
	copy(out[byteShift:], b)

	if bitShift > 0 {
		var carry byte
		for i := byteShift; i < ln; i++ {
			v := out[i]
			out[i] = (v << bitShift) | carry
			carry = v >> (8 - bitShift)
		}
		if carry != 0 {
			out = append(out, carry)
		}
	}
	return out
}
