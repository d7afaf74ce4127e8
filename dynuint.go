package num

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"math/bits"
)

// DynUint is an unsigned integer of unbounded size, stored as a little-endian
// byte slice. The slice may carry trailing (most significant) zero bytes;
// they never affect the value.
//
// DynUint is a value type. Arithmetic methods never write to the receiver or
// the operand, and every result owns a fresh buffer. Resize and Trim are the
// only methods that modify a DynUint.
type DynUint struct {
	b []byte
}

// NewDynUint creates a zero-length DynUint with room for capacity bytes.
func NewDynUint(capacity int) DynUint {
	return DynUint{b: make([]byte, 0, capacity)}
}

func DynUintFrom8(v uint8) DynUint { return DynUint{b: []byte{v}} }

func DynUintFrom16(v uint16) DynUint {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return DynUint{b: b}
}

func DynUintFrom32(v uint32) DynUint {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return DynUint{b: b}
}

func DynUintFrom64(v uint64) DynUint {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return DynUint{b: b}
}

// DynUintFromUint encodes v using the platform's native uint width.
func DynUintFromUint(v uint) DynUint {
	if intSize == 32 {
		return DynUintFrom32(uint32(v))
	}
	return DynUintFrom64(uint64(v))
}

// DynUintFromBool returns a single byte DynUint holding 0 or 1.
func DynUintFromBool(v bool) DynUint {
	if v {
		return DynUint{b: []byte{1}}
	}
	return DynUint{b: []byte{0}}
}

// DynUintFromInt32 creates a 4-byte DynUint from v. Negative values can't be
// represented; they return zero and set inRange to 'false'.
func DynUintFromInt32(v int32) (out DynUint, inRange bool) {
	if v < 0 {
		return out, false
	}
	return DynUintFrom32(uint32(v)), true
}

// DynUintFromInt64 creates an 8-byte DynUint from v. Negative values can't be
// represented; they return zero and set inRange to 'false'.
func DynUintFromInt64(v int64) (out DynUint, inRange bool) {
	if v < 0 {
		return out, false
	}
	return DynUintFrom64(uint64(v)), true
}

// DynUintFromInt encodes v using the platform's native int width. Negative
// values return zero and set inRange to 'false'.
func DynUintFromInt(v int) (out DynUint, inRange bool) {
	if v < 0 {
		return out, false
	}
	return DynUintFromUint(uint(v)), true
}

// DynUintFromBytes creates a DynUint from a copy of a little-endian byte
// slice. Trailing zero bytes are kept.
func DynUintFromBytes(le []byte) DynUint {
	b := make([]byte, len(le))
	copy(b, le)
	return DynUint{b: b}
}

// DynUintFromBigInt creates a DynUint from a big.Int. Negative values can't
// be represented; they return zero and set accurate to 'false'.
func DynUintFromBigInt(v *big.Int) (out DynUint, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	be := v.Bytes()
	ln := len(be)
	b := make([]byte, ln)
	for i, c := range be {
		b[ln-1-i] = c
	}
	return DynUint{b: b}, true
}

// Len returns the length of the byte buffer, which may be longer than the
// minimum needed to hold the value.
func (u DynUint) Len() int { return len(u.b) }

func (u DynUint) Cap() int { return cap(u.b) }

// IsEmpty reports whether the buffer has no bytes at all. A non-empty buffer
// of zero bytes is still zero, see IsZero.
func (u DynUint) IsEmpty() bool { return len(u.b) == 0 }

func (u DynUint) IsZero() bool { return lastNonZero(u.b) < 0 }

func (u DynUint) isOne() bool { return lastNonZero(u.b) == 0 && u.b[0] == 1 }

// Bytes returns a copy of the little-endian buffer, trailing zeros included.
func (u DynUint) Bytes() []byte {
	b := make([]byte, len(u.b))
	copy(b, u.b)
	return b
}

func (u DynUint) clone() DynUint {
	return DynUintFromBytes(u.b)
}

// Resize sets the buffer to exactly n bytes. Growing pads with zero bytes.
// Shrinking is lossless if every discarded byte is zero; if any of them is
// not, the value has overflowed n bytes and every remaining byte is set to
// 0xFF instead, clamping it to the largest n-byte value.
func (u *DynUint) Resize(n int) {
	if n < 0 {
		panic("dynuint: negative size")
	}

	ln := len(u.b)
	if n >= ln {
		// Bytes past the length of a buffer are always zero, so appending
		// zeros can't disturb another DynUint that shares this array.
		u.b = append(u.b, make([]byte, n-ln)...)
		return
	}

	if lastNonZero(u.b) < n {
		u.b = u.b[:n]
		return
	}

	b := make([]byte, n)
	for i := range b {
		b[i] = 0xff
	}
	u.b = b
}

// Trim discards every byte above the most significant non-zero byte, leaving
// the buffer in canonical form. Zero trims to an empty buffer.
func (u *DynUint) Trim() {
	u.b = u.b[:lastNonZero(u.b)+1]
}

// Trimmed returns a canonical copy of u.
func (u DynUint) Trimmed() DynUint {
	return DynUintFromBytes(u.b[:lastNonZero(u.b)+1])
}

// Signature returns the index and value of the most significant non-zero
// byte. ok is false if u is zero.
func (u DynUint) Signature() (index int, value byte, ok bool) {
	index = lastNonZero(u.b)
	if index < 0 {
		return 0, 0, false
	}
	return index, u.b[index], true
}

func (u DynUint) BitLen() int {
	top := lastNonZero(u.b)
	if top < 0 {
		return 0
	}
	return top*8 + bits.Len8(u.b[top])
}

// Bit returns the value of the i'th bit of u, counting from the least
// significant bit.
func (u DynUint) Bit(i int) uint {
	if i < 0 {
		panic("dynuint: negative bit index")
	}
	idx := i / 8
	if idx >= len(u.b) {
		return 0
	}
	return uint(u.b[idx]>>uint(i%8)) & 1
}

// IsPow2 reports whether u has exactly one bit set.
func (u DynUint) IsPow2() bool {
	top := lastNonZero(u.b)
	if top < 0 || bits.OnesCount8(u.b[top]) != 1 {
		return false
	}
	for _, c := range u.b[:top] {
		if c != 0 {
			return false
		}
	}
	return true
}

// AsUint64 truncates u to fit in a uint64. See IsUint64() if you want to
// check before you convert.
func (u DynUint) AsUint64() (v uint64) {
	for i := len(u.b) - 1; i >= 0; i-- {
		if i < 8 {
			v = (v << 8) | uint64(u.b[i])
		}
	}
	return v
}

// IsUint64 reports whether u can be represented as a uint64.
func (u DynUint) IsUint64() bool {
	return lastNonZero(u.b) < 8
}

func (u DynUint) IntoBigInt(b *big.Int) {
	top := lastNonZero(u.b)
	be := make([]byte, top+1)
	for i := 0; i <= top; i++ {
		be[top-i] = u.b[i]
	}
	b.SetBytes(be)
}

func (u DynUint) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// Equal reports whether u and n hold the same value, regardless of how many
// trailing zero bytes either buffer carries.
func (u DynUint) Equal(n DynUint) bool {
	return bytes.Equal(u.b[:lastNonZero(u.b)+1], n.b[:lastNonZero(n.b)+1])
}

// Cmp compares u and n and returns -1, 0 or +1.
//
// The most significant non-zero bytes are compared first, by position and
// then by value. If they match, the comparison continues down through the
// lower bytes, so Cmp(n) == 0 exactly when Equal(n) is true.
func (u DynUint) Cmp(n DynUint) int {
	ui, ni := lastNonZero(u.b), lastNonZero(n.b)
	if ui > ni {
		return 1
	} else if ui < ni {
		return -1
	}
	for i := ui; i >= 0; i-- {
		if u.b[i] > n.b[i] {
			return 1
		} else if u.b[i] < n.b[i] {
			return -1
		}
	}
	return 0
}

func (u DynUint) GreaterThan(n DynUint) bool      { return u.Cmp(n) > 0 }
func (u DynUint) GreaterOrEqualTo(n DynUint) bool { return u.Cmp(n) >= 0 }
func (u DynUint) LessThan(n DynUint) bool         { return u.Cmp(n) < 0 }
func (u DynUint) LessOrEqualTo(n DynUint) bool    { return u.Cmp(n) <= 0 }

// Add returns u+n. The result is as long as the longer operand, plus one byte
// if the top byte carries.
func (u DynUint) Add(n DynUint) DynUint {
	return DynUint{b: addBytes(u.b, n.b)}
}

// OverflowingAdd is not implemented. DynUint addition grows instead of
// overflowing, so there is no fixed width to report an overflow against.
func (u DynUint) OverflowingAdd(n DynUint) (out DynUint, overflow bool, err error) {
	return out, false, unsupported("overflowing add")
}

// Sub returns u-n. DynUint has no sign, so if n > u an error wrapping
// ErrUnsupported is returned. The result has the same length as u.
func (u DynUint) Sub(n DynUint) (DynUint, error) {
	if n.GreaterThan(u) {
		return DynUint{}, unsupported("subtraction would produce a negative result")
	}
	out, borrow := subBytes(u.b, n.b)
	if borrow {
		panic("dynuint: borrow out of checked subtraction")
	}
	return DynUint{b: out}, nil
}

// MustSub is like Sub but panics if n > u.
func (u DynUint) MustSub(n DynUint) DynUint {
	out, err := u.Sub(n)
	if err != nil {
		panic(err)
	}
	return out
}

func (u DynUint) Inc() DynUint {
	return u.Add(oneDynUint)
}

// Dec returns u-1, or an error wrapping ErrUnsupported if u is zero.
func (u DynUint) Dec() (DynUint, error) {
	return u.Sub(oneDynUint)
}

// And returns u&n. The result is as long as the longer operand; it is not
// trimmed.
func (u DynUint) And(n DynUint) DynUint {
	return DynUint{b: andBytes(u.b, n.b)}
}

// shiftParts splits a shift amount into whole bytes and remaining bits.
func shiftParts(n DynUint) (byteShift int, bitShift uint) {
	if n.IsZero() {
		return 0, 0
	}
	bitShift = uint(n.b[0] & 7)

	whole := DynUint{b: divPow2Bytes(n.b, 0, 3)}
	if !whole.IsUint64() || whole.AsUint64() > uint64(maxInt) {
		panic("dynuint: shift amount too large")
	}
	return int(whole.AsUint64()), bitShift
}

// DivPow2 returns u / 2^n, rounded down. This is a logical right shift of u
// by n bits.
func (u DynUint) DivPow2(n DynUint) DynUint {
	if u.IsZero() || n.IsZero() {
		return u.clone()
	}
	byteShift, bitShift := shiftParts(n)
	return DynUint{b: divPow2Bytes(u.b, byteShift, bitShift)}
}

// DivPow2Uint is DivPow2 with a native shift amount.
func (u DynUint) DivPow2Uint(n uint) DynUint {
	if u.IsZero() || n == 0 {
		return u.clone()
	}
	return DynUint{b: divPow2Bytes(u.b, int(n/8), n%8)}
}

// MulPow2 returns u * 2^n. This is a logical left shift of u by n bits; the
// buffer grows to fit.
func (u DynUint) MulPow2(n DynUint) DynUint {
	if u.IsZero() || n.IsZero() {
		return u.clone()
	}
	byteShift, bitShift := shiftParts(n)
	return DynUint{b: mulPow2Bytes(u.b, byteShift, bitShift)}
}

// MulPow2Uint is MulPow2 with a native shift amount.
func (u DynUint) MulPow2Uint(n uint) DynUint {
	if u.IsZero() || n == 0 {
		return u.clone()
	}
	return DynUint{b: mulPow2Bytes(u.b, int(n/8), n%8)}
}

// Mul returns u*n using shift-and-add long multiplication: the longer operand
// is doubled once for each bit of the shorter one, and added into the result
// wherever that bit is set.
func (u DynUint) Mul(n DynUint) DynUint {
	if u.IsZero() || n.IsZero() {
		return DynUint{}
	} else if u.isOne() {
		return n.clone()
	} else if n.isOne() {
		return u.clone()
	}

	long, short := longShort(u.b, n.b)
	addend, mul := DynUint{b: long}, DynUint{b: short}

	var acc DynUint
	for {
		if mul.b[0]&1 == 1 {
			acc = acc.Add(addend)
		}
		mul = mul.DivPow2Uint(1)
		if mul.IsZero() {
			break
		}
		addend = addend.MulPow2Uint(1)
	}
	return acc
}

// Rem returns u % by. Only powers of two are supported as divisors, for
// which the remainder is u & (by-1). A zero divisor returns
// ErrDivisionByZero; any other divisor returns an error wrapping
// ErrUnsupported.
func (u DynUint) Rem(by DynUint) (DynUint, error) {
	if by.IsZero() {
		return DynUint{}, ErrDivisionByZero
	} else if by.isOne() {
		return DynUint{}, nil
	} else if !by.IsPow2() {
		return DynUint{}, unsupported("remainder by a divisor that is not a power of two")
	}
	return u.And(by.MustSub(oneDynUint)), nil
}

// MustRem is like Rem but panics on error, including division by zero.
func (u DynUint) MustRem(by DynUint) DynUint {
	out, err := u.Rem(by)
	if err != nil {
		panic(err)
	}
	return out
}

// RandDynUint generates a random DynUint of exactly n bytes from an external
// source.
func RandDynUint(source RandSource, n int) DynUint {
	b := make([]byte, n)
	var scratch [8]byte
	for i := 0; i < n; i += 8 {
		binary.LittleEndian.PutUint64(scratch[:], source.Uint64())
		copy(b[i:], scratch[:])
	}
	return DynUint{b: b}
}
