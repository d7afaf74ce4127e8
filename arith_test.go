package num

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestLongShort(t *testing.T) {
	tt := assert.WrapTB(t)

	a, b := []byte{1, 2}, []byte{3}
	long, short := longShort(a, b)
	tt.MustEqual(a, long)
	tt.MustEqual(b, short)

	long, short = longShort(b, a)
	tt.MustEqual(a, long)
	tt.MustEqual(b, short)

	// On a tie the first argument is long:
	c := []byte{4, 5}
	long, short = longShort(a, c)
	tt.MustEqual(a, long)
	tt.MustEqual(c, short)
}

func TestLastNonZero(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(-1, lastNonZero(nil))
	tt.MustEqual(-1, lastNonZero([]byte{0, 0}))
	tt.MustEqual(0, lastNonZero([]byte{1, 0}))
	tt.MustEqual(2, lastNonZero([]byte{0, 0, 1, 0, 0}))
}

func TestSubBytesBorrow(t *testing.T) {
	tt := assert.WrapTB(t)

	out, borrow := subBytes([]byte{0, 1}, []byte{1})
	tt.MustEqual([]byte{0xff, 0}, out)
	tt.MustAssert(!borrow)

	_, borrow = subBytes([]byte{0}, []byte{1})
	tt.MustAssert(borrow)
}

func TestShiftKernelsAgainstBig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	scratch := make([]byte, 24)

	for i := 0; i < 2000; i++ {
		n := rng.Intn(len(scratch) + 1)
		rng.Read(scratch[:n])
		in := scratch[:n]
		byteShift, bitShift := rng.Intn(n+3), uint(rng.Intn(8))
		shift := uint(byteShift)*8 + bitShift

		bv := DynUintFromBytes(in).AsBigInt()

		t.Run(fmt.Sprintf("%d/%x>>%d", i, in, shift), func(t *testing.T) {
			tt := assert.WrapTB(t)

			div := DynUint{b: divPow2Bytes(in, byteShift, bitShift)}
			tt.MustAssert(new(big.Int).Rsh(bv, shift).Cmp(div.AsBigInt()) == 0, "found %s", div.AsBigInt())

			mul := DynUint{b: mulPow2Bytes(in, byteShift, bitShift)}
			tt.MustAssert(new(big.Int).Lsh(bv, shift).Cmp(mul.AsBigInt()) == 0, "found %s", mul.AsBigInt())
		})
	}
}
