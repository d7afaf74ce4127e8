/*
Package num provides DynUint, an unsigned integer of unbounded size backed by
a little-endian byte slice, implementing a small part of the big.Int API.

DynUint is a value type; all arithmetic operations return new values.

Simple example:

	a := DynUintFrom64(math.MaxUint64)
	b := DynUintFrom64(math.MaxUint64)
	fmt.Println(a.Mul(b).AsBigInt())
	// Output: 340282366920938463426481119284349108225

DynUint can be created from a variety of sources:

	NewDynUint(capacity int) DynUint
	DynUintFrom64(v uint64) DynUint
	DynUintFrom32(v uint32) DynUint
	DynUintFrom16(v uint16) DynUint
	DynUintFrom8(v uint8) DynUint
	DynUintFromUint(v uint) DynUint
	DynUintFromBool(v bool) DynUint
	DynUintFromInt(v int) (out DynUint, inRange bool)
	DynUintFromInt32(v int32) (out DynUint, inRange bool)
	DynUintFromInt64(v int64) (out DynUint, inRange bool)
	DynUintFromBytes(le []byte) DynUint
	DynUintFromBigInt(v *big.Int) (out DynUint, accurate bool)

Each fixed-width constructor stores exactly the source type's little-endian
bytes, so DynUintFrom64(1) is 8 bytes long. Trailing zero bytes never change
the value: DynUintFrom8(1).Equal(DynUintFrom64(1)) is true. Use Trim to drop
them.

Shifts are named for their arithmetic effect. DivPow2 is a right shift
(u / 2^n) and MulPow2 is a left shift (u * 2^n).

Some operations are deliberately not supported and return an error wrapping
ErrUnsupported: subtraction with a negative result, remainder by anything other
than a power of two, and OverflowingAdd. Division, exponentiation and
conversion to or from text are not provided.
*/
package num
