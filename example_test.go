package num_test

import (
	"fmt"
	"math"

	num "github.com/shabbyrobe/go-dynum"
)

func ExampleDynUint_Mul() {
	a := num.DynUintFrom64(math.MaxUint64)
	b := num.DynUintFrom64(math.MaxUint64)
	fmt.Println(a.Mul(b).AsBigInt())
	// Output: 340282366920938463426481119284349108225
}

func ExampleDynUint_Add() {
	sum := num.DynUintFrom8(255).Add(num.DynUintFrom8(1))
	fmt.Println(sum.AsBigInt(), sum.Bytes())
	// Output: 256 [0 1]
}

func ExampleDynUint_DivPow2() {
	fmt.Println(num.DynUintFrom16(1234).DivPow2(num.DynUintFrom8(5)).AsBigInt())
	// Output: 38
}

func ExampleDynUint_MulPow2() {
	fmt.Println(num.DynUintFrom8(25).MulPow2(num.DynUintFrom8(12)).AsBigInt())
	// Output: 102400
}

func ExampleDynUint_Sub() {
	_, err := num.DynUintFrom8(1).Sub(num.DynUintFrom8(2))
	fmt.Println(err)
	// Output: subtraction would produce a negative result: dynuint: unsupported operation
}
