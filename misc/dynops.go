package main

import (
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	num "github.com/shabbyrobe/go-dynum"
)

// This is a small tool for poking at DynUint from the command line. It runs a
// single operation on two uint64 operands, dumps the raw byte buffer of the
// result, and checks the value against math/big.

const usage = `DynUint operation runner

Usage: <op> <a> <b>

Ops: add sub and mul rem divpow2 mulpow2 cmp`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 4 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	op := os.Args[1]

	av, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		return err
	}
	bv, err := strconv.ParseUint(os.Args[3], 10, 64)
	if err != nil {
		return err
	}

	a, b := num.DynUintFrom64(av), num.DynUintFrom64(bv)
	ba, bb := new(big.Int).SetUint64(av), new(big.Int).SetUint64(bv)

	var result num.DynUint
	var expected = new(big.Int)

	switch op {
	case "add":
		result = a.Add(b)
		expected.Add(ba, bb)

	case "sub":
		result, err = a.Sub(b)
		if err != nil {
			return err
		}
		expected.Sub(ba, bb)

	case "and":
		result = a.And(b)
		expected.And(ba, bb)

	case "mul":
		result = a.Mul(b)
		expected.Mul(ba, bb)

	case "rem":
		result, err = a.Rem(b)
		if err != nil {
			return err
		}
		expected.Rem(ba, bb)

	case "divpow2":
		result = a.DivPow2(b)
		expected.Rsh(ba, uint(bv))

	case "mulpow2":
		if bv > 4096 {
			return fmt.Errorf("mulpow2 shift %d is too large for this tool", bv)
		}
		result = a.MulPow2(b)
		expected.Lsh(ba, uint(bv))

	case "cmp":
		fmt.Printf("cmp(%d, %d) == %d\n", av, bv, a.Cmp(b))
		return nil

	default:
		return fmt.Errorf("op must be one of add, sub, and, mul, rem, divpow2, mulpow2, cmp")
	}

	spew.Dump(result.Bytes())

	got := result.AsBigInt()
	fmt.Printf("%d %s %d == %s (len:%d bitlen:%d)\n", av, op, bv, got, result.Len(), result.BitLen())
	if got.Cmp(expected) != 0 {
		return fmt.Errorf("result mismatch: expected %s, found %s", expected, got)
	}
	return nil
}
