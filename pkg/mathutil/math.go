// Package mathutil provides checked unsigned integer arithmetic for the
// pool accounting. Every operation that can overflow, underflow or divide
// by zero returns an explicit error instead of wrapping around.
package mathutil

import (
	"errors"
	"math/big"
	"math/bits"

	"github.com/shopspring/decimal"
)

var (
	// ErrOverflow ...
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrUnderflow ...
	ErrUnderflow = errors.New("arithmetic underflow")
	// ErrDivisionByZero ...
	ErrDivisionByZero = errors.New("division by zero")
)

// Add returns x + y, failing on uint64 overflow.
func Add(x, y uint64) (uint64, error) {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Sub returns x - y, failing on underflow.
func Sub(x, y uint64) (uint64, error) {
	if y > x {
		return 0, ErrUnderflow
	}
	return x - y, nil
}

// SaturatingSub returns x - y, clamped at zero.
func SaturatingSub(x, y uint64) uint64 {
	if y > x {
		return 0
	}
	return x - y
}

// Mul returns x * y, failing on uint64 overflow.
func Mul(x, y uint64) (uint64, error) {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// Div returns the floor of x / y.
func Div(x, y uint64) (uint64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

// Sqrt returns the integer square root of x, ie. the greatest n such that
// n*n <= x.
func Sqrt(x uint64) uint64 {
	if x < 2 {
		return x
	}

	n := new(big.Int).SetUint64(x)
	return new(big.Int).Sqrt(n).Uint64()
}

// Ratio returns x / y as a decimal, used for price quoting only. Pool
// accounting never goes through decimals.
func Ratio(x, y uint64) (decimal.Decimal, error) {
	if y == 0 {
		return decimal.Zero, ErrDivisionByZero
	}
	X := decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
	Y := decimal.NewFromBigInt(new(big.Int).SetUint64(y), 0)
	return X.Div(Y), nil
}
