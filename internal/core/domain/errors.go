package domain

import "errors"

var (
	// ErrInvalidPair is thrown when the two assets of a pair coincide.
	ErrInvalidPair = errors.New("pair must be made of two distinct assets")
	// ErrPoolAlreadyExists ...
	ErrPoolAlreadyExists = errors.New("liquidity pool already exists")
	// ErrPoolNotFound ...
	ErrPoolNotFound = errors.New("liquidity pool does not exist")
	// ErrInsufficientLiquidityProvided is thrown when a provision or a
	// withdrawal resolves to zero on either side of the pair.
	ErrInsufficientLiquidityProvided = errors.New("insufficient liquidity provided")
	// ErrZeroSwapAmount ...
	ErrZeroSwapAmount = errors.New("swap amount must be positive")
	// ErrSwapCannotBeSatisfied is thrown when a swap would drain a reserve.
	ErrSwapCannotBeSatisfied = errors.New("pool cannot satisfy the requested swap")
	// ErrMinOutputNotReached ...
	ErrMinOutputNotReached = errors.New("minimum swap output not reached")
	// ErrMaxInputExceeded ...
	ErrMaxInputExceeded = errors.New("maximum swap input exceeded")
	// ErrImmediateArbitrage is thrown when a provision does not match the
	// current reserve ratio and would move the pool price within the same
	// operation.
	ErrImmediateArbitrage = errors.New("provision would move the pool price")
	// ErrArithmetic covers any overflow, underflow or division by zero met
	// while computing pool amounts.
	ErrArithmetic = errors.New("arithmetic error")
)
