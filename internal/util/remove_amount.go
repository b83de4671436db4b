package util

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

var ErrPercentOutOfRange = errors.New("percent must be between 0 and 100")

var hundred = decimal.NewFromInt(100)

// CalculateRemoveAmount returns percent of position formatted at decimals.
//
// percent is a decimal string ("12.5"). position is in base units. The math is
// integer-only: percent is scaled to base units first, then
// position * percentWei / (10^decimals * 100) truncates once.
func CalculateRemoveAmount(percent string, position *big.Int, decimals int) (string, error) {
	if decimals < 0 {
		return "", fmt.Errorf("%w: negative decimals %d", ErrInvalidAmount, decimals)
	}
	if position == nil || position.Sign() == 0 {
		return "0", nil
	}
	if position.Sign() < 0 {
		return "", fmt.Errorf("%w: negative position %s", ErrInvalidAmount, position.String())
	}

	pct, err := decimal.NewFromString(percent)
	if err != nil {
		return "", fmt.Errorf("%w: percent %q", ErrInvalidAmount, percent)
	}
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return "", fmt.Errorf("%w: %s", ErrPercentOutOfRange, percent)
	}

	removeAmountToWei, err := ToBaseUnits(percent, decimals)
	if err != nil {
		return "", fmt.Errorf("failed to scale percent: %w", err)
	}

	scaler := Pow10(decimals)
	divisor := new(big.Int).Mul(scaler, big.NewInt(100))

	weiAmount := new(big.Int).Mul(position, removeAmountToWei)
	weiAmount.Quo(weiAmount, divisor)

	return FromBaseUnits(weiAmount, decimals), nil
}
