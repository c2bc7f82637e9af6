package common

import (
	"github.com/shopspring/decimal"
)

const (
	// Highest decimal precision any registered asset may carry.
	MAX_ASSET_DECIMALS = 18
)

var (
	ONE = decimal.NewFromInt(1)

	// 2^128 - 1. Raw amounts above this are not representable on the wire.
	MAX_RAW_AMOUNT = decimal.RequireFromString("340282366920938463463374607431768211455")
)
