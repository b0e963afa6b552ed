// Package tariff holds the bracket tables that convert a transaction amount
// into the store's commission (kita). The functions are pure and total over
// non-negative amounts; anything below MinimumAmount earns zero and is
// rejected upstream before any write.
package tariff

import (
	"math"

	"go-sari-pos/internal/model"
)

// MinimumAmount is the smallest accepted amount for load, e-wallet and
// bills transactions, in pesos.
const MinimumAmount = 5

// LoadFee returns the kita for a mobile-load top-up.
// 5-90 earns 3, 91-190 earns 5, then 10 plus 5 for every further 50 pesos.
func LoadFee(amount float64) float64 {
	if amount < MinimumAmount {
		return 0
	}
	if amount <= 90 {
		return 3
	}
	if amount <= 190 {
		return 5
	}
	return 10 + math.Floor((amount-191)/50)*5
}

// EwalletFee returns the kita for an e-wallet cash-in or cash-out.
// Brackets step by 10 per 500 pesos up to 2500, then extrapolate.
func EwalletFee(amount float64) float64 {
	if amount < MinimumAmount {
		return 0
	}
	switch {
	case amount <= 500:
		return 10
	case amount <= 1000:
		return 20
	case amount <= 1500:
		return 30
	case amount <= 2000:
		return 40
	case amount <= 2500:
		return 50
	}
	return 50 + math.Floor((amount-2500)/500)*10
}

// BillsFee returns the commission for a bills payment.
func BillsFee(amount float64) float64 {
	if amount < MinimumAmount {
		return 0
	}
	switch {
	case amount <= 500:
		return 10
	case amount <= 1000:
		return 20
	}
	return 20 + math.Floor((amount-1000)/500)*10
}

// RetailMargin is the profit on a retail line: the product's tubo snapshot
// times the quantity sold. Retail has no bracket table.
func RetailMargin(profitPerUnit float64, quantity int) float64 {
	return profitPerUnit * float64(quantity)
}

// FeeFor dispatches to the tariff table for the given service.
func FeeFor(service model.ServiceType, amount float64) float64 {
	switch service {
	case model.ServiceLoad:
		return LoadFee(amount)
	case model.ServiceEwallet:
		return EwalletFee(amount)
	case model.ServiceBills:
		return BillsFee(amount)
	}
	return 0
}
