package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountBalance is the free/locked amount of a single asset.
// Wire values are decimal strings ("4.00000100") and decode losslessly.
type AccountBalance struct {
	Asset  string          `json:"asset"`
	Free   decimal.Decimal `json:"free"`
	Locked decimal.Decimal `json:"locked"`
}

// AccountSnapshot is the full account state at fetch time. Balances keep the
// exchange order; asset codes are unique within one snapshot.
type AccountSnapshot struct {
	MakerCommission  int64            `json:"makerCommission"`
	TakerCommission  int64            `json:"takerCommission"`
	BuyerCommission  int64            `json:"buyerCommission"`
	SellerCommission int64            `json:"sellerCommission"`
	CanTrade         bool             `json:"canTrade"`
	CanWithdraw      bool             `json:"canWithdraw"`
	CanDeposit       bool             `json:"canDeposit"`
	UpdateTime       int64            `json:"updateTime"`
	Balances         []AccountBalance `json:"balances"`
}

// MissingBalanceError reports a configured asset absent from the snapshot.
// This is a configuration/data fault, not a trading signal.
type MissingBalanceError struct {
	Asset string
}

func (e *MissingBalanceError) Error() string {
	return fmt.Sprintf("no balance for asset %s in account snapshot", e.Asset)
}

// Balance returns the balance for the given asset code, or a
// MissingBalanceError when the snapshot does not contain it.
func (s *AccountSnapshot) Balance(asset string) (AccountBalance, error) {
	for _, b := range s.Balances {
		if b.Asset == asset {
			return b, nil
		}
	}
	return AccountBalance{}, &MissingBalanceError{Asset: asset}
}
