package comm

import (
	"time"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// PayByPercentage splits total across the given percentage entries. Each
// entry receives floor(total * percentage / 100); the truncation remainder
// goes to the first entry, so the outputs always sum to total exactly.
// The percentages are assumed to be validated upstream.
func PayByPercentage(total Coin, payments []PaymentByPercentage) []Payment {
	if len(payments) == 0 {
		return nil
	}

	amounts := make([]Payment, len(payments))
	allocated := decimal.Zero
	for i, p := range payments {
		amt := total.Amount.Mul(decimal.NewFromInt(int64(p.Percentage))).Div(oneHundred).Floor()
		allocated = allocated.Add(amt)
		amounts[i] = Payment{
			Wallet: p.Wallet,
			Amount: Coin{Amount: amt, Denom: total.Denom},
		}
	}

	remainder := total.Amount.Sub(allocated)
	if remainder.IsPositive() {
		amounts[0].Amount.Amount = amounts[0].Amount.Amount.Add(remainder)
	}
	return amounts
}

func ToBankMessages(payments []Payment) []BankMsg {
	msgs := make([]BankMsg, 0, len(payments))
	for _, p := range payments {
		msgs = append(msgs, BankMsg{ToAddress: p.Wallet, Amount: p.Amount})
	}
	return msgs
}

// EvenPercentages divides 100 percent across n recipients, the leftover
// percent points going to the first one.
func EvenPercentages(wallets []string) []PaymentByPercentage {
	if len(wallets) == 0 {
		return nil
	}
	each := uint8(100 / len(wallets))
	payments := make([]PaymentByPercentage, len(wallets))
	for i, w := range wallets {
		payments[i] = PaymentByPercentage{Wallet: w, Percentage: each}
	}
	payments[0].Percentage += uint8(100 - int(each)*len(wallets))
	return payments
}

// TryPayingContractTreasuries resolves the named fee from the contract info
// and splits it evenly across the configured contract treasuries. An
// unconfigured fee or an empty treasury list yields no transfers. When
// LogLastPayment is set the info record is mutated to log the payment; the
// caller persists it within the same call transaction.
func TryPayingContractTreasuries(info *ContractInfo, feeName, payer string, now time.Time) []BankMsg {
	fee := info.FeeByName(feeName)
	if fee == nil || fee.Value.IsZero() {
		return nil
	}
	if len(info.Treasuries) == 0 {
		return nil
	}

	payments := PayByPercentage(fee.Value, EvenPercentages(info.Treasuries))
	if info.LogLastPayment {
		info.LastPayment = &LastPayment{
			Payer:   payer,
			FeeName: feeName,
			Total:   fee.Value,
			PaidAt:  now,
		}
	}
	return ToBankMessages(payments)
}
