package comm

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	FeeCreateCollection = "CREATE_COLLECTION_FEE"
	FeeCreateItem       = "CREATE_ITEM_FEE"
	FeeNftMinting       = "NFT_MINTING_FEE"
)

type Coin struct {
	Amount decimal.Decimal `json:"amount"`
	Denom  string          `json:"denom"`
}

func NewCoin(amount int64, denom string) Coin {
	return Coin{Amount: decimal.NewFromInt(amount), Denom: denom}
}

func (c Coin) String() string {
	return fmt.Sprintf("%s%s", c.Amount.String(), c.Denom)
}

func (c Coin) IsZero() bool {
	return c.Amount.IsZero()
}

type PaymentByPercentage struct {
	Wallet     string `json:"wallet"`
	Percentage uint8  `json:"percentage"`
}

type Payment struct {
	Wallet string `json:"wallet"`
	Amount Coin   `json:"amount"`
}

// BankMsg is an outgoing transfer effect, applied by the host runtime
// after the call commits.
type BankMsg struct {
	ToAddress string `json:"to_address"`
	Amount    Coin   `json:"amount"`
}

type Fee struct {
	Name  string `json:"name"`
	Value Coin   `json:"value"`
}

type ContractRef struct {
	Name string `json:"name"`
	Addr string `json:"addr"`
}

type LastPayment struct {
	Payer   string    `json:"payer"`
	FeeName string    `json:"fee_name"`
	Total   Coin      `json:"total"`
	PaidAt  time.Time `json:"paid_at"`
}

// ContractInfo is the singleton record holding the platform-level
// configuration: admins, fee schedule and the contract treasuries the
// named fees are paid to.
type ContractInfo struct {
	Name           string        `json:"name"`
	Admins         []string      `json:"admins"`
	Treasuries     []string      `json:"treasuries"`
	Fees           []Fee         `json:"fees"`
	Contracts      []ContractRef `json:"contracts"`
	LogLastPayment bool          `json:"log_last_payment"`
	LastPayment    *LastPayment  `json:"last_payment,omitempty"`
}

func (ci *ContractInfo) FeeByName(name string) *Fee {
	for i := range ci.Fees {
		if ci.Fees[i].Name == name {
			return &ci.Fees[i]
		}
	}
	return nil
}

func (ci *ContractInfo) IsAdmin(addr string) bool {
	for _, a := range ci.Admins {
		if a == addr {
			return true
		}
	}
	return false
}
