package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pixory/pixory/comm"
)

type FeeConfiguration struct {
	Name   string `toml:"name"`
	Amount int64  `toml:"amount"`
	Denom  string `toml:"denom"`
}

type Configuration struct {
	Contract struct {
		Name           string             `toml:"name"`
		Admins         []string           `toml:"admins"`
		Treasuries     []string           `toml:"treasuries"`
		Fees           []FeeConfiguration `toml:"fees"`
		LogLastPayment bool               `toml:"log-last-payment"`
	} `toml:"contract"`
}

func Setup(path string) (*Configuration, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf Configuration
	err = toml.Unmarshal(f, &conf)
	if err != nil {
		return nil, err
	}
	if conf.Contract.Name == "" {
		return nil, fmt.Errorf("invalid configuration, contract name required")
	}
	return &conf, nil
}

func (c *Configuration) ContractFees() []comm.Fee {
	fees := make([]comm.Fee, len(c.Contract.Fees))
	for i, f := range c.Contract.Fees {
		fees[i] = comm.Fee{Name: f.Name, Value: comm.NewCoin(f.Amount, f.Denom)}
	}
	return fees
}
