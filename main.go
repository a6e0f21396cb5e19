package main

import (
	"context"
	"flag"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/pixory/pixory/market"
	"github.com/pixory/pixory/nft"
	"github.com/pixory/pixory/store"
)

func main() {
	ctx := context.Background()

	bp := flag.String("d", "~/.pixory/data", "database directory path")
	cp := flag.String("c", "~/.pixory/config.toml", "configuration file path")
	flag.Parse()

	if strings.HasPrefix(*cp, "~/") {
		usr, _ := user.Current()
		*cp = filepath.Join(usr.HomeDir, (*cp)[2:])
	}
	conf, err := Setup(*cp)
	if err != nil {
		panic(err)
	}

	if strings.HasPrefix(*bp, "~/") {
		usr, _ := user.Current()
		*bp = filepath.Join(usr.HomeDir, (*bp)[2:])
	}
	db, err := store.OpenBadger(ctx, *bp)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	contract := market.NewContract(db, nft.NewContract())

	var instantiated bool
	err = db.View(func(s market.Store) error {
		info, err := s.ReadContractInfo()
		instantiated = info != nil
		return err
	})
	if err != nil {
		panic(err)
	}

	if !instantiated {
		admins := conf.Contract.Admins
		env := market.Env{BlockTime: time.Now()}
		info := market.MessageInfo{Sender: firstOr(admins, "genesis")}
		_, err = contract.Instantiate(env, info, market.InstantiateMsg{
			Name:           conf.Contract.Name,
			Admins:         admins,
			Treasuries:     conf.Contract.Treasuries,
			Fees:           conf.ContractFees(),
			LogLastPayment: conf.Contract.LogLastPayment,
		})
		if err != nil {
			panic(err)
		}
	}

	logger.Printf("pixory %s ready at %s\n", market.ContractVersion, *bp)
}

func firstOr(list []string, def string) string {
	if len(list) > 0 {
		return list[0]
	}
	return def
}
