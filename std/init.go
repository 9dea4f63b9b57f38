package std

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/app"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/crypto"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/migration"
	"github.com/iov-one/remit/x/cash"
	"github.com/iov-one/remit/x/guard"
	"github.com/iov-one/remit/x/remittance"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode
//
// Args are the ticker and optionally the address of the account.
func GenInitOptions(args []string) (json.RawMessage, error) {
	code := "IOV"
	if len(args) > 0 {
		code = args[0]
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(keys)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	collectorAddr, err := hex.DecodeString("3b11c732b8fc1f09beb34031302fe2ab347c5c14")
	if err != nil {
		return nil, errors.Wrap(err, "cannot hex decode collector address")
	}
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins": array{
					dict{
						"whole":  123456789,
						"ticker": code,
					},
				},
			},
		},
		"conf": dict{
			"cash": cash.Configuration{
				CollectorAddress: collectorAddr,
				MinimalFee:       coin.Coin{Whole: 0}, // no fee
			},
			"guard": dict{
				"metadata": dict{"schema": 1},
				"owner":    addr,
			},
			"remittance": dict{
				"metadata":          dict{"schema": 1},
				"owner":             addr,
				"collector_address": remit.Address(collectorAddr),
				"fee":               coin.NewCoin(0, 500000000, code),
				"min_duration":      remit.AsUnixDuration(time.Hour),
				"max_duration":      remit.AsUnixDuration(30 * 24 * time.Hour),
			},
			"migration": dict{
				"admin": addr,
			},
		},
		"initialize_schema": []string{"cash", "sigs", "guard", "remittance"},
	})
}

// ChainInitializer returns the combined genesis initializer of every
// extension wired into the application.
func ChainInitializer() remit.Initializer {
	return app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&guard.Initializer{},
		&remittance.Initializer{},
	)
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "abci.db")
	}

	stack := Stack()
	application, err := Application("remit", stack, TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(ChainInitializer())

	// set the logger and return
	application.WithLogger(logger)
	return application, nil
}

// InlineApp wires the full application stack on top of an existing
// store. It is used by the retry command to re-run a block against a
// database snapshot.
func InlineApp(kv remit.CommitKVStore, logger log.Logger, debug bool) abci.Application {
	stack := Stack()
	ctx := context.Background()
	store := app.NewStoreApp("remit", kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, TxDecoder, stack, nil, debug)
	base.WithInit(ChainInitializer())
	base.WithLogger(logger)
	return base
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in a client to use them
func GenerateCoinKey() (remit.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}

	return addr, string(keys), nil
}
