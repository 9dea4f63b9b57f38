package std

import (
	"time"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/commands"
	"github.com/iov-one/remit/crypto"
	"github.com/iov-one/remit/x/cash"
	"github.com/iov-one/remit/x/remittance"
	"github.com/iov-one/remit/x/sigs"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	wallet := &cash.Set{
		Metadata: &remit.Metadata{Schema: 1},
		Coins: []*coin.Coin{
			{Whole: 50000, Ticker: "IOV"},
			{Whole: 150, Fractional: 567000, Ticker: "FRNK"},
		},
	}

	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()
	user := &sigs.UserData{
		Metadata: &remit.Metadata{Schema: 1},
		Pubkey:   pub,
		Sequence: 17,
	}

	source := pub.Address()
	recipient := crypto.GenPrivKeyEd25519().PublicKey().Address()
	secret := []byte("an example shared secret")
	id, err := remittance.DeriveIdentifier("test-123", source, recipient, secret)
	if err != nil {
		panic(err)
	}
	msg := &remittance.CreateMsg{
		Metadata:   &remit.Metadata{Schema: 1},
		Source:     source,
		Recipient:  recipient,
		Identifier: id,
		Deposit:    coin.NewCoinp(250, 0, "IOV"),
		Duration:   remit.AsUnixDuration(24 * time.Hour),
		Memo:       "test transfer",
	}

	unsigned := Tx{
		Sum: &Tx_RemittanceCreateMsg{msg},
	}
	tx := unsigned
	sig, err := sigs.SignTx(priv, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "wallet", Obj: wallet},
		{Filename: "priv_key", Obj: priv},
		{Filename: "pub_key", Obj: pub},
		{Filename: "user", Obj: user},
		{Filename: "create_msg", Obj: msg},
		{Filename: "unsigned_tx", Obj: &unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
