package remittance

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
	"github.com/iov-one/remit/migration"
	"github.com/iov-one/remit/orm"
	"github.com/iov-one/remit/x"
	"github.com/iov-one/remit/x/cash"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// Pay transfer cost up-front.
	createCost   int64 = 300
	claimCost    int64 = 0
	reclaimCost  int64 = 0
	withdrawCost int64 = 0
)

// The "action" tag is appended by the decorator stack, handlers only tag
// the transfer specific fields.
const (
	tagIdentifier = "identifier"
	tagSender     = "sender"
	tagRecipient  = "recipient"
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r remit.Registry, auth x.Authenticator, ctrl cash.Controller) {
	r = migration.SchemaMigratingRegistry("remittance", r)
	bucket := NewBucket()

	r.Handle(&CreateMsg{}, CreateHandler{auth: auth, bucket: bucket, bank: ctrl})
	r.Handle(&ClaimMsg{}, ClaimHandler{auth: auth, bucket: bucket, bank: ctrl})
	r.Handle(&ReclaimMsg{}, ReclaimHandler{auth: auth, bucket: bucket, bank: ctrl})
	r.Handle(&WithdrawFeesMsg{}, WithdrawFeesHandler{auth: auth, bank: ctrl})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// RegisterQuery will register the transfer bucket as "/transfers" and the
// engine configuration (fee, deadline window, collector) under
// "/configuration/remittance". Queries stay available even when the rest
// of the application is paused because they are not routed through the
// decorator stack.
func RegisterQuery(qr remit.QueryRouter) {
	NewBucket().Register("transfers", qr)
	gconf.RegisterQuery("remittance", qr)
}

// NewConfigHandler returns a handler for configuration patch messages.
func NewConfigHandler(auth x.Authenticator) remit.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("remittance", &conf, auth, migration.CurrentAdmin)
}

// CreateHandler opens a new transfer.
type CreateHandler struct {
	auth   x.Authenticator
	bucket Bucket
	bank   cash.CoinMover
}

var _ remit.Handler = CreateHandler{}

func (h CreateHandler) Check(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &remit.CheckResult{GasAllocated: createCost}, nil
}

func (h CreateHandler) Deliver(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	net, err := msg.Deposit.Subtract(conf.Fee)
	if err != nil {
		return nil, errors.Wrap(err, "deposit")
	}

	now, err := remit.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	entry := &Entry{
		Metadata:   &remit.Metadata{Schema: 1},
		Identifier: msg.Identifier,
		Sender:     msg.Source,
		Recipient:  msg.Recipient,
		Amount:     &net,
		Fee:        conf.Fee.Clone(),
		Deadline:   remit.AsUnixTime(now).Add(msg.Duration.Duration()),
		Status:     TransferStatusCreated,
		Memo:       msg.Memo,
		Address:    TransferAddress(msg.Identifier),
	}
	obj := orm.NewSimpleObj(msg.Identifier, entry)
	if err := h.bucket.Save(store, obj); err != nil {
		return nil, err
	}

	if conf.Fee.IsPositive() {
		if err := h.bank.MoveCoins(store, msg.Source, conf.CollectorAddress, conf.Fee); err != nil {
			return nil, errors.Wrap(ErrTransferFailed, err.Error())
		}
	}
	if err := h.bank.MoveCoins(store, msg.Source, entry.Address, net); err != nil {
		return nil, errors.Wrap(ErrTransferFailed, err.Error())
	}

	return &remit.DeliverResult{
		Data: msg.Identifier,
		Tags: transferTags(entry),
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateHandler) validate(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*CreateMsg, *Configuration, error) {
	var msg CreateMsg
	if err := remit.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "source signature missing")
	}

	conf, err := loadConf(store)
	if err != nil {
		return nil, nil, err
	}

	if msg.Duration < conf.MinDuration || msg.Duration > conf.MaxDuration {
		return nil, nil, errors.Wrapf(ErrDeadlineOutOfRange,
			"duration must be between %s and %s", conf.MinDuration, conf.MaxDuration)
	}

	// The deposit must cover the fee and leave something to transfer.
	net, err := msg.Deposit.Subtract(conf.Fee)
	if err != nil {
		return nil, nil, errors.Wrap(err, "deposit")
	}
	if !net.IsPositive() {
		return nil, nil, errors.Wrapf(ErrInsufficientValue,
			"deposit %s does not exceed the %s fee", msg.Deposit, &conf.Fee)
	}

	switch obj, err := h.bucket.Get(store, msg.Identifier); {
	case err != nil:
		return nil, nil, err
	case obj != nil:
		return nil, nil, errors.Wrap(ErrDuplicateIdentifier, "transfer exists")
	}

	return &msg, &conf, nil
}

// ClaimHandler releases a held transfer to its recipient.
type ClaimHandler struct {
	auth   x.Authenticator
	bucket Bucket
	bank   cash.Controller
}

var _ remit.Handler = ClaimHandler{}

func (h ClaimHandler) Check(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	if _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &remit.CheckResult{GasAllocated: claimCost}, nil
}

func (h ClaimHandler) Deliver(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	entry, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	amount := *entry.Amount

	// The terminal state is persisted before any coins move so that a
	// failed transfer cannot leave a claimed entry behind. Both writes
	// roll back together on failure.
	entry.Status = TransferStatusClaimed
	entry.Amount = coin.NewCoinp(0, 0, amount.Ticker)
	if err := h.bucket.Save(store, orm.NewSimpleObj(entry.Identifier, entry)); err != nil {
		return nil, err
	}

	if err := h.bank.MoveCoins(store, entry.Address, entry.Recipient, amount); err != nil {
		return nil, errors.Wrap(ErrTransferFailed, err.Error())
	}

	return &remit.DeliverResult{
		Data: entry.Identifier,
		Tags: transferTags(entry),
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ClaimHandler) validate(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*Entry, error) {
	var msg ClaimMsg
	if err := remit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "recipient signature missing")
	}
	recipient := signer.Address()

	id, err := DeriveIdentifier(remit.GetChainID(ctx), msg.Sender, recipient, msg.Secret)
	if err != nil {
		return nil, err
	}
	entry, err := loadEntry(h.bucket, store, id)
	if err != nil {
		return nil, err
	}
	if entry.Status != TransferStatusCreated {
		return nil, errors.Wrapf(ErrAlreadyClaimed, "transfer is %s", entry.Status)
	}
	if !entry.Sender.Equals(msg.Sender) || !entry.Recipient.Equals(recipient) {
		return nil, errors.Wrap(ErrAccountMismatch, "transfer belongs to other parties")
	}
	if !entry.Identifier.Equals(id) {
		return nil, errors.Wrap(ErrIdentifierMismatch, "stored identifier differs")
	}
	return entry, nil
}

// ReclaimHandler returns a held transfer to its sender after the deadline.
type ReclaimHandler struct {
	auth   x.Authenticator
	bucket Bucket
	bank   cash.Controller
}

var _ remit.Handler = ReclaimHandler{}

func (h ReclaimHandler) Check(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &remit.CheckResult{GasAllocated: reclaimCost}, nil
}

func (h ReclaimHandler) Deliver(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	entry, conf, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	amount := *entry.Amount

	entry.Status = TransferStatusReclaimed
	entry.Amount = coin.NewCoinp(0, 0, amount.Ticker)
	if err := h.bucket.Save(store, orm.NewSimpleObj(entry.Identifier, entry)); err != nil {
		return nil, err
	}

	refund := amount
	if conf.FeeOnReclaim && conf.Fee.IsPositive() && conf.Fee.SameType(amount) {
		// Charge the fee a second time, capped by what is left.
		charge := conf.Fee
		if amount.Compare(charge) < 0 {
			charge = amount
		}
		if charge.IsPositive() {
			if err := h.bank.MoveCoins(store, entry.Address, conf.CollectorAddress, charge); err != nil {
				return nil, errors.Wrap(ErrTransferFailed, err.Error())
			}
			left, err := refund.Subtract(charge)
			if err != nil {
				return nil, errors.Wrap(err, "refund")
			}
			refund = left
		}
	}
	if refund.IsPositive() {
		if err := h.bank.MoveCoins(store, entry.Address, entry.Sender, refund); err != nil {
			return nil, errors.Wrap(ErrTransferFailed, err.Error())
		}
	}

	return &remit.DeliverResult{
		Data: entry.Identifier,
		Tags: transferTags(entry),
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ReclaimHandler) validate(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*Entry, *Configuration, error) {
	var msg ReclaimMsg
	if err := remit.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	sender := signer.Address()

	id, err := DeriveIdentifier(remit.GetChainID(ctx), sender, msg.Recipient, msg.Secret)
	if err != nil {
		return nil, nil, err
	}
	entry, err := loadEntry(h.bucket, store, id)
	if err != nil {
		return nil, nil, err
	}
	if entry.Status != TransferStatusCreated {
		return nil, nil, errors.Wrapf(ErrAlreadyClaimed, "transfer is %s", entry.Status)
	}
	if !entry.Sender.Equals(sender) || !entry.Recipient.Equals(msg.Recipient) {
		return nil, nil, errors.Wrap(ErrAccountMismatch, "transfer belongs to other parties")
	}
	if !entry.Identifier.Equals(id) {
		return nil, nil, errors.Wrap(ErrIdentifierMismatch, "stored identifier differs")
	}

	// Reclaiming is allowed only strictly after the deadline. At the
	// deadline itself the recipient still has priority.
	now, err := remit.BlockTime(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "block time")
	}
	if !now.After(entry.Deadline.Time()) {
		return nil, nil, errors.Wrapf(ErrTooEarly, "deadline %s not passed", entry.Deadline)
	}

	conf, err := loadConf(store)
	if err != nil {
		return nil, nil, err
	}
	return entry, &conf, nil
}

// WithdrawFeesHandler moves all accumulated fees to the configuration owner.
type WithdrawFeesHandler struct {
	auth x.Authenticator
	bank cash.Controller
}

var _ remit.Handler = WithdrawFeesHandler{}

func (h WithdrawFeesHandler) Check(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*remit.CheckResult, error) {
	if _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}
	return &remit.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h WithdrawFeesHandler) Deliver(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*remit.DeliverResult, error) {
	conf, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	balance, err := h.bank.Balance(store, conf.CollectorAddress)
	switch {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(ErrNoBalance, "no fees collected")
	case err != nil:
		return nil, err
	}
	if balance.IsEmpty() {
		return nil, errors.Wrap(ErrNoBalance, "no fees collected")
	}
	if err := cash.MoveCoins(store, h.bank, conf.CollectorAddress, conf.Owner, balance); err != nil {
		return nil, errors.Wrap(ErrTransferFailed, err.Error())
	}

	return &remit.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h WithdrawFeesHandler) validate(ctx remit.Context, store remit.KVStore, tx remit.Tx) (*Configuration, error) {
	var msg WithdrawFeesMsg
	if err := remit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(store)
	if err != nil {
		return nil, err
	}
	if len(conf.Owner) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no owner configured")
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &conf, nil
}

// loadEntry loads an entry and casts it, returns ErrNotFound if not present.
func loadEntry(bucket Bucket, db remit.KVStore, id Identifier) (*Entry, error) {
	obj, err := bucket.Get(db, id)
	if err != nil {
		return nil, err
	}
	entry := AsEntry(obj)
	if entry == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "unknown transfer")
	}
	return entry, nil
}

func transferTags(entry *Entry) []common.KVPair {
	return []common.KVPair{
		{Key: []byte(tagIdentifier), Value: entry.Identifier},
		{Key: []byte(tagSender), Value: entry.Sender},
		{Key: []byte(tagRecipient), Value: entry.Recipient},
	}
}
