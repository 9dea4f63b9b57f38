package remittance

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/migration"
	"github.com/iov-one/remit/orm"
)

func init() {
	migration.MustRegister(1, &Entry{}, migration.NoModification)
}

// BucketName is where all transfer entries are stored.
const BucketName = "transfer"

// maxMemoSize is the maximum number of characters allowed in a memo.
const maxMemoSize = 128

var _ orm.CloneableData = (*Entry)(nil)

// Validate ensures the entry is complete and internally consistent.
func (e *Entry) Validate() error {
	if err := e.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := e.Identifier.Validate(); err != nil {
		return errors.Wrap(err, "identifier")
	}
	if err := e.Sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := e.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if e.Amount == nil {
		return errors.Wrap(errors.ErrAmount, "amount is required")
	}
	if err := e.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !e.Amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "amount cannot be negative")
	}
	if e.Fee != nil {
		if err := e.Fee.Validate(); err != nil {
			return errors.Wrap(err, "fee")
		}
	}
	if e.Deadline == 0 {
		return errors.Wrap(errors.ErrInput, "deadline is required")
	}
	if err := e.Deadline.Validate(); err != nil {
		return errors.Wrap(err, "deadline")
	}
	switch e.Status {
	case TransferStatusCreated, TransferStatusClaimed, TransferStatusReclaimed:
		// All good.
	default:
		return errors.Wrapf(errors.ErrState, "invalid status %d", e.Status)
	}
	if len(e.Memo) > maxMemoSize {
		return errors.Wrapf(errors.ErrInput, "memo too long: %s", e.Memo)
	}
	if err := e.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

// Copy makes a deep copy of this entry.
func (e *Entry) Copy() orm.CloneableData {
	return &Entry{
		Metadata:   e.Metadata.Copy(),
		Identifier: append(Identifier{}, e.Identifier...),
		Sender:     append(remit.Address{}, e.Sender...),
		Recipient:  append(remit.Address{}, e.Recipient...),
		Amount:     e.Amount.Clone(),
		Fee:        e.Fee.Clone(),
		Deadline:   e.Deadline,
		Status:     e.Status,
		Memo:       e.Memo,
		Address:    append(remit.Address{}, e.Address...),
	}
}

// TransferAddress returns the address of the account holding the escrowed
// coins of the transfer with the given identifier.
func TransferAddress(id Identifier) remit.Address {
	return remit.NewCondition("remittance", "transfer", id).Address()
}

// AsEntry extracts an *Entry value or nil from the object.
// Must be called on a Bucket result that is an *Entry, panics on bad type.
func AsEntry(obj orm.Object) *Entry {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Entry)
}

// Bucket is the persistent storage for transfer entries, keyed by the
// transfer identifier.
type Bucket struct {
	migration.Bucket
}

// NewBucket creates the transfer bucket with sender and recipient indexes.
func NewBucket() Bucket {
	return Bucket{
		Bucket: migration.NewBucket("remittance", BucketName,
			orm.NewSimpleObj(nil, &Entry{})).
			WithIndex("sender", idxSender, false).
			WithIndex("recipient", idxRecipient, false),
	}
}

// Save enforces that only valid entries are persisted.
func (b Bucket) Save(db remit.KVStore, obj orm.Object) error {
	if _, ok := obj.Value().(*Entry); !ok {
		return errors.WithType(errors.ErrModel, obj.Value())
	}
	return b.Bucket.Save(db, obj)
}

func toEntry(obj orm.Object) (*Entry, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	e, ok := obj.Value().(*Entry)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Entry")
	}
	return e, nil
}

func idxSender(obj orm.Object) ([]byte, error) {
	e, err := toEntry(obj)
	if err != nil {
		return nil, err
	}
	return e.Sender, nil
}

func idxRecipient(obj orm.Object) ([]byte, error) {
	e, err := toEntry(obj)
	if err != nil {
		return nil, err
	}
	return e.Recipient, nil
}
