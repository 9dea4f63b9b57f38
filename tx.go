package remit

import (
	"reflect"

	"github.com/iov-one/remit/errors"
)

// Msg is message for the blockchain to take an action
// (Make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Return the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Multiple types may have the same value, and will end up at the
	// same Handler.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string

	// Validate returns error if the message content is not valid. The
	// check must be state independent and rely only on the content of
	// the message itself.
	Validate() error
}

// Marshaller is anything that can be represented in binary
//
// Marshall may validate the data before serializing it and
// unless you previously validated the struct,
// errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
//
// As with Marshaller, this may do internal validation on the data
// and errors should be expected.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represent the data sent from the user to the chain.
// It includes the actual message, along with information needed
// to authenticate the sender (cryptographic signatures),
// and anything else needed to pass through middleware.
//
// Each Application must define their own tx type, which
// embeds all the middlewares that we wish to use.
// auth.SignedTx and cash.FeeTx are common interfaces that
// many apps will wish to support.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message from the transaction and unpacks it into
// given destination structure. Before returning, the message is validated.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrState, "transaction contains no message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dval := reflect.ValueOf(destination)
	if dval.Kind() != reflect.Ptr || dval.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non nil pointer, got %T", destination)
	}
	mval := reflect.ValueOf(msg)
	if got, want := mval.Type(), dval.Type(); got != want {
		return errors.Wrapf(errors.ErrType, "destination is %s, message is %s", want, got)
	}
	dval.Elem().Set(mval.Elem())
	return nil
}

// ExtractMsgFromSum extracts a message instance from a tagged union wrapper,
// as produced by the protobuf compiler for the oneof declarations. Container
// is expected to be a pointer to a structure with a single field that holds
// the message.
func ExtractMsgFromSum(sum interface{}) (Msg, error) {
	if sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "message container is <nil>")
	}
	pval := reflect.ValueOf(sum)
	if pval.Kind() != reflect.Ptr || pval.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container: %T", sum)
	}
	sval := pval.Elem()
	if sval.NumField() != 1 {
		return nil, errors.Wrapf(errors.ErrInput, "unexpected number of container fields: %d", sval.NumField())
	}
	field := sval.Field(0)
	switch field.Kind() {
	case reflect.Ptr, reflect.Interface:
		if field.IsNil() {
			return nil, errors.Wrap(errors.ErrState, "message is not set")
		}
	}
	res, ok := field.Interface().(Msg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "unsupported message type: %T", field.Interface())
	}
	return res, nil
}
