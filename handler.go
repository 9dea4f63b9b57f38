package remit

import (
	"bytes"
	"encoding/json"

	"github.com/iov-one/remit/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// Handler is a core engine that can process a few specific messages
// This could represent "coin transfer", or "bonding stake to a validator"
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authentication, or fee-handling, to many Handlers
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Ticker is an interface used to call background tasks scheduled for
// execution.
type Ticker interface {
	// Tick is a method called at the beginning of the block. It should be
	// used to execute any scheduled tasks.
	//
	// Because beginning of the block does not allow for an error response
	// this method does not return one as well. It is the implementation
	// responsibility to handle all error situations.
	// In case of an error that is an instance specific (ie database
	// issues) it might be neccessary for the method to terminate (ie
	// panic). An instance specific issue means that all other nodes most
	// likely succeeded processing the task and have different state than
	// this instance. This means that this node is out of sync with the
	// rest of the network and cannot continue operating as its state is
	// invalid.
	Tick(ctx Context, store CacheableKVStore) TickResult
}

// TickResult represents the result of a single tick run.
type TickResult struct {
	// Tags contains a list of tags that were produced during a single tick
	// execution. They should be included in the block that this tick
	// result was produced.
	// Empty tag list is a valid result.
	Tags []common.KVPair

	// Diff contains a list of validator update operations produced during
	// a single tick execution. They should be included in the block that
	// this tick result was produced.
	// Empty validator update list is a valid result.
	Diff []abci.ValidatorUpdate
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	// Handle assigns given handler to delegate processing of every
	// message of the provided type. Registering a handler for a message
	// type more than once is not allowed.
	Handle(Msg, Handler)
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Stream expects an array of json elements stored under given key and
// returns a function that loads them one by one. This avoids the need of
// loading all elements at once into the memory.
// When all elements were read, errors.ErrEmpty is returned. After any
// failure all further calls return errors.ErrState.
func (o Options) Stream(key string) (func(obj interface{}) error, error) {
	raw, ok := o[key]
	if !ok {
		return nil, errors.Wrapf(errors.ErrEmpty, "no data under %q key", key)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	var (
		initialized bool
		failed      bool
	)
	load := func(obj interface{}) error {
		if failed {
			return errors.Wrap(errors.ErrState, "cannot use a failed stream")
		}
		if !initialized {
			// The first token must open a JSON array.
			tok, err := dec.Token()
			if err != nil {
				failed = true
				return errors.Wrapf(errors.ErrInput, "invalid content: %s", err)
			}
			if d, ok := tok.(json.Delim); !ok || d != '[' {
				failed = true
				return errors.Wrapf(errors.ErrInput, "expected an array, got %v", tok)
			}
			initialized = true
		}
		if !dec.More() {
			failed = true
			return errors.Wrap(errors.ErrEmpty, "no more elements")
		}
		if err := dec.Decode(obj); err != nil {
			failed = true
			return errors.Wrapf(errors.ErrInput, "cannot decode element: %s", err)
		}
		return nil
	}
	return load, nil
}

// GenesisParams represents parameters set in the genesis that could be
// useful for some of the extensions.
type GenesisParams struct {
	Validators []abci.ValidatorUpdate `json:"validators"`
}

// FromInitChain initializes GenesisParams using abci.RequestInitChain
// data.
func FromInitChain(req abci.RequestInitChain) GenesisParams {
	return GenesisParams{
		Validators: req.Validators,
	}
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, GenesisParams, KVStore) error
}
