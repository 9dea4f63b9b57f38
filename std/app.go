/*
Package std wires together all the components of the remittance
application: the transaction envelope, the decorator stack, the message
router and the query router.
*/
package std

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/app"
	"github.com/iov-one/remit/migration"
	"github.com/iov-one/remit/store/iavl"
	"github.com/iov-one/remit/x"
	"github.com/iov-one/remit/x/batch"
	"github.com/iov-one/remit/x/cash"
	"github.com/iov-one/remit/x/guard"
	"github.com/iov-one/remit/x/remittance"
	"github.com/iov-one/remit/x/sigs"
	"github.com/iov-one/remit/x/utils"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// CashControl returns a controller for cash functions
func CashControl() cash.Controller {
	return cash.NewController(cash.NewBucket())
}

// Chain returns a chain of decorators, to handle authentication,
// the pause gate, logging, and recovery
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		// the pause gate comes before signature verification, so a
		// paused chain rejects transactions as cheap as possible
		guard.NewDecorator(),
		sigs.NewDecorator(),
		batch.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
		// tag each executed message with its path, after batch so every
		// submessage is tagged individually
		utils.NewActionTagger(),
	)
}

// Router returns a default router, dispatching to all message handlers
// of the application
func Router(authFn x.Authenticator, ctrl cash.Controller) *app.Router {
	r := app.NewRouter()
	cash.RegisterRoutes(r, authFn, ctrl)
	sigs.RegisterRoutes(r, authFn)
	migration.RegisterRoutes(r, authFn)
	guard.RegisterRoutes(r, authFn)
	remittance.RegisterRoutes(r, authFn, ctrl)
	return r
}

// QueryRouter returns a default query router, allowing access to
// "/wallets", "/auth", "/transfers", the stored configurations and the
// schema information
func QueryRouter() remit.QueryRouter {
	r := remit.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		migration.RegisterQuery,
		guard.RegisterQuery,
		remittance.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() remit.Handler {
	authFn := Authenticator()
	return Chain(authFn).
		WithHandler(Router(authFn, CashControl()))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h remit.Handler,
	tx remit.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, nil, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (remit.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("invalid database name: %s", path)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
