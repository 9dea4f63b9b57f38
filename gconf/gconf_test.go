package gconf

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest/assert"
	"github.com/iov-one/remit/store"
)

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	src := &strconf{Value: "foobar"}
	if err := Save(db, "mypkg", src); err != nil {
		t.Fatalf("cannot save: %s", err)
	}

	var dst strconf
	if err := Load(db, "mypkg", &dst); err != nil {
		t.Fatalf("cannot load: %s", err)
	}
	assert.Equal(t, src, &dst)

	// Configurations are stored per package.
	var missing strconf
	if err := Load(db, "otherpkg", &missing); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestSaveInvalid(t *testing.T) {
	db := store.MemStore()
	c := &strconf{Value: "invalid"}
	if err := Save(db, "mypkg", c); !errors.ErrState.Is(err) {
		t.Fatalf("want validation failure, got %v", err)
	}
	if db.Get([]byte("_c:mypkg")) != nil {
		t.Fatal("invalid configuration must not be persisted")
	}
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()
	opts := remit.Options{
		"conf": json.RawMessage(`{"mypkg": {"value": "from genesis"}}`),
	}

	var c strconf
	if err := InitConfig(db, opts, "mypkg", &c); err != nil {
		t.Fatalf("cannot initialize configuration: %s", err)
	}

	var got strconf
	if err := Load(db, "mypkg", &got); err != nil {
		t.Fatalf("cannot load: %s", err)
	}
	assert.Equal(t, "from genesis", got.Value)

	if err := InitConfig(db, opts, "unknownpkg", &strconf{}); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found for a package without genesis entry, got %v", err)
	}
}

type strconf struct {
	Value string `json:"value"`
}

func (c *strconf) Marshal() ([]byte, error)   { return json.Marshal(c) }
func (c *strconf) Unmarshal(raw []byte) error { return json.Unmarshal(raw, c) }

func (c *strconf) Validate() error {
	if c.Value == "invalid" {
		return errors.Wrap(errors.ErrState, "invalid value")
	}
	return nil
}
