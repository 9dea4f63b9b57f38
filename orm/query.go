package orm

import (
	"github.com/iov-one/remit"
)

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr remit.Iterator) []remit.Model {
	defer itr.Close()

	var res []remit.Model
	for ; itr.Valid(); itr.Next() {
		mod := remit.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		}
		res = append(res, mod)
	}
	return res
}

// queryPrefix returns all models in the db with the given prefix,
// in ascending order of keys
func queryPrefix(db remit.ReadOnlyKVStore, prefix []byte) []remit.Model {
	itr := db.Iterator(prefixRange(prefix))
	return ConsumeIterator(itr)
}

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed the byte??
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}
