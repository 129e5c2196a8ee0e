package ledger

import "errors"

// ErrNotPersisted reports that the local store refused the write. The
// underlying cause has already been logged by the store.
var ErrNotPersisted = errors.New("transaction not persisted")
