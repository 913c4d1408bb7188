package repositories

import "context"

// Fixed storage keys. Each entity repository owns exactly one key and all
// access to that key goes through it, so the key and its schema are
// defined once.
const (
	KeyCostCodes = "costCodes"
	KeyInvoices  = "invoices"
	KeyDrafts    = "invoiceDrafts"
	KeyProjects  = "projects"
	KeyCustomers = "customers"
	KeyCompany   = "company"
)

// KVStore is the persistent store contract: JSON-serializable aggregates
// addressed by fixed string keys. There is no schema versioning; a
// malformed stored value is treated as absent.
type KVStore interface {
	// Load unmarshals the value stored under key into dest. It returns
	// false when the key is absent or holds a malformed value; dest is
	// left untouched in that case.
	Load(ctx context.Context, key string, dest any) (bool, error)

	// Save marshals value and writes it under key, replacing any
	// previous value. Last writer wins; there is exactly one local
	// writer by construction.
	Save(ctx context.Context, key string, value any) error
}
