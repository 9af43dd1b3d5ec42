package recordstore

import "strings"

// Collection identifiers. Scoped collections (vault, skins, motds) get their
// scope parts appended via Key.
const (
	CollectionUsers        = "users"
	CollectionTickets      = "tickets"
	CollectionTransactions = "txns"
	CollectionVault        = "vault"
	CollectionSkins        = "skins"
	CollectionMotds        = "motds"
)

const keyPrefix = "radiant"

// Key builds a deterministic namespaced key, e.g.
// Key(CollectionVault, "a@x.com", "plugin") -> "radiant:vault:a@x.com:plugin".
// Emails are lowercased so two spellings of the same address share a scope.
func Key(collection string, scope ...string) string {
	parts := make([]string, 0, len(scope)+2)
	parts = append(parts, keyPrefix, collection)
	for _, s := range scope {
		parts = append(parts, strings.ToLower(s))
	}
	return strings.Join(parts, ":")
}
