// Package registry provides an immutable index of named entities.
//
// A Registry is built once from a slice of entities and never changes
// afterwards. Every entity is retrievable under a unique, non-empty name,
// so Len always equals the number of entities it was built from.
//
// # Basic Usage
//
//	type Store struct {
//	    registry.NameBase
//	    DSN string
//	}
//
//	stores := registry.New([]*Store{
//	    {NameBase: registry.MakeNameBase("primary"), DSN: "..."},
//	    {NameBase: registry.MakeNameBase("replica"), DSN: "..."},
//	})
//
//	s, err := stores.Lookup("primary")
//	if errors.Is(err, registry.ErrInvalidArgument) {
//	    // empty or unknown name
//	}
//
//	if s, ok := stores.TryLookup("archive"); ok {
//	    // use s
//	}
//
// # Name Resolution
//
// Entities are processed in input order:
//   - an empty name is replaced by the entity's type name ("Store")
//   - a name already taken gets the first free numeric suffix:
//     three entities named "cache" become "cache", "cache1", "cache2"
//   - suffixes skip names declared by any entity in the input, so an entity
//     whose declared name is unique always keeps it
//
// Resolution writes the final name back with SetName. Building a registry
// therefore mutates the entities passed in; after Build, e.Name() is the key
// e is registered under.
//
// # Observability
//
// Build accepts WithLogger, WithMetrics and WithSpanManager. Renames are
// logged at Debug level and recorded as span events; each registry carries a
// UUID (see ID) that is attached to its log records and build span.
//
// # Thread Safety
//
// Build is synchronous and must not run concurrently with mutation of its
// input. The resulting Registry is read-only, so all of its methods are safe
// for concurrent use without locking.
package registry
