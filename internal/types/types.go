package types

// EntityID uniquely identifies an entity for its whole lifetime.
// 0 is reserved as the invalid ID.
type EntityID uint64
