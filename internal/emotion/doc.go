// Package emotion implements the affective state store.
//
// Each conversation owns one emotion vector and a last-touch timestamp. Decay
// is computed lazily on every access instead of by a background timer, so
// cost is O(1) per access and repeated reads with zero elapsed time are
// idempotent. A per-conversation mutex serializes the read-decay-mutate-write
// sequence; different conversations proceed fully in parallel.
package emotion
