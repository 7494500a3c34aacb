// Package authz implements the ownership permission predicate.
//
// The single authorization rule in Conduit is object ownership: read
// actions are open to everyone, mutations require an authenticated caller,
// and entities that expose an owning profile may only be mutated by that
// profile. The predicate is pure; callers evaluate it before applying any
// mutation so a denial never leaves a partial write behind.
package authz
