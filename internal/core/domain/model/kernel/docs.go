// Package kernel contains shared domain primitives used across aggregates.
//
// Its central type is TrackingCode, the externally visible lookup key of a
// tracked package. The code is a random 128-bit token rendered in canonical
// UUID form, generated once at registration and immutable afterwards. It is
// deliberately distinct from the numeric identity the persistence layer
// assigns: clients only ever see and supply codes.
package kernel
