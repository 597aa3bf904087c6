// Package settlement is the side-effect free core of the payout engine: fee
// computation, release scheduling, the transaction and installment state
// machines, modality resolution and dashboard aggregation. Services load and
// persist state; everything here works on values handed in by the caller.
package settlement
