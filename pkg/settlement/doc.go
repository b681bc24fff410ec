// Package settlement computes the payments that square up a shared-pot cash
// game once it is over.
//
// The input is a list of named net balances (cash-out minus buy-in) that the
// caller expects to sum to zero. Settle pairs the largest debtor with the
// largest creditor until one side runs out, which yields few transfers for
// the distributions seen at a real table. It is a greedy heuristic: it does
// not search for the provably minimal number of transfers.
//
// Settle is a total function. It never fails and it does not check that the
// balances sum to zero; when they don't, the leftover amount on the longer
// side is simply not settled. Callers that need strict behavior check Total
// before calling Settle and can inspect what is left with Residuals.
//
// The package keeps no state and is safe for concurrent use.
package settlement
