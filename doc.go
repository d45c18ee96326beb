// Package fintra provides the core of a local-first personal finance
// tracker: a ledger of dated income and expense movements, peer debts with
// partial payments, and the income funds that expenses draw against.
//
// The core functionalities include:
//   - Ledger Store: recording and deleting movements and debts while
//     keeping the referential invariants between movements, funds, and
//     debts intact after every mutation.
//   - Fund Allocation: backing each expense with the unspent balances of
//     earlier incomes, with an exact conservation law (draws plus
//     overspend equal the expense amount) and a clean reversal on delete.
//   - Debt Tracking: receivables and payables with partial payments, each
//     payment emitting exactly one settlement movement.
//   - Reporting Projections: pure read-side derivations (balance, debt
//     totals, per-category aggregates, calendar markers, filtered views)
//     recomputed from the ledger state.
//   - Data Persistence: full-snapshot JSON encoding with a stable field
//     order, plus a semicolon-delimited exchange format for import/export.
//
// This package serves as the foundational logic for the `ftr` command-line
// tool.
package fintra
