// Package circulation holds the borrowing lifecycle model of the library:
// books with their copy counters, borrow requests, loans and the fines derived from them.
//
// The package is storage agnostic. Engines (see the sqlengine and memengine subpackages) implement
// Engine, which exposes a read side (Reader) and a unit of work (WithinTx) that runs a Tx callback
// atomically: every write done through Tx is committed together or rolled back together.
//
// Business decisions are not made here. The command features load state through Tx, decide
// with pure functions, and write the decided effects back through the same Tx.
package circulation
