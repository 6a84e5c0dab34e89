// Package pairing solves the number pairing problem: split a non-negative
// integer target into two non-negative integers a + b = target so that
// a*b*|a-b| is as large as possible.
//
// Solving is a pure, deterministic computation with no hidden state, so the
// package is safe for concurrent use without synchronization.
package pairing
