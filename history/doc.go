// Package history records the sequence of (n, p) choices a user has made and
// lets them jump back to an earlier one.
//
// State transitions:
//
//	Set(x)    — x == current: nothing happens.
//	            otherwise:    current is pushed to the front of the past list
//	                          and x becomes current.
//	Select(i) — Set(past[i]); the entry being left is recorded too, so the
//	            list only ever grows and every visited state stays reachable.
//
// A History is plain UI state with a single owner and is not safe for
// concurrent use.
package history
