/*
Package action implements the causal action lifecycle: tasks, nested
actions, and the execution scope that tracks which action is currently
running on a logical thread of control.

A task is a top-level action. Every action emits a start message when it
is created through StartTask or StartAction and exactly one finish
message when it completes, successfully or not. Task levels ("/",
"/1/", "/1/2/") encode the tree position, so a log consumer can rebuild
the whole call tree from the flat message stream.

Actions are single-threaded by contract: an Action and a Scope belong to
the goroutine that created them. Hand a fresh Scope (or a child action
plus its own Scope) to each goroutine instead of sharing one.
*/
package action
