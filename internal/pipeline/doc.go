// Package pipeline runs password generation jobs through a sequence of
// steps, one job at a time or as a concurrent batch.
//
// A Pipeline executes its steps in order against a single Job: generate a
// candidate, re-score it, and optionally enforce a minimum entropy. A
// BatchGenerator builds a fresh Pipeline per job from a factory and runs
// jobs concurrently with errgroup, bounded by a concurrency limit. Each
// job owns its Generator, so no random source is shared between
// goroutines.
package pipeline
