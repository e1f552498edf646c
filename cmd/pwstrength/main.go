// Package main provides the entry point for the pwstrength CLI.
//
// pwstrength scores password strength, generates passwords that reach the
// maximum score, and runs an interactive session that keeps a history of
// committed passwords for export.
//
// Usage:
//
//	pwstrength score <password>
//	pwstrength generate --length 26 --count 5
//	pwstrength session --export history.csv
//
// See --help for all available options.
package main

// main is the entry point for pwstrength.
func main() {
	Execute()
}
