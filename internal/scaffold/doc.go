// Package scaffold materializes the fixed project layout into a target
// directory. Each file has a write strategy (create-only, create-or-skip,
// create-or-merge) so that content a user already owns is never replaced; the
// README is the single file that may be edited in place, and only to insert
// the badge block once.
package scaffold
