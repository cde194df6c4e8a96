// Package options resolves a fully determined scaffold configuration from
// partially specified caller input. Each field is resolved by an ordered chain
// of steps (explicit value, interactive prompt, static default) and the first
// step that yields a concrete value wins.
package options
