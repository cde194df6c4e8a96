// Package manifest models the JSON documents the scaffolder generates
// (package.json and tsconfig.json), renders them in a stable field order, and
// validates the rendered package.json against an embedded JSON Schema.
package manifest
