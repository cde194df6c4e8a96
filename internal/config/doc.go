// Package config manages user-level settings stored at
// ~/.strange-lil-scaffold/config.yaml. The settings supply the static defaults
// (badge owner, module system) that the option resolver falls back to when
// neither a flag nor an interactive answer provides a value.
package config
