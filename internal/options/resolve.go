package options

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thegreatbey/strange-lil-scaffold/internal/branding"
)

// Prompter asks the user one question at a time.
//
// Ask returns the answer to a free-text question; an empty answer means the
// displayed default was accepted. Confirm returns a yes/no answer, falling back
// to def when the input is neither.
type Prompter interface {
	Ask(question, def string) (string, error)
	Confirm(question string, def bool) (bool, error)
}

// Defaults are the static fallbacks used when neither an explicit value nor
// an interactive answer resolves a field.
type Defaults struct {
	Owner  string
	Module ModuleSystem
}

// Env carries the process state the resolver depends on.
type Env struct {
	Cwd         string
	Interactive bool
	Prompter    Prompter
	Defaults    Defaults
}

// step is one link in a resolution chain. ok reports whether it produced a
// concrete value.
type step[T any] func() (v T, ok bool, err error)

// first runs steps in order and returns the first concrete value.
func first[T any](steps ...step[T]) (T, error) {
	var zero T
	for _, s := range steps {
		v, ok, err := s()
		if err != nil {
			return zero, err
		}
		if ok {
			return v, nil
		}
	}
	return zero, nil
}

func given[T any](v T, ok bool) step[T] {
	return func() (T, bool, error) { return v, ok, nil }
}

func constant[T any](v T) step[T] {
	return given(v, true)
}

func nonEmpty(s string) step[string] {
	s = strings.TrimSpace(s)
	return given(s, s != "")
}

type resolver struct {
	env Env
}

func (r *resolver) interactive() bool {
	return r.env.Interactive && r.env.Prompter != nil
}

// ask yields the trimmed answer when interactive and the answer is non-empty.
func (r *resolver) ask(question, def string) step[string] {
	return func() (string, bool, error) {
		if !r.interactive() {
			return "", false, nil
		}
		ans, err := r.env.Prompter.Ask(question, def)
		if err != nil {
			return "", false, fmt.Errorf("prompting %q: %w", question, err)
		}
		ans = strings.TrimSpace(ans)
		return ans, ans != "", nil
	}
}

func (r *resolver) confirm(question string, def bool) step[bool] {
	return func() (bool, bool, error) {
		if !r.interactive() {
			return false, false, nil
		}
		ans, err := r.env.Prompter.Confirm(question, def)
		if err != nil {
			return false, false, fmt.Errorf("prompting %q: %w", question, err)
		}
		return ans, true, nil
	}
}

// askModule prompts for a module system. Unrecognized answers are unresolved
// so the chain falls through to the static default.
func (r *resolver) askModule(def ModuleSystem) step[ModuleSystem] {
	return func() (ModuleSystem, bool, error) {
		ans, ok, err := r.ask("Module system (cjs/esm)", def.Hint())()
		if err != nil || !ok {
			return ModuleUnresolved, false, err
		}
		m := ParseModuleSystem(ans)
		return m, m != ModuleUnresolved, nil
	}
}

// Resolve merges opts, interactive answers, and env defaults into a complete
// configuration. Prompts are issued in a fixed order: name, module system,
// Jest, custom test command, owner, repo.
func Resolve(opts ScaffoldOptions, env Env) (*ResolvedConfig, error) {
	r := &resolver{env: env}

	defaultOwner := env.Defaults.Owner
	if defaultOwner == "" {
		defaultOwner = branding.DefaultOwner()
	}
	defaultModule := env.Defaults.Module
	if defaultModule == ModuleUnresolved {
		defaultModule = CommonJS
	}

	projectDir := env.Cwd
	if dir := strings.TrimSpace(opts.ProjectDir); dir != "" {
		projectDir = dir
		if !filepath.IsAbs(projectDir) {
			projectDir = filepath.Join(env.Cwd, projectDir)
		}
	}
	if !filepath.IsAbs(projectDir) {
		return nil, fmt.Errorf("resolving project directory %q: working directory is not set", opts.ProjectDir)
	}
	projectDir = filepath.Clean(projectDir)

	cfg := &ResolvedConfig{ProjectDir: projectDir}
	var err error

	nameSeed, _ := first(nonEmpty(opts.Name), constant(filepath.Base(projectDir)))
	if cfg.Name, err = first(r.ask("Project name", nameSeed), constant(nameSeed)); err != nil {
		return nil, err
	}

	var esm step[ModuleSystem] = given(ModuleUnresolved, false)
	if opts.ESM != nil {
		m := CommonJS
		if *opts.ESM {
			m = ESModule
		}
		esm = constant(m)
	}
	hint := ParseModuleSystem(opts.Module)
	cfg.ModuleSystem, err = first(
		esm,
		given(hint, hint != ModuleUnresolved),
		r.askModule(defaultModule),
		constant(defaultModule),
	)
	if err != nil {
		return nil, err
	}

	var jest step[bool] = given(false, false)
	if opts.Jest != nil {
		jest = constant(*opts.Jest)
	}
	cfg.UseJest, err = first(
		jest,
		r.confirm(`Add Jest config and set "test": "jest"?`, false),
		constant(false),
	)
	if err != nil {
		return nil, err
	}

	blank := "no-op"
	if cfg.UseJest {
		blank = "jest"
	}
	cfg.TestCommand, err = first(
		nonEmpty(opts.TestCommand),
		r.ask(fmt.Sprintf("Custom test script (leave blank for %s)", blank), ""),
		constant(""),
	)
	if err != nil {
		return nil, err
	}

	ownerSeed, _ := first(nonEmpty(opts.Owner), constant(defaultOwner))
	if cfg.Owner, err = first(r.ask("GitHub owner", ownerSeed), constant(ownerSeed)); err != nil {
		return nil, err
	}

	repoSeed, _ := first(nonEmpty(opts.Repo), constant(cfg.Name))
	if cfg.Repo, err = first(r.ask("GitHub repo name", repoSeed), constant(repoSeed)); err != nil {
		return nil, err
	}

	cfg.Version, _ = first(nonEmpty(opts.Version), constant(DefaultVersion))
	cfg.NodeEngine, _ = first(nonEmpty(opts.NodeEngine), constant(DefaultNodeEngine))

	// An explicit test command always wins over the Jest toggle.
	if cfg.TestCommand != "" {
		cfg.UseJest = false
	}

	return cfg, nil
}
