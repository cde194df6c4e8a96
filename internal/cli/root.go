package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/thegreatbey/strange-lil-scaffold/internal/branding"
	"github.com/thegreatbey/strange-lil-scaffold/internal/config"
	"github.com/thegreatbey/strange-lil-scaffold/internal/manifest"
	"github.com/thegreatbey/strange-lil-scaffold/internal/options"
	"github.com/thegreatbey/strange-lil-scaffold/internal/platform"
	"github.com/thegreatbey/strange-lil-scaffold/internal/prompt"
	"github.com/thegreatbey/strange-lil-scaffold/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// app holds the process state a scaffold run depends on.
type app struct {
	fs          afero.Fs
	getwd       func() (string, error)
	interactive func(yes bool) bool
	prompter    func(cmd *cobra.Command) options.Prompter
	nodeVersion func(ctx context.Context) (string, error)
}

func defaultApp() *app {
	return &app{
		fs:    afero.NewOsFs(),
		getwd: platform.Workdir,
		interactive: func(yes bool) bool {
			return platform.Interactive(os.Stdin, yes)
		},
		prompter: func(cmd *cobra.Command) options.Prompter {
			return prompt.NewSurvey(os.Stdin, os.Stdout, cmd.ErrOrStderr())
		},
		nodeVersion: platform.NodeVersion,
	}
}

type scaffoldFlags struct {
	dir            string
	projectDir     string
	name           string
	owner          string
	repo           string
	esm            bool
	module         string
	jest           bool
	test           string
	yes            bool
	initialVersion string
	node           string
	dryRun         bool
	configFile     string
}

func newRootCmd(a *app) *cobra.Command {
	f := &scaffoldFlags{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [dir]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` sets up a tiny TypeScript CLI project with a sensible build,
scripts, and folder layout: package.json, tsconfig.json, .gitignore, a publish
workflow, an optional Jest config, a seed src/cli.ts, and a README with badges.

Existing files are never replaced. The README is only edited to insert the
badge block once.

Examples:
  ` + branding.CLIName() + ` my-app
  ` + branding.CLIName() + ` --dir ./packages/tool --esm --jest --yes
  ` + branding.CLIName() + ` . --test "vitest run" --owner octocat --dry-run`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.dir, "dir", "d", "", "Project directory (default: current directory)")
	fl.StringVar(&f.projectDir, "project-dir", "", "Alias of --dir")
	fl.StringVar(&f.name, "name", "", "Package name (default: directory name)")
	fl.StringVar(&f.owner, "owner", "", "GitHub owner used in README badges")
	fl.StringVar(&f.repo, "repo", "", "GitHub repo used in README badges (default: package name)")
	fl.BoolVar(&f.esm, "esm", false, "Use ES modules (type=module)")
	fl.StringVarP(&f.module, "module", "m", "", "Module system: cjs or esm")
	fl.BoolVar(&f.jest, "jest", false, `Add jest.config.cjs and set "test": "jest"`)
	fl.StringVarP(&f.test, "test", "t", "", "Custom test script (overrides --jest)")
	fl.BoolVarP(&f.yes, "yes", "y", false, "Accept all defaults without prompting")
	fl.StringVar(&f.initialVersion, "initial-version", options.DefaultVersion, "Initial package version")
	fl.StringVar(&f.node, "node", options.DefaultNodeEngine, "Supported Node.js range (engines.node)")
	fl.BoolVar(&f.dryRun, "dry-run", false, "Show what would be written without touching disk")
	fl.StringVar(&f.configFile, "config", "", "Config file (default: "+config.FilePath()+")")

	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// options converts flags and the positional dir into ScaffoldOptions.
// --project-dir wins over --dir, which wins over the positional argument.
func (f *scaffoldFlags) options(cmd *cobra.Command, args []string) options.ScaffoldOptions {
	opts := options.ScaffoldOptions{
		Name:        f.name,
		Owner:       f.owner,
		Repo:        f.repo,
		Module:      f.module,
		Yes:         f.yes,
		TestCommand: f.test,
		Version:     f.initialVersion,
		NodeEngine:  f.node,
	}

	switch {
	case f.projectDir != "":
		opts.ProjectDir = f.projectDir
	case f.dir != "":
		opts.ProjectDir = f.dir
	case len(args) > 0:
		opts.ProjectDir = args[0]
	}

	if cmd.Flags().Changed("esm") {
		esm := f.esm
		opts.ESM = &esm
	}
	if cmd.Flags().Changed("jest") {
		jest := f.jest
		opts.Jest = &jest
	}
	return opts
}

func (a *app) run(cmd *cobra.Command, f *scaffoldFlags, args []string) error {
	if err := manifest.CheckVersion(f.initialVersion); err != nil {
		return fmt.Errorf("invalid --initial-version: %w", err)
	}
	if err := manifest.CheckEngine(f.node); err != nil {
		return fmt.Errorf("invalid --node: %w", err)
	}
	if f.module != "" && options.ParseModuleSystem(f.module) == options.ModuleUnresolved {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring unknown --module %q (use cjs or esm)\n", f.module)
	}

	a.checkNode(cmd, f.node)

	if f.configFile != "" {
		config.LoadFrom(f.configFile)
	} else {
		config.Load()
	}

	cwd, err := a.getwd()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	interactive := a.interactive(f.yes)
	env := options.Env{
		Cwd:         cwd,
		Interactive: interactive,
		Defaults: options.Defaults{
			Owner:  config.Owner(),
			Module: options.ParseModuleSystem(config.Module()),
		},
	}
	if interactive {
		printBanner(out)
		env.Prompter = a.prompter(cmd)
	}

	cfg, err := options.Resolve(f.options(cmd, args), env)
	if err != nil {
		return err
	}
	if interactive {
		fmt.Fprintf(out, "• Project directory [%s]\n", cfg.ProjectDir)
	}

	if f.dryRun {
		report, diffs, err := scaffold.Preview(a.fs, cfg)
		if err != nil {
			return fmt.Errorf("previewing scaffold: %w", err)
		}
		printWarnings(cmd.ErrOrStderr(), report.Warnings)
		printDiffs(out, diffs)
		fmt.Fprintln(out, "Dry run: no files were written.")
		printSummary(out, cfg, report)
		return nil
	}

	report, err := scaffold.Materialize(a.fs, cfg)
	if err != nil {
		return fmt.Errorf("scaffolding %s: %w", cfg.ProjectDir, err)
	}
	printWarnings(cmd.ErrOrStderr(), report.Warnings)
	printSummary(out, cfg, report)
	return nil
}

// checkNode warns when the installed Node.js does not satisfy the engines
// range. A missing node binary is not an error for scaffolding.
func (a *app) checkNode(cmd *cobra.Command, engine string) {
	if a.nodeVersion == nil {
		return
	}
	v, err := a.nodeVersion(cmd.Context())
	if err != nil {
		return
	}
	ok, err := manifest.SatisfiesEngine(v, engine)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not check node version: %v\n", err)
		return
	}
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: installed node %s does not satisfy engines.node %q\n", v, engine)
	}
}

func printBanner(w io.Writer) {
	fmt.Fprintf(w, `
✨ Welcome to %s

This will set up a tiny TypeScript CLI project with a sensible build,
scripts, and folder layout.

We will ask a few quick questions (defaults in brackets). Press Enter to accept. Ctrl+C to quit.

`, branding.DisplayName())
}

func printWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}
}

func printDiffs(w io.Writer, diffs []scaffold.FileDiff) {
	for _, d := range diffs {
		fmt.Fprintf(w, "--- %s (%s)\n", d.Path, d.Status)
		fmt.Fprint(w, d.Text)
		if !strings.HasSuffix(d.Text, "\n") {
			fmt.Fprintln(w)
		}
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return newRootCmd(defaultApp()).Execute()
}
