package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-swizgen/internal/logging"
	"github.com/goliatone/go-swizgen/pkg/generator"
	"github.com/goliatone/go-swizgen/pkg/preset"
	"github.com/goliatone/go-swizgen/pkg/prompt"
	"github.com/goliatone/go-swizgen/pkg/swizzle"
)

// env holds the process collaborators the command needs. Tests replace them.
type env struct {
	interactive func() bool
	session     func() *prompt.Session
	resolver    preset.Resolver
}

func defaultEnv() env {
	return env{
		interactive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		session: func() *prompt.Session {
			return prompt.NewSession()
		},
		resolver: preset.NewResolver(),
	}
}

type rootOptions struct {
	components    string
	maxComponents int
	template      string
	output        string
	renderer      string
	preset        string
	yes           bool
	verbosity     int
}

func newRootCmd(e env) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "swizgen",
		Short: "Generate swizzle accessors from component letters",
		Long: `swizgen enumerates every ordered combination of a set of component letters
(for example RGBA or XYZW) up to a maximum length, shortest first, and renders
each one through a template.

Templates use {elem} (the combination, "XY"), {length} (its length, 2) and
{params} (its letters as parameters, "X, Y"). Type \n for a line break.
Values not given as flags or through a preset are asked for interactively.`,
		Example: `  swizgen -c XYZ -m 3 -t 'public Vector{length}T<T> {elem} => new Vector{length}T<T>({params});'
  swizgen --preset vector4 -o Swizzles.cs --yes
  swizgen -c RGBA -m 2 -r pongo2 -t '{{ elem|lower }}: {{ params }}'`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(cmd.ErrOrStderr(), opts.verbosity, !isTerminalWriter(cmd.ErrOrStderr()))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, e, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.components, "components", "c", "", "component letters to combine, e.g. RGBA")
	flags.IntVarP(&opts.maxComponents, "max", "m", 0, "maximum number of components per swizzle")
	flags.StringVarP(&opts.template, "template", "t", "", "template rendered for every swizzle")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (stdout when empty)")
	flags.StringVarP(&opts.renderer, "renderer", "r", "", "template engine (literal, pongo2)")
	flags.StringVarP(&opts.preset, "preset", "p", "", "preset name or path to a YAML/TOML preset")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "overwrite the output file without asking")
	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	_ = cmd.RegisterFlagCompletionFunc("preset", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		user, builtin, err := e.resolver.Names()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return append(user, builtin...), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("renderer", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return generator.New().Renderers(), cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(newPresetsCmd(e))
	return cmd
}

func runGenerate(cmd *cobra.Command, e env, opts *rootOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Component("cli")
	status := newStatus(cmd.ErrOrStderr())

	answers, renderer, err := resolveAnswers(cmd, e, opts, logger)
	if err != nil {
		return err
	}

	if !answers.Complete() {
		if !e.interactive() {
			return fmt.Errorf("missing %s: pass them as flags or a preset, or run in a terminal", strings.Join(answers.Missing(), ", "))
		}
		answers, err = e.session().Collect(ctx, answers)
		if err != nil {
			return err
		}
	}

	req := generator.Request{
		Symbols:   swizzle.ParseSymbols(answers.Components),
		MaxLength: *answers.MaxComponents,
		Template:  *answers.Template,
		Renderer:  renderer,
	}
	logger.Info().
		Str("components", answers.Components).
		Int("max", req.MaxLength).
		Str("renderer", renderer).
		Int("expected", swizzle.Count(len(req.Symbols), req.MaxLength)).
		Msg("Generating swizzles")

	output := *answers.Output
	if output == "" {
		gen := newGenerator(logger, status, false)
		_, err := gen.Stream(ctx, req, cmd.OutOrStdout())
		return err
	}

	if !opts.yes {
		if !e.interactive() {
			return fmt.Errorf("refusing to overwrite %q without confirmation: pass --yes", output)
		}
		ok, err := e.session().ConfirmOverwrite(ctx, output)
		if err != nil {
			return err
		}
		if !ok {
			status.Info("Ok.")
			return nil
		}
	}

	return writeFile(ctx, output, newGenerator(logger, status, true), req, status, logger)
}

// resolveAnswers layers flags over the preset, leaving anything unset for
// the interactive session.
func resolveAnswers(cmd *cobra.Command, e env, opts *rootOptions, logger zerolog.Logger) (prompt.Answers, string, error) {
	var (
		answers  prompt.Answers
		renderer string
	)

	if opts.preset != "" {
		p, err := e.resolver.Resolve(opts.preset)
		if err != nil {
			return prompt.Answers{}, "", err
		}
		answers = prompt.Answers{
			Components:    p.Components,
			MaxComponents: p.MaxComponents,
			Template:      p.Template,
			Output:        p.Output,
		}
		renderer = p.Renderer
		logger.Debug().Str("preset", p.Name).Msg("Loaded preset")
	}

	flags := cmd.Flags()
	var over prompt.Answers
	if flags.Changed("components") {
		over.Components = opts.components
	}
	if flags.Changed("max") {
		over.MaxComponents = &opts.maxComponents
	}
	if flags.Changed("template") {
		over.Template = &opts.template
	}
	if flags.Changed("output") {
		output := strings.TrimSpace(opts.output)
		over.Output = &output
	}
	if flags.Changed("renderer") {
		renderer = opts.renderer
	}

	answers = answers.Merge(over)

	// A fully specified command line writes to stdout unless told otherwise.
	if answers.Output == nil && answers.Components != "" && answers.MaxComponents != nil && answers.Template != nil {
		stdout := ""
		answers.Output = &stdout
	}
	return answers, renderer, nil
}

func newGenerator(logger zerolog.Logger, status *statusPrinter, toFile bool) *generator.Generator {
	return generator.New(
		generator.WithLogger(logger),
		generator.WithProgress(func(phase generator.Phase) {
			switch phase {
			case generator.PhaseEnumerate:
				status.Info("Processing... (this may take a while!)")
			case generator.PhaseSort:
				status.Info("Prettyfying... (this may also take a while!)")
			case generator.PhaseRender:
				if toFile {
					status.Info("Writing... Please wait.")
				}
			}
		}),
	)
}

// writeFile only truncates path once the request is known to render.
func writeFile(ctx context.Context, path string, gen *generator.Generator, req generator.Request, status *statusPrinter, logger zerolog.Logger) (err error) {
	if err := gen.Validate(ctx, req); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	n, err := gen.Stream(ctx, req, f)
	if err != nil {
		return err
	}
	logger.Info().Str("path", path).Int("lines", n).Msg("Wrote output")
	status.Success("All done.")
	return nil
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
