package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eolymp/go-indentex/internal/config"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	var configFile string
	var disableNotice bool

	cmd := &cobra.Command{
		Use:   "indentex [flags] PATH...",
		Short: "Transpile indentation-based LaTeX shorthand into LaTeX",
		Long: `indentex converts *.inden.tex files into plain LaTeX, foo.inden.tex is written to foo.tex.

A line "# name opts: args" becomes \name opts{args}, "# name opts:" opens environment
\begin{name}opts which is closed when indentation returns to its level. Inside itemize,
enumerate and description lines starting with * become \item.

Examples:
  indentex chapter.inden.tex
  indentex --flatten-output src/        # every **/*.inden.tex below src
  indentex --disable-do-not-edit -j 4 a.inden.tex b.inden.tex`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			if disableNotice {
				cfg.DoNotEditNotice = false
			}

			log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

			failed := run(cmd.Context(), log, cfg, args)
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed", failed)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default .indentex.yaml)")
	flags.BoolP("flatten-output", "f", false, "remove indentation from generated LaTeX")
	flags.BoolVar(&disableNotice, "disable-do-not-edit", false, "do not prepend the autogenerated file notice")
	flags.String("pattern", "", "pattern of source files when PATH is a directory (default \"**/*.inden.tex\")")
	flags.IntP("workers", "j", 0, "number of files transpiled in parallel (default number of CPUs)")
	flags.BoolP("verbose", "v", false, "log every transpiled file")

	for key, name := range map[string]string{
		"flatten_output": "flatten-output",
		"pattern":        "pattern",
		"workers":        "workers",
		"verbose":        "verbose",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
