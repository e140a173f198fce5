package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"titlekit/internal/cache"
	"titlekit/internal/episodetitle"
	"titlekit/internal/logging"
	"titlekit/internal/namespec"
	"titlekit/internal/pipeline"
	"titlekit/internal/textutil"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool
	var noCacheFlag bool

	cmd := &cobra.Command{
		Use:   "run [envelope]",
		Short: "Run the disambiguation rules over a tagged-span envelope",
		Long: `Run reads a span envelope (JSON produced by the upstream extractor),
applies the episode-title rule graph, and prints the mutated matches.
Pass "-" or no argument to read the envelope from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readEnvelopeArg(cmd, args)
			if err != nil {
				return err
			}
			return runDisambiguation(cmd, ctx, raw, jsonFlag, noCacheFlag)
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the mutated envelope as JSON")
	cmd.Flags().BoolVar(&noCacheFlag, "no-cache", false, "Bypass the result cache")
	return cmd
}

func readEnvelopeArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read envelope file: %w", err)
	}
	return string(data), nil
}

func runDisambiguation(cmd *cobra.Command, cmdCtx *commandContext, raw string, asJSON, noCache bool) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cmdCtx.ensureLogger()
	if err != nil {
		return err
	}

	env, err := namespec.Parse(raw)
	if err != nil {
		return err
	}

	useCache := cfg.Cache.Enabled && !noCache
	var key string
	var store *cache.Store
	if useCache {
		canonical, canonErr := env.Canonical()
		if canonErr != nil {
			return canonErr
		}
		key = cache.Key(canonical)
		store, err = cache.Open(cfg)
		if err != nil {
			logger.Warn("result cache unavailable", logging.Error(err))
			store = nil
		} else {
			defer store.Close()
		}
	}

	if store != nil {
		if payload, getErr := store.Get(cmd.Context(), key); getErr == nil {
			logger.Debug("cache hit", logging.String("key", key))
			return emitRaw(cmd, string(payload), asJSON)
		} else if !errors.Is(getErr, cache.ErrMiss) {
			logger.Warn("cache lookup failed", logging.Error(getErr))
		}
	}

	engine, err := pipeline.New(episodetitle.Rules(), logger)
	if err != nil {
		return err
	}
	coll := env.Collection()
	report := engine.Run(coll)
	logger.Info("pipeline complete",
		logging.Int("rules_applied", report.AppliedCount()),
		logging.Int("matches", coll.Len()),
	)

	result := namespec.FromCollection(coll)
	encoded, err := result.Encode()
	if err != nil {
		return err
	}

	if store != nil {
		if putErr := store.Put(cmd.Context(), key, []byte(encoded)); putErr != nil {
			logger.Warn("cache store failed", logging.Error(putErr))
		}
	}

	return emitRaw(cmd, encoded, asJSON)
}

func emitRaw(cmd *cobra.Command, encoded string, asJSON bool) error {
	env, err := namespec.Parse(encoded)
	if err != nil {
		return err
	}
	if asJSON || !stdoutIsTerminal() {
		return writeJSON(cmd, env)
	}
	return renderEnvelope(cmd, env)
}

func renderEnvelope(cmd *cobra.Command, env namespec.Envelope) error {
	rows := make([][]string, 0, len(env.Matches))
	for _, m := range env.Matches {
		display := m.Value
		if m.Tag == "title" || m.Tag == "episodeTitle" || m.Tag == "alternativeTitle" {
			display = textutil.DisplayTitle(m.Value)
		}
		rows = append(rows, []string{
			m.Tag,
			display,
			strconv.Itoa(m.Start),
			strconv.Itoa(m.End),
		})
	}
	out := renderTable(
		[]string{"Tag", "Value", "Start", "End"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
	)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
