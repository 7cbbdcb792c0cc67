package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/riskibarqy/matchday/internal/app"
	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const usage = `usage: matchday <command> [args]

commands:
  predict  [in] [out]   predict every match and write the analysis document
  english  [in] [out]   group English matches by league and tier
  process  [in] [out]   flatten the analysis into the processed document
  display  [paths...]   replace zero values with display placeholders
  copy     [names...]   copy data documents to the public directory
  check    [in]         validate probabilities and risk levels
  show     [in]         print the analysis grouped by day
  pipeline              run predict, process, display and copy once
  watch                 run the pipeline on PIPELINE_SCHEDULE
  seed     [out]        write a sample match list
`

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.NewConsole(cfg.LogLevel, os.Stderr)
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, cfg, os.Args[1:], os.Stdout, logger)
	stop()
	_ = logger.Sync()
	os.Exit(code)
}

func run(ctx context.Context, cfg config.Config, args []string, stdout io.Writer, logger *logging.Logger) int {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return 2
	}

	data := app.NewDataServices(cfg, logger)
	command, rest := args[0], args[1:]

	var err error
	switch command {
	case "predict":
		in, out := argOr(rest, 0, data.MatchesPath()), argOr(rest, 1, data.AnalysisPath())
		result, runErr := data.Predictions.Analyze(ctx, in, out)
		if err = runErr; err == nil {
			fmt.Fprintf(stdout, "Generated %d predictions -> %s\n", result.TotalMatches, out)
		}
	case "english":
		in, out := argOr(rest, 0, data.MatchesPath()), argOr(rest, 1, data.EnglishPath())
		result, runErr := data.English.Group(ctx, in, out)
		if err = runErr; err == nil {
			fmt.Fprintf(stdout, "Found %d English matches in %d leagues -> %s\n", result.TotalMatches, len(result.Summary.Leagues), out)
			for _, league := range result.Summary.Leagues {
				fmt.Fprintf(stdout, "  %s: %d\n", league.League, league.Matches)
			}
			tiers := result.Summary.Tiers
			fmt.Fprintf(stdout, "Top tier %d | Second tier %d | Lower leagues %d | Non-league %d\n",
				tiers.TopTier, tiers.SecondTier, tiers.LowerLeagues, tiers.NonLeague)
		}
	case "process":
		in, out := argOr(rest, 0, data.AnalysisPath()), argOr(rest, 1, data.ProcessedPath())
		result, runErr := data.Processed.Convert(ctx, in, out)
		if err = runErr; err == nil {
			fmt.Fprintf(stdout, "Processed %d matches -> %s\n", result.TotalMatches, out)
		}
	case "display":
		paths := rest
		if len(paths) == 0 {
			paths = []string{data.AnalysisPath(), data.PublicAnalysisPath()}
		}
		results, runErr := data.Display.ApplyPlaceholders(ctx, paths...)
		for _, result := range results {
			fmt.Fprintf(stdout, "%-8s %s (%d replaced)\n", result.Status, result.Path, result.Replaced)
		}
		err = runErr
	case "copy":
		names := rest
		if len(names) == 0 {
			names = []string{cfg.AnalysisFile, cfg.ProcessedFile}
		}
		results, runErr := data.Copy.Publish(ctx, names...)
		for _, result := range results {
			fmt.Fprintf(stdout, "%-8s %s\n", result.Status, result.Name)
		}
		err = runErr
	case "check":
		report, runErr := data.Consistency.Check(ctx, argOr(rest, 0, data.AnalysisPath()))
		if runErr != nil {
			err = runErr
			break
		}
		fmt.Fprintf(stdout, "Checked %d analyses (tolerance %d)\n", report.Checked, report.Tolerance)
		for _, issue := range report.Issues {
			fmt.Fprintf(stdout, "  #%d %s [%s] %s\n", issue.Index+1, issue.Match, issue.Kind, issue.Message)
		}
		if !report.OK() {
			fmt.Fprintf(stdout, "%d issues found\n", len(report.Issues))
			return 1
		}
		fmt.Fprintln(stdout, "All analyses are consistent")
	case "show":
		err = data.Console.Render(ctx, argOr(rest, 0, data.AnalysisPath()), stdout)
	case "pipeline":
		result, runErr := data.Pipeline.Run(ctx)
		if err = runErr; err == nil {
			fmt.Fprintf(stdout, "Pipeline finished: %d analyzed, %d processed in %dms\n", result.Analyzed, result.Processed, result.DurationMs)
		}
	case "watch":
		err = data.Pipeline.Watch(ctx, cfg.PipelineSchedule)
	case "seed":
		out := argOr(rest, 0, data.MatchesPath())
		list := match.List{
			LastUpdated: time.Now().UTC().Format(time.RFC3339),
			Source:      "seed",
			Matches:     memory.SeedMatches(),
		}
		if err = data.Store.WriteDocument(ctx, out, list); err == nil {
			fmt.Fprintf(stdout, "Wrote %d matches -> %s\n", len(list.Matches), out)
		}
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stdout, "unknown command %q\n\n%s", command, usage)
		return 2
	}

	if err != nil {
		logger.Error("command failed", "command", command, "error", err)
		return 1
	}
	return 0
}

func argOr(args []string, i int, fallback string) string {
	if i < len(args) && strings.TrimSpace(args[i]) != "" {
		return args[i]
	}
	return fallback
}
