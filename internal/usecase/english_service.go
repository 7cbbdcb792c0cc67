package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

type LeagueCount struct {
	League  string `json:"league"`
	Matches int    `json:"matches"`
}

type TierCounts struct {
	TopTier      int `json:"topTier"`
	SecondTier   int `json:"secondTier"`
	LowerLeagues int `json:"lowerLeagues"`
	NonLeague    int `json:"nonLeague"`
}

type EnglishSummary struct {
	Leagues []LeagueCount `json:"leagues"`
	Tiers   TierCounts    `json:"tiers"`
}

// EnglishMatchesDocument groups English matches by league name.
type EnglishMatchesDocument struct {
	GeneratedAt  string                   `json:"generatedAt"`
	TotalMatches int                      `json:"totalMatches"`
	Leagues      map[string][]match.Match `json:"leagues"`
	Summary      EnglishSummary           `json:"summary"`
}

type EnglishMatchService struct {
	matchRepo match.Repository
	writer    DocumentWriter
	logger    *logging.Logger
	now       func() time.Time
}

func NewEnglishMatchService(matchRepo match.Repository, writer DocumentWriter, logger *logging.Logger) *EnglishMatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EnglishMatchService{
		matchRepo: matchRepo,
		writer:    writer,
		logger:    logger,
		now:       time.Now,
	}
}

// Group filters the list at in to English matches, buckets them by league
// and writes the grouped document to out.
func (s *EnglishMatchService) Group(ctx context.Context, in, out string) (EnglishMatchesDocument, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnglishMatchService.Group")
	defer span.End()

	in, out = strings.TrimSpace(in), strings.TrimSpace(out)
	if in == "" || out == "" {
		return EnglishMatchesDocument{}, fmt.Errorf("%w: input and output paths are required", ErrInvalidInput)
	}

	list, err := s.matchRepo.LoadList(ctx, in)
	if err != nil {
		return EnglishMatchesDocument{}, fmt.Errorf("load matches: %w", err)
	}

	doc := GroupEnglishMatches(list.Matches, s.now())
	if err := s.writer.WriteDocument(ctx, out, doc); err != nil {
		return EnglishMatchesDocument{}, fmt.Errorf("write english matches: %w", err)
	}

	s.logger.InfoContext(ctx, "english matches written",
		"path", out,
		"matches", doc.TotalMatches,
		"leagues", len(doc.Leagues),
	)
	return doc, nil
}

// GroupEnglishMatches builds the grouped document without touching disk.
func GroupEnglishMatches(matches []match.Match, generatedAt time.Time) EnglishMatchesDocument {
	doc := EnglishMatchesDocument{
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		Leagues:     make(map[string][]match.Match),
		Summary:     EnglishSummary{Leagues: []LeagueCount{}},
	}

	for _, m := range matches {
		if !m.IsEnglish() {
			continue
		}
		doc.Leagues[m.League] = append(doc.Leagues[m.League], m)
		doc.TotalMatches++

		tier, ok := match.ClassifyTier(m.League)
		if !ok {
			continue
		}
		switch tier {
		case match.TierTop:
			doc.Summary.Tiers.TopTier++
		case match.TierSecond:
			doc.Summary.Tiers.SecondTier++
		case match.TierLowerLeagues:
			doc.Summary.Tiers.LowerLeagues++
		case match.TierNonLeague:
			doc.Summary.Tiers.NonLeague++
		}
	}

	for league, items := range doc.Leagues {
		doc.Summary.Leagues = append(doc.Summary.Leagues, LeagueCount{League: league, Matches: len(items)})
	}
	sort.Slice(doc.Summary.Leagues, func(i, j int) bool {
		a, b := doc.Summary.Leagues[i], doc.Summary.Leagues[j]
		if a.Matches != b.Matches {
			return a.Matches > b.Matches
		}
		return a.League < b.League
	})

	return doc
}
