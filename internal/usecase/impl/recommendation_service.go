package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"nutritrack/internal/domain/entity"
	"nutritrack/internal/domain/service"
	"nutritrack/internal/usecase"
)

const (
	maxRecommendationLength = 120

	recommendationPrompt = "You are NutriTrack, a nutrition assistant. Suggest exactly one %s food or dish that fits " +
		"the user's remaining nutrition needs for today: %.0f kcal calories, %.0fg protein, %.0fg carbs, %.0fg fat. " +
		"Reply with only the food name on a single line, without explanation."
)

// noDataReplies are answers the model gives when it has nothing to suggest.
var noDataReplies = map[string]struct{}{
	"no data available": {},
	"no recommendation": {},
	"none":              {},
	"n/a":               {},
}

// recommendationRequester implements the RecommendationRequester interface.
type recommendationRequester struct {
	generator service.TextGenerator
	logger    *slog.Logger
}

// NewRecommendationRequester is the constructor for recommendationRequester.
func NewRecommendationRequester(generator service.TextGenerator, logger *slog.Logger) usecase.RecommendationRequester {
	return &recommendationRequester{
		generator: generator,
		logger:    logger,
	}
}

// Recommend fails soft: any transport error or unusable answer yields ok=false.
func (r *recommendationRequester) Recommend(
	ctx context.Context,
	remaining entity.Nutrients,
	label entity.ReminderCategory,
) (string, bool) {
	prompt := buildRecommendationPrompt(remaining, label)

	reply, err := r.generator.GenerateText(ctx, prompt)
	if err != nil {
		r.logger.WarnContext(ctx, "Recommendation request failed",
			slog.String("label", string(label)),
			slog.Any("error", err),
		)

		return "", false
	}

	text, ok := parseRecommendation(reply)
	if !ok {
		r.logger.WarnContext(ctx, "Recommendation reply unusable",
			slog.String("label", string(label)),
			slog.Int("reply_len", len(reply)),
		)
	}

	return text, ok
}

func buildRecommendationPrompt(remaining entity.Nutrients, label entity.ReminderCategory) string {
	return fmt.Sprintf(recommendationPrompt,
		label,
		math.Round(remaining.Calories),
		math.Round(remaining.Protein),
		math.Round(remaining.Carbs),
		math.Round(remaining.Fat),
	)
}

// parseRecommendation keeps the first non-empty line, stripped of list markers, quotes and a trailing period.
func parseRecommendation(reply string) (string, bool) {
	var line string
	for _, candidate := range strings.Split(reply, "\n") {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			line = candidate
			break
		}
	}

	line = strings.TrimLeft(line, "-*•# \t")
	line = trimNumbering(line)
	line = strings.Trim(line, "\"'`*“”‘’ \t")
	line = strings.TrimRight(line, ".!")
	line = strings.TrimSpace(line)

	if line == "" || utf8.RuneCountInString(line) > maxRecommendationLength {
		return "", false
	}
	if _, isNoData := noDataReplies[strings.ToLower(line)]; isNoData {
		return "", false
	}

	return line, true
}

// trimNumbering removes an ordered-list prefix such as "1." or "2)".
func trimNumbering(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		return strings.TrimSpace(s[i+1:])
	}

	return s
}
