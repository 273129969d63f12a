// Package analyzer turns board cards into criticality verdicts by prompting
// an LLM grounded on the uploaded context documents.
package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/talan-labs/cardtriage/pkg/grounding"
	"github.com/talan-labs/cardtriage/pkg/llm"
	"github.com/talan-labs/cardtriage/pkg/models"
)

const (
	// similarCardsLimit bounds the similarity lookup feeding the prompt.
	similarCardsLimit = 3

	noSimilarCards = "Aucune card similaire trouvée dans l'historique."

	defaultLowJustification   = "Criticité assignée par défaut (LOW) - Veuillez uploader un document de description pour une analyse plus précise"
	outOfContextJustification = "Désolé, je peux vous répondre que selon le contexte de votre document uploadé."
)

// ContextSource supplies the grounding material for prompts and records
// finished analyses. *grounding.Store satisfies it.
type ContextSource interface {
	ReadContext(ctx context.Context) (string, error)
	SimilarCards(ctx context.Context, query string, k int) []grounding.CardTrace
	SaveAnalysisTrace(ctx context.Context, card models.CardPayload, criticality string)
}

// Analyzer assesses card criticality with an LLM.
type Analyzer struct {
	generator llm.Generator
	docs      ContextSource
}

// New creates an Analyzer backed by the given generator and grounding source.
func New(generator llm.Generator, docs ContextSource) *Analyzer {
	return &Analyzer{generator: generator, docs: docs}
}

// AnalyzeCard assesses a single card. LLM failures degrade to a LOW verdict
// with success=false; an empty grounding corpus short-circuits to a default
// LOW verdict without calling the LLM.
func (a *Analyzer) AnalyzeCard(ctx context.Context, card models.CardPayload) models.CardVerdict {
	return a.analyzeSingle(ctx, card, nil)
}

// Reanalyze assesses a card again, feeding the previous verdict into the
// prompt so the model can flag what changed.
func (a *Analyzer) Reanalyze(ctx context.Context, card models.CardPayload, previous *models.PreviousAnalysis) models.CardVerdict {
	return a.analyzeSingle(ctx, card, previous)
}

func (a *Analyzer) analyzeSingle(ctx context.Context, card models.CardPayload, previous *models.PreviousAnalysis) models.CardVerdict {
	appContext, err := a.docs.ReadContext(ctx)
	if err != nil {
		if errors.Is(err, grounding.ErrNoDocuments) {
			return defaultVerdict(card)
		}
		slog.Error("Failed to load application context", "card_id", card.ID, "error", err)
		return errorVerdict(card, err)
	}

	prompt := buildCardPrompt(appContext, a.similarCardsSection(ctx, card), card, previous)
	response, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		slog.Error("Card analysis failed", "card_id", card.ID, "error", err)
		return errorVerdict(card, err)
	}

	verdict := a.parseVerdict(card, response)
	if verdict.Success && models.IsActionable(verdict.CriticalityLevel) {
		a.docs.SaveAnalysisTrace(ctx, card, verdict.CriticalityLevel)
	}
	return verdict
}

// AnalyzeBatch assesses a group of cards in one LLM call and returns verdicts
// keyed by card id. A card missing from the map should be retried through
// AnalyzeCard. A non-nil error means the whole batch response was unusable
// and every card needs the single-card path.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, cards []models.CardPayload) (map[string]models.CardVerdict, error) {
	verdicts := make(map[string]models.CardVerdict, len(cards))
	if len(cards) == 0 {
		return verdicts, nil
	}

	appContext, err := a.docs.ReadContext(ctx)
	if err != nil {
		if errors.Is(err, grounding.ErrNoDocuments) {
			for _, card := range cards {
				verdicts[card.ID] = defaultVerdict(card)
			}
			return verdicts, nil
		}
		return nil, fmt.Errorf("load application context: %w", err)
	}

	response, err := a.generator.Generate(ctx, buildBatchPrompt(appContext, cards))
	if err != nil {
		return nil, fmt.Errorf("batch generation: %w", err)
	}

	entries, err := parseBatchResponse(response)
	if err != nil {
		slog.Warn("Unparsable batch response, rerouting to single-card analysis",
			"cards", len(cards),
			"error", err)
		return nil, err
	}

	byID := make(map[string]models.CardPayload, len(cards))
	for _, card := range cards {
		byID[card.ID] = card
	}
	for _, entry := range entries {
		card, ok := byID[entry.ID]
		if !ok {
			slog.Warn("Batch verdict for unknown card id", "card_id", entry.ID)
			continue
		}
		verdict, ok := batchVerdict(card, entry)
		if !ok {
			// Unrecognized level: leave the card out so the caller retries it.
			continue
		}
		verdicts[card.ID] = verdict
		if verdict.Success && models.IsActionable(verdict.CriticalityLevel) {
			a.docs.SaveAnalysisTrace(ctx, card, verdict.CriticalityLevel)
		}
	}
	return verdicts, nil
}

func (a *Analyzer) similarCardsSection(ctx context.Context, card models.CardPayload) string {
	query := strings.TrimSpace(card.Name + " " + card.Desc)
	traces := a.docs.SimilarCards(ctx, query, similarCardsLimit)
	if len(traces) == 0 {
		return noSimilarCards
	}
	parts := make([]string, 0, len(traces))
	for _, trace := range traces {
		parts = append(parts, trace.Content)
	}
	return strings.Join(parts, "\n\n")
}

// parseVerdict extracts a level from a free-form response. OUT_OF_CONTEXT
// anywhere wins; otherwise HIGH, then MEDIUM, then LOW; an unrecognizable
// response defaults to LOW.
func (a *Analyzer) parseVerdict(card models.CardPayload, response string) models.CardVerdict {
	text := strings.ToUpper(strings.TrimSpace(response))

	if strings.Contains(text, models.CriticalityOutOfContext) {
		return models.CardVerdict{
			CardID:           card.ID,
			CardName:         card.Name,
			Success:          true,
			CriticalityLevel: models.CriticalityOutOfContext,
			Justification:    outOfContextJustification,
		}
	}

	level := models.CriticalityLow
	switch {
	case strings.Contains(text, models.CriticalityHigh):
		level = models.CriticalityHigh
	case strings.Contains(text, models.CriticalityMedium):
		level = models.CriticalityMedium
	case strings.Contains(text, models.CriticalityLow):
		level = models.CriticalityLow
	default:
		slog.Warn("No criticality level detected in response", "card_id", card.ID)
	}

	return models.CardVerdict{
		CardID:           card.ID,
		CardName:         card.Name,
		Success:          true,
		CriticalityLevel: level,
		Justification:    text,
	}
}

// parseBatchResponse decodes the JSON array out of a batch response,
// tolerating fences or commentary around it.
func parseBatchResponse(response string) ([]models.BatchVerdict, error) {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start == -1 || end <= start {
		return nil, errors.New("no JSON array in batch response")
	}
	var entries []models.BatchVerdict
	if err := json.Unmarshal([]byte(response[start:end+1]), &entries); err != nil {
		return nil, fmt.Errorf("decode batch response: %w", err)
	}
	return entries, nil
}

func batchVerdict(card models.CardPayload, entry models.BatchVerdict) (models.CardVerdict, bool) {
	level := strings.ToUpper(strings.TrimSpace(entry.CriticalityLevel))
	switch level {
	case models.CriticalityOutOfContext:
		return models.CardVerdict{
			CardID:           card.ID,
			CardName:         card.Name,
			Success:          true,
			CriticalityLevel: level,
			Justification:    outOfContextJustification,
		}, true
	case models.CriticalityHigh, models.CriticalityMedium, models.CriticalityLow:
		return models.CardVerdict{
			CardID:           card.ID,
			CardName:         card.Name,
			Success:          true,
			CriticalityLevel: level,
			Justification:    strings.TrimSpace(entry.Justification),
		}, true
	default:
		slog.Warn("Unrecognized criticality level in batch verdict",
			"card_id", card.ID,
			"level", entry.CriticalityLevel)
		return models.CardVerdict{}, false
	}
}

func defaultVerdict(card models.CardPayload) models.CardVerdict {
	return models.CardVerdict{
		CardID:           card.ID,
		CardName:         card.Name,
		Success:          true,
		CriticalityLevel: models.CriticalityLow,
		Justification:    defaultLowJustification,
	}
}

func errorVerdict(card models.CardPayload, err error) models.CardVerdict {
	return models.CardVerdict{
		CardID:           card.ID,
		CardName:         card.Name,
		Success:          false,
		CriticalityLevel: models.CriticalityLow,
		Error:            err.Error(),
	}
}
