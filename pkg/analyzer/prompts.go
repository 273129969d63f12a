package analyzer

import (
	"fmt"
	"strings"
	"time"

	"github.com/talan-labs/cardtriage/pkg/models"
)

const sectionRule = "━━━━━━━━━━━━━━━━━━"

// cardPromptTemplate is the single-card assessment prompt. Placeholders:
// application context, similar-cards history, title, description, labels,
// due date, list name, members, previous-analysis section (empty for a
// first analysis).
const cardPromptTemplate = `
You are a Senior Product Owner and certified Risk Analyst with over 15 years of experience in agile SaaS environments. Your mission is to assess the **criticality** of a Trello card in a **healthcare-grade application**. Your assessment must be based on **business impact, user risk, and technical urgency**, considering all available data.

━━━━━━━━━━━━━━━━━━
 APPLICATION CONTEXT:
%s

 SIMILAR CARDS HISTORY:
%s

 CARD TO ANALYZE:
- **Title**: %s
- **Description**: %s
- **Labels**: %s
- **Due Date**: %s
- **List Name**: %s
- **Members**: %s
%s
━━━━━━━━━━━━━━━━━━
 STEP 1: CONTEXTUAL RELEVANCE CHECK
If the card is **completely unrelated** to the above application context (no logical or functional connection), respond with **exactly**:
> OUT_OF_CONTEXT

━━━━━━━━━━━━━━━━━━
 STEP 2: CRITICALITY ASSESSMENT
Evaluate how this card impacts the system's operation, user safety, business workflow, or service reliability.
Every task must receive a criticality level. **There are no non-critical tasks.**

CRITICALITY LEVELS:
-  **HIGH**: Major disruption to production, sensitive data exposure, decision-critical issues, or direct patient/user harm
-  **MEDIUM**: Significant user or business impact, degraded experience, or operational inefficiencies
-  **LOW**: Minor improvements, cosmetic changes, documentation, or low-risk refactors

━━━━━━━━━━━━━━━━━━
 DECISION LOGIC:
1. Use the application context and card content to infer scope and risk.
2. If necessary, extrapolate the real-world impact.
3. Assign a level: HIGH, MEDIUM, or LOW.
4. Provide a **clear and direct justification** explaining why this level was chosen.

━━━━━━━━━━━━━━━━━━
 FORMAT YOUR RESPONSE EXACTLY LIKE THIS:
Criticality Level: HIGH
Justification: [One short paragraph, precise, clear, professional. Mention app context, card content, and impact.]

━━━━━━━━━━━━━━━━━━
Now assess this card.
`

// batchPromptTemplate assesses several cards in one call and demands a raw
// JSON array back. Placeholders: application context, card listing.
const batchPromptTemplate = `
You are a Senior Product Owner and certified Risk Analyst with over 15 years of experience in agile SaaS environments. Your mission is to assess the **criticality** of each Trello card below in a **healthcare-grade application**. Your assessment must be based on **business impact, user risk, and technical urgency**, considering all available data.

━━━━━━━━━━━━━━━━━━
 APPLICATION CONTEXT:
%s

━━━━━━━━━━━━━━━━━━
 CARDS TO ANALYZE:
%s

━━━━━━━━━━━━━━━━━━
 CRITICALITY LEVELS:
-  **HIGH**: Major disruption to production, sensitive data exposure, decision-critical issues, or direct patient/user harm
-  **MEDIUM**: Significant user or business impact, degraded experience, or operational inefficiencies
-  **LOW**: Minor improvements, cosmetic changes, documentation, or low-risk refactors

━━━━━━━━━━━━━━━━━━
 RULES:
1. Use the application context and each card's content to infer scope and risk.
2. Every card must receive a criticality level: HIGH, MEDIUM, or LOW.
3. If a card is **completely unrelated** to the application context, use OUT_OF_CONTEXT as its criticality_level.
4. Provide a clear and direct justification per card.

━━━━━━━━━━━━━━━━━━
 FORMAT YOUR RESPONSE EXACTLY LIKE THIS — a raw JSON array, no markdown fences, no commentary:
[{"id": "<card id>", "criticality_level": "HIGH", "justification": "<one short paragraph>"}]

Return exactly one object per card, using the exact ids given above.
`

func buildCardPrompt(appContext, similarCards string, card models.CardPayload, previous *models.PreviousAnalysis) string {
	return fmt.Sprintf(cardPromptTemplate,
		appContext,
		similarCards,
		orFallback(card.Name, "N/A"),
		orFallback(card.Desc, "No description"),
		joinNames(labelNames(card.Labels), "None"),
		orFallback(card.Due, "None"),
		orFallback(card.ListName, "N/A"),
		joinNames(memberNames(card.Members), "None"),
		previousSection(previous),
	)
}

func buildBatchPrompt(appContext string, cards []models.CardPayload) string {
	blocks := make([]string, 0, len(cards))
	for i, card := range cards {
		blocks = append(blocks, fmt.Sprintf(`CARD %d:
- **Id**: %s
- **Title**: %s
- **Description**: %s
- **Labels**: %s
- **Due Date**: %s
- **List Name**: %s`,
			i+1,
			card.ID,
			orFallback(card.Name, "N/A"),
			orFallback(card.Desc, "No description"),
			joinNames(labelNames(card.Labels), "None"),
			orFallback(card.Due, "None"),
			orFallback(card.ListName, "N/A"),
		))
	}
	return fmt.Sprintf(batchPromptTemplate, appContext, strings.Join(blocks, "\n\n"))
}

// previousSection renders the reanalysis addendum, or nothing for a first
// analysis.
func previousSection(previous *models.PreviousAnalysis) string {
	if previous == nil {
		return ""
	}
	return fmt.Sprintf(`
%s
 PREVIOUS ANALYSIS:
- **Criticality Level**: %s
- **Justification**: %s
- **Analyzed At**: %s
Re-assess the card against the current context. Keep the justification short and state whether the level changed since this previous analysis.
`,
		sectionRule,
		strings.ToUpper(previous.CriticalityLevel),
		orFallback(previous.Justification, "N/A"),
		previous.AnalyzedAt.Format(time.RFC3339),
	)
}

func labelNames(labels []models.CardLabel) []string {
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.Name != "" {
			names = append(names, l.Name)
		}
	}
	return names
}

func memberNames(members []models.CardMember) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		if m.FullName != "" {
			names = append(names, m.FullName)
		}
	}
	return names
}

func joinNames(names []string, fallback string) string {
	if len(names) == 0 {
		return fallback
	}
	return strings.Join(names, ", ")
}

func orFallback(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
