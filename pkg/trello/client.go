// Package trello is a typed client for the Trello-style board REST API.
// Every call carries the service API key plus a per-board token; non-2xx
// responses surface as *APIError so callers can branch on status.
package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/talan-labs/cardtriage/pkg/config"
	"github.com/talan-labs/cardtriage/pkg/models"
)

// DefaultBaseURL is the public Trello REST endpoint.
const DefaultBaseURL = "https://api.trello.com/1"

// CommentPrefix marks every comment the service writes so users can tell
// automated feedback from human discussion.
const CommentPrefix = "[TALAN AGENT 🤖] "

// PriorityLabelPrefix is shared by the three labels the service manages.
const PriorityLabelPrefix = "Priority - "

var priorityLabelColors = map[string]string{
	models.CriticalityHigh:   "red",
	models.CriticalityMedium: "orange",
	models.CriticalityLow:    "green",
}

// APIError is a non-2xx board API response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("board API returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Client talks to one board platform. Tokens are per call because each board
// subscription can carry its own token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a board API client. baseURL may be empty for the public
// endpoint; tests point it at a local server.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: config.BoardAPITimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// rawCard is the board API card representation.
type rawCard struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Desc    string             `json:"desc"`
	Due     *string            `json:"due"`
	URL     string             `json:"url"`
	BoardID string             `json:"idBoard"`
	Labels  []models.CardLabel `json:"labels"`
	Members []rawMember        `json:"members"`
}

type rawMember struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

type rawLabel struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ListCards fetches all cards of a list, normalized for analysis.
func (c *Client) ListCards(ctx context.Context, listID, token string) ([]models.CardPayload, error) {
	params := url.Values{
		"fields":        {"id,name,desc,due,url,dateLastActivity"},
		"members":       {"true"},
		"member_fields": {"id,fullName,username"},
		"labels":        {"true"},
	}

	var cards []rawCard
	if err := c.getJSON(ctx, token, fmt.Sprintf("/lists/%s/cards", listID), params, &cards); err != nil {
		return nil, fmt.Errorf("list cards of %s: %w", listID, err)
	}

	payloads := make([]models.CardPayload, 0, len(cards))
	for _, card := range cards {
		payloads = append(payloads, card.normalize())
	}
	return payloads, nil
}

// GetCard fetches one card, normalized for analysis.
func (c *Client) GetCard(ctx context.Context, cardID, token string) (models.CardPayload, error) {
	params := url.Values{
		"fields":        {"id,name,desc,due,url,idBoard"},
		"members":       {"true"},
		"member_fields": {"id,fullName,username"},
	}

	var card rawCard
	if err := c.getJSON(ctx, token, fmt.Sprintf("/cards/%s", cardID), params, &card); err != nil {
		return models.CardPayload{}, fmt.Errorf("get card %s: %w", cardID, err)
	}
	return card.normalize(), nil
}

// EnsurePriorityLabel finds the board's priority label for a level, creating
// it when missing, and returns its id.
func (c *Client) EnsurePriorityLabel(ctx context.Context, boardID, level, token string) (string, error) {
	wanted := PriorityLabelName(level)
	if wanted == "" {
		return "", fmt.Errorf("no priority label for criticality %q", level)
	}

	var labels []rawLabel
	if err := c.getJSON(ctx, token, fmt.Sprintf("/boards/%s/labels", boardID), nil, &labels); err != nil {
		return "", fmt.Errorf("list board labels: %w", err)
	}
	for _, label := range labels {
		if label.Name == wanted {
			return label.ID, nil
		}
	}

	color, ok := priorityLabelColors[strings.ToUpper(level)]
	if !ok {
		color = "gray"
	}
	params := url.Values{
		"name":    {wanted},
		"color":   {color},
		"idBoard": {boardID},
	}
	var created rawLabel
	if err := c.doJSON(ctx, http.MethodPost, token, "/labels", params, &created); err != nil {
		return "", fmt.Errorf("create priority label: %w", err)
	}
	return created.ID, nil
}

// ApplyPriorityLabel sets the card's priority label to the given level,
// removing other priority labels first. Reapplying the same level is a no-op.
func (c *Client) ApplyPriorityLabel(ctx context.Context, cardID, boardID, level, token string) error {
	wanted := PriorityLabelName(level)
	if wanted == "" {
		return fmt.Errorf("no priority label for criticality %q", level)
	}

	var current []rawLabel
	if err := c.getJSON(ctx, token, fmt.Sprintf("/cards/%s/labels", cardID), nil, &current); err != nil {
		return fmt.Errorf("list card labels: %w", err)
	}

	alreadySet := false
	for _, label := range current {
		if !strings.HasPrefix(label.Name, PriorityLabelPrefix) {
			continue
		}
		if label.Name == wanted {
			alreadySet = true
			continue
		}
		if err := c.doJSON(ctx, http.MethodDelete, token, fmt.Sprintf("/cards/%s/idLabels/%s", cardID, label.ID), nil, nil); err != nil {
			return fmt.Errorf("remove stale priority label: %w", err)
		}
	}
	if alreadySet {
		return nil
	}

	labelID, err := c.EnsurePriorityLabel(ctx, boardID, level, token)
	if err != nil {
		return err
	}
	params := url.Values{"value": {labelID}}
	if err := c.doJSON(ctx, http.MethodPost, token, fmt.Sprintf("/cards/%s/idLabels", cardID), params, nil); err != nil {
		return fmt.Errorf("attach priority label: %w", err)
	}
	return nil
}

// AddComment posts a comment on a card, prefixed with the agent marker. The
// prefix is never doubled.
func (c *Client) AddComment(ctx context.Context, cardID, text, token string) error {
	if !strings.HasPrefix(text, CommentPrefix) {
		text = CommentPrefix + text
	}

	endpoint, err := c.buildURL(fmt.Sprintf("/cards/%s/actions/comments", cardID), token, nil)
	if err != nil {
		return err
	}

	form := url.Values{"text": {text}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post comment: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("post comment: %w", err)
	}
	return nil
}

// MoveCard moves a card to another list.
func (c *Client) MoveCard(ctx context.Context, cardID, listID, token string) error {
	params := url.Values{"value": {listID}}
	if err := c.doJSON(ctx, http.MethodPut, token, fmt.Sprintf("/cards/%s/idList", cardID), params, nil); err != nil {
		return fmt.Errorf("move card %s: %w", cardID, err)
	}
	return nil
}

// PriorityLabelName maps a criticality level to its board label, or "" for
// levels that carry no label.
func PriorityLabelName(level string) string {
	switch strings.ToUpper(level) {
	case models.CriticalityHigh:
		return PriorityLabelPrefix + "High"
	case models.CriticalityMedium:
		return PriorityLabelPrefix + "Medium"
	case models.CriticalityLow:
		return PriorityLabelPrefix + "Low"
	default:
		return ""
	}
}

func (card rawCard) normalize() models.CardPayload {
	payload := models.CardPayload{
		ID:      card.ID,
		Name:    card.Name,
		Desc:    card.Desc,
		URL:     card.URL,
		BoardID: card.BoardID,
		Labels:  card.Labels,
	}
	if card.Due != nil {
		payload.Due = *card.Due
	}
	for _, m := range card.Members {
		payload.Members = append(payload.Members, models.CardMember{
			ID:       m.ID,
			FullName: m.FullName,
			Username: m.Username,
		})
	}
	return payload
}

func (c *Client) getJSON(ctx context.Context, token, path string, params url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, token, path, params, out)
}

func (c *Client) doJSON(ctx context.Context, method, token, path string, params url.Values, out any) error {
	endpoint, err := c.buildURL(path, token, params)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call board API: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode board API response: %w", err)
	}
	return nil
}

func (c *Client) buildURL(path, token string, params url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("build board API URL: %w", err)
	}
	query := u.Query()
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set("key", c.apiKey)
	query.Set("token", token)
	u.RawQuery = query.Encode()
	return u.String(), nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
