package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/talan-labs/cardtriage/pkg/models"
)

// boardCard is the mutable server-side card state.
type boardCard struct {
	ID      string
	Name    string
	Desc    string
	ListID  string
	BoardID string
	Labels  []models.CardLabel
}

// mockBoard is an in-memory stand-in for the board REST API. It implements
// every endpoint the trello client calls and records the mutations the
// pipeline applies, so tests can assert on board effects.
type mockBoard struct {
	mu       sync.Mutex
	cards    map[string]*boardCard
	labels   map[string][]models.CardLabel // boardID → board labels
	comments map[string][]string           // cardID → comments in arrival order
	labelSeq int

	server *httptest.Server
}

func newMockBoard(t *testing.T) *mockBoard {
	b := &mockBoard{
		cards:    make(map[string]*boardCard),
		labels:   make(map[string][]models.CardLabel),
		comments: make(map[string][]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /lists/{listId}/cards", b.listCards)
	mux.HandleFunc("GET /cards/{cardId}", b.getCard)
	mux.HandleFunc("GET /cards/{cardId}/labels", b.getCardLabels)
	mux.HandleFunc("POST /cards/{cardId}/idLabels", b.attachLabel)
	mux.HandleFunc("DELETE /cards/{cardId}/idLabels/{labelId}", b.detachLabel)
	mux.HandleFunc("POST /cards/{cardId}/actions/comments", b.addComment)
	mux.HandleFunc("PUT /cards/{cardId}/idList", b.moveCard)
	mux.HandleFunc("GET /boards/{boardId}/labels", b.listBoardLabels)
	mux.HandleFunc("POST /labels", b.createLabel)

	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" || r.URL.Query().Get("token") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, "invalid key or token")
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.server.Close)
	return b
}

// addCard seeds one card into a list.
func (b *mockBoard) addCard(boardID, listID, cardID, name, desc string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cards[cardID] = &boardCard{
		ID:      cardID,
		Name:    name,
		Desc:    desc,
		ListID:  listID,
		BoardID: boardID,
	}
}

// cardLabelNames returns the label names currently attached to a card.
func (b *mockBoard) cardLabelNames(cardID string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	card, ok := b.cards[cardID]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(card.Labels))
	for _, l := range card.Labels {
		names = append(names, l.Name)
	}
	return names
}

// cardComments returns the comments posted on a card.
func (b *mockBoard) cardComments(cardID string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.comments[cardID]...)
}

// cardListID returns the list a card currently sits in.
func (b *mockBoard) cardListID(cardID string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if card, ok := b.cards[cardID]; ok {
		return card.ListID
	}
	return ""
}

func (b *mockBoard) cardJSON(card *boardCard) map[string]any {
	return map[string]any{
		"id":      card.ID,
		"name":    card.Name,
		"desc":    card.Desc,
		"idBoard": card.BoardID,
		"labels":  card.Labels,
		"url":     "https://board.example/c/" + card.ID,
	}
}

func (b *mockBoard) listCards(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	listID := r.PathValue("listId")
	out := make([]map[string]any, 0)
	for _, card := range b.cards {
		if card.ListID == listID {
			out = append(out, b.cardJSON(card))
		}
	}
	writeJSON(w, out)
}

func (b *mockBoard) getCard(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	card, ok := b.cards[r.PathValue("cardId")]
	if !ok {
		http.Error(w, "card not found", http.StatusNotFound)
		return
	}
	writeJSON(w, b.cardJSON(card))
}

func (b *mockBoard) getCardLabels(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	card, ok := b.cards[r.PathValue("cardId")]
	if !ok {
		http.Error(w, "card not found", http.StatusNotFound)
		return
	}
	writeJSON(w, card.Labels)
}

func (b *mockBoard) listBoardLabels(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	labels := b.labels[r.PathValue("boardId")]
	if labels == nil {
		labels = []models.CardLabel{}
	}
	writeJSON(w, labels)
}

func (b *mockBoard) createLabel(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.labelSeq++
	label := models.CardLabel{
		ID:    fmt.Sprintf("label-%d", b.labelSeq),
		Name:  r.URL.Query().Get("name"),
		Color: r.URL.Query().Get("color"),
	}
	boardID := r.URL.Query().Get("idBoard")
	b.labels[boardID] = append(b.labels[boardID], label)
	writeJSON(w, label)
}

func (b *mockBoard) attachLabel(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	card, ok := b.cards[r.PathValue("cardId")]
	if !ok {
		http.Error(w, "card not found", http.StatusNotFound)
		return
	}
	labelID := r.URL.Query().Get("value")
	for _, labels := range b.labels {
		for _, label := range labels {
			if label.ID == labelID {
				card.Labels = append(card.Labels, label)
				writeJSON(w, map[string]any{})
				return
			}
		}
	}
	http.Error(w, "label not found", http.StatusNotFound)
}

func (b *mockBoard) detachLabel(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	card, ok := b.cards[r.PathValue("cardId")]
	if !ok {
		http.Error(w, "card not found", http.StatusNotFound)
		return
	}
	labelID := r.PathValue("labelId")
	kept := card.Labels[:0]
	for _, label := range card.Labels {
		if label.ID != labelID {
			kept = append(kept, label)
		}
	}
	card.Labels = kept
	writeJSON(w, map[string]any{})
}

func (b *mockBoard) addComment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	cardID := r.PathValue("cardId")
	if _, ok := b.cards[cardID]; !ok {
		http.Error(w, "card not found", http.StatusNotFound)
		return
	}
	b.comments[cardID] = append(b.comments[cardID], r.PostFormValue("text"))
	writeJSON(w, map[string]any{})
}

func (b *mockBoard) moveCard(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	card, ok := b.cards[r.PathValue("cardId")]
	if !ok {
		http.Error(w, "card not found", http.StatusNotFound)
		return
	}
	card.ListID = r.URL.Query().Get("value")
	writeJSON(w, map[string]any{})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
