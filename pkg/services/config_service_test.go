package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/pkg/crypto"
	"github.com/talan-labs/cardtriage/test/util"
)

func newConfigService(t *testing.T) (*ConfigService, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cipher, err := crypto.NewCipher("test-secret")
	require.NoError(t, err)
	return NewConfigService(client, cipher), client
}

func validConfigData() map[string]any {
	return map[string]any{
		ConfigKeyBoardID:   "board-1",
		ConfigKeyBoardName: "Support",
		ConfigKeyListID:    "list-1",
		ConfigKeyListName:  "Backlog",
		ConfigKeyToken:     "board-token",
	}
}

func TestConfigCreateEncryptsToken(t *testing.T) {
	svc, _ := newConfigService(t)
	ctx := context.Background()

	cfg, err := svc.Create(ctx, validConfigData())
	require.NoError(t, err)

	stored, _ := cfg.Data[ConfigKeyToken].(string)
	assert.NotEmpty(t, stored)
	assert.NotEqual(t, "board-token", stored, "token must not be stored in plaintext")

	token, err := svc.DecryptedToken(cfg)
	require.NoError(t, err)
	assert.Equal(t, "board-token", token)
}

func TestConfigCreateValidation(t *testing.T) {
	svc, _ := newConfigService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		data  map[string]any
		field string
	}{
		{name: "nil payload", data: nil, field: "data"},
		{name: "missing board id", data: map[string]any{ConfigKeyListID: "l"}, field: ConfigKeyBoardID},
		{name: "missing list id", data: map[string]any{ConfigKeyBoardID: "b"}, field: ConfigKeyListID},
		{name: "empty board id", data: map[string]any{ConfigKeyBoardID: "", ConfigKeyListID: "l"}, field: ConfigKeyBoardID},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.data)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestConfigUpdateKeepsTokenWhenOmitted(t *testing.T) {
	svc, _ := newConfigService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validConfigData())
	require.NoError(t, err)

	data := validConfigData()
	delete(data, ConfigKeyToken)
	data[ConfigKeyListName] = "Triage"

	updated, err := svc.Update(ctx, created.ID, data)
	require.NoError(t, err)

	assert.Equal(t, "Triage", updated.Data[ConfigKeyListName])
	token, err := svc.DecryptedToken(updated)
	require.NoError(t, err)
	assert.Equal(t, "board-token", token, "omitted token keeps the stored one")
}

func TestConfigUpdateReplacesToken(t *testing.T) {
	svc, _ := newConfigService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validConfigData())
	require.NoError(t, err)

	data := validConfigData()
	data[ConfigKeyToken] = "rotated-token"
	updated, err := svc.Update(ctx, created.ID, data)
	require.NoError(t, err)

	token, err := svc.DecryptedToken(updated)
	require.NoError(t, err)
	assert.Equal(t, "rotated-token", token)
}

func TestConfigUpdateNotFound(t *testing.T) {
	svc, _ := newConfigService(t)
	_, err := svc.Update(context.Background(), 424242, validConfigData())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfigSetTargetList(t *testing.T) {
	svc, _ := newConfigService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validConfigData())
	require.NoError(t, err)

	updated, err := svc.SetTargetList(ctx, created.ID, "list-critical", "Critiques")
	require.NoError(t, err)

	listID, listName := TargetList(updated)
	assert.Equal(t, "list-critical", listID)
	assert.Equal(t, "Critiques", listName)

	// Token survives the target-list update untouched.
	token, err := svc.DecryptedToken(updated)
	require.NoError(t, err)
	assert.Equal(t, "board-token", token)

	_, err = svc.SetTargetList(ctx, created.ID, "", "")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestConfigActiveForPicksNewest(t *testing.T) {
	svc, _ := newConfigService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validConfigData())
	require.NoError(t, err)

	second, err := svc.Create(ctx, validConfigData())
	require.NoError(t, err)

	active, err := svc.ActiveFor(ctx, "board-1", "list-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
	assert.NotEqual(t, first.ID, active.ID)

	_, err = svc.ActiveFor(ctx, "board-1", "other-list")
	assert.ErrorIs(t, err, ErrNotFound)

	byBoard, err := svc.ActiveForBoard(ctx, "board-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, byBoard.ID)

	_, err = svc.ActiveForBoard(ctx, "board-x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfigList(t *testing.T) {
	svc, _ := newConfigService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validConfigData())
	require.NoError(t, err)
	second := validConfigData()
	second[ConfigKeyBoardID] = "board-2"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	configs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 2)
}

func TestCanonicalData(t *testing.T) {
	data := map[string]any{
		ConfigKeyListID:  "list-1",
		ConfigKeyBoardID: "board-1",
		ConfigKeyToken:   "secret",
	}
	canonical, err := CanonicalData(data)
	require.NoError(t, err)
	assert.Equal(t, `{"board_id":"board-1","list_id":"list-1"}`, canonical, "keys sorted, token excluded")

	// Same payload with a different token serializes identically.
	data[ConfigKeyToken] = "rotated"
	again, err := CanonicalData(data)
	require.NoError(t, err)
	assert.Equal(t, canonical, again)

	empty, err := CanonicalData(map[string]any{ConfigKeyToken: "only-a-token"})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMasked(t *testing.T) {
	data := validConfigData()
	masked := Masked(data)
	assert.Equal(t, "***", masked[ConfigKeyToken])
	assert.Equal(t, "board-token", data[ConfigKeyToken], "original payload untouched")

	noToken := Masked(map[string]any{ConfigKeyBoardID: "b"})
	_, ok := noToken[ConfigKeyToken]
	assert.False(t, ok)
}
