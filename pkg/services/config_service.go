package services

import (
	"context"
	"encoding/json"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/ent/boardconfig"
	"github.com/talan-labs/cardtriage/ent/predicate"
	"github.com/talan-labs/cardtriage/pkg/crypto"
)

// Config payload keys. The payload is free-form JSON; these are the keys the
// service reads and writes.
const (
	ConfigKeyBoardID        = "board_id"
	ConfigKeyBoardName      = "board_name"
	ConfigKeyListID         = "list_id"
	ConfigKeyListName       = "list_name"
	ConfigKeyToken          = "token"
	ConfigKeyTargetListID   = "target_list_id"
	ConfigKeyTargetListName = "target_list_name"
)

// ConfigService manages board subscription configs. Board tokens are
// encrypted before they reach the database.
type ConfigService struct {
	client *ent.Client
	cipher *crypto.Cipher
}

// NewConfigService creates a new ConfigService
func NewConfigService(client *ent.Client, cipher *crypto.Cipher) *ConfigService {
	return &ConfigService{client: client, cipher: cipher}
}

// Create stores a new board subscription. board_id and list_id are required.
func (s *ConfigService) Create(ctx context.Context, data map[string]any) (*ent.BoardConfig, error) {
	if err := validateConfigData(data); err != nil {
		return nil, err
	}

	data, err := s.sealToken(data)
	if err != nil {
		return nil, err
	}

	cfg, err := s.client.BoardConfig.Create().
		SetData(data).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create config: %w", err)
	}
	return cfg, nil
}

// Update replaces the payload of an existing config. An omitted token keeps
// the stored one.
func (s *ConfigService) Update(ctx context.Context, id int, data map[string]any) (*ent.BoardConfig, error) {
	if err := validateConfigData(data); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, ok := data[ConfigKeyToken]; !ok {
		if prev, ok := existing.Data[ConfigKeyToken]; ok {
			data[ConfigKeyToken] = prev
		}
	} else {
		data, err = s.sealToken(data)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := existing.Update().
		SetData(data).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update config: %w", err)
	}
	return cfg, nil
}

// Get returns one config by id.
func (s *ConfigService) Get(ctx context.Context, id int) (*ent.BoardConfig, error) {
	cfg, err := s.client.BoardConfig.Query().
		Where(boardconfig.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	return cfg, nil
}

// List returns all configs, newest first.
func (s *ConfigService) List(ctx context.Context) ([]*ent.BoardConfig, error) {
	configs, err := s.client.BoardConfig.Query().
		Order(ent.Desc(boardconfig.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}
	return configs, nil
}

// SetTargetList updates the list critical cards are moved to.
func (s *ConfigService) SetTargetList(ctx context.Context, id int, targetListID, targetListName string) (*ent.BoardConfig, error) {
	if targetListID == "" {
		return nil, NewValidationError("target_list_id", "required")
	}

	cfg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	data := cloneData(cfg.Data)
	data[ConfigKeyTargetListID] = targetListID
	data[ConfigKeyTargetListName] = targetListName

	updated, err := cfg.Update().
		SetData(data).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set target list: %w", err)
	}
	return updated, nil
}

// ActiveFor returns the newest config covering a (board, list) pair, or
// ErrNotFound when the pair is not subscribed.
func (s *ConfigService) ActiveFor(ctx context.Context, boardID, listID string) (*ent.BoardConfig, error) {
	cfg, err := s.client.BoardConfig.Query().
		Where(
			predicate.BoardConfig(func(s *sql.Selector) {
				s.Where(sqljson.ValueEQ(boardconfig.FieldData, boardID, sqljson.Path(ConfigKeyBoardID)))
			}),
			predicate.BoardConfig(func(s *sql.Selector) {
				s.Where(sqljson.ValueEQ(boardconfig.FieldData, listID, sqljson.Path(ConfigKeyListID)))
			}),
		).
		Order(ent.Desc(boardconfig.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve active config: %w", err)
	}
	return cfg, nil
}

// ActiveForBoard returns the newest config covering any list of a board.
func (s *ConfigService) ActiveForBoard(ctx context.Context, boardID string) (*ent.BoardConfig, error) {
	cfg, err := s.client.BoardConfig.Query().
		Where(predicate.BoardConfig(func(s *sql.Selector) {
			s.Where(sqljson.ValueEQ(boardconfig.FieldData, boardID, sqljson.Path(ConfigKeyBoardID)))
		})).
		Order(ent.Desc(boardconfig.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve board config: %w", err)
	}
	return cfg, nil
}

// DecryptedToken returns the plaintext board token of a config, or "" when
// the config carries none.
func (s *ConfigService) DecryptedToken(cfg *ent.BoardConfig) (string, error) {
	raw, ok := cfg.Data[ConfigKeyToken].(string)
	if !ok || raw == "" {
		return "", nil
	}
	token, err := s.cipher.Decrypt(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt board token: %w", err)
	}
	return token, nil
}

// CanonicalData serializes a config payload deterministically for cache
// comparison. The token is excluded: it is secret material and its ciphertext
// changes on every write.
func CanonicalData(data map[string]any) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	trimmed := make(map[string]any, len(data))
	for k, v := range data {
		if k == ConfigKeyToken {
			continue
		}
		trimmed[k] = v
	}
	if len(trimmed) == 0 {
		return "", nil
	}
	// encoding/json writes map keys in sorted order, which makes the
	// serialization canonical.
	out, err := json.Marshal(trimmed)
	if err != nil {
		return "", fmt.Errorf("failed to serialize config payload: %w", err)
	}
	return string(out), nil
}

// TargetList reads the configured move target, if any.
func TargetList(cfg *ent.BoardConfig) (listID, listName string) {
	if cfg == nil {
		return "", ""
	}
	listID, _ = cfg.Data[ConfigKeyTargetListID].(string)
	listName, _ = cfg.Data[ConfigKeyTargetListName].(string)
	return listID, listName
}

// Masked returns a copy of the payload safe for API responses: the token is
// replaced with a placeholder.
func Masked(data map[string]any) map[string]any {
	out := cloneData(data)
	if _, ok := out[ConfigKeyToken]; ok {
		out[ConfigKeyToken] = "***"
	}
	return out
}

func (s *ConfigService) sealToken(data map[string]any) (map[string]any, error) {
	token, ok := data[ConfigKeyToken].(string)
	if !ok || token == "" {
		return data, nil
	}
	sealed, err := s.cipher.Encrypt(token)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt board token: %w", err)
	}
	out := cloneData(data)
	out[ConfigKeyToken] = sealed
	return out, nil
}

func validateConfigData(data map[string]any) error {
	if data == nil {
		return NewValidationError("data", "required")
	}
	if v, ok := data[ConfigKeyBoardID].(string); !ok || v == "" {
		return NewValidationError(ConfigKeyBoardID, "required")
	}
	if v, ok := data[ConfigKeyListID].(string); !ok || v == "" {
		return NewValidationError(ConfigKeyListID, "required")
	}
	return nil
}

func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
