package localize

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// BunStore persists translations using a Bun-backed database.
type BunStore struct {
	db *bun.DB
}

var _ TranslationStore = (*BunStore)(nil)

// NewBunStore constructs a Bun-backed translation store.
func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{db: db}
}

// CreateSchema creates the translations table when missing.
func (s *BunStore) CreateSchema(ctx context.Context) error {
	if s.db == nil {
		return errors.New("localize: bun store requires a database")
	}
	_, err := s.db.NewCreateTable().
		Model((*translationRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// LoadBundle returns every active row for the pair.
func (s *BunStore) LoadBundle(ctx context.Context, languageCode, marketCode string) ([]TranslationValue, error) {
	if s.db == nil {
		return nil, errors.New("localize: bun store requires a database")
	}

	var records []translationRecord
	err := s.db.NewSelect().
		Model(&records).
		Where("language = ?", normalizeLanguageCode(languageCode)).
		Where("market = ?", normalizeMarketCode(marketCode)).
		Where("is_active = ?", true).
		Order("key ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	values := make([]TranslationValue, 0, len(records))
	for i := range records {
		value, err := recordToValue(&records[i])
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// Upsert writes a single row keyed (key, language, market), replacing any
// existing value for the key.
func (s *BunStore) Upsert(ctx context.Context, languageCode, marketCode string, value TranslationValue) error {
	if s.db == nil {
		return errors.New("localize: bun store requires a database")
	}

	language := normalizeLanguageCode(languageCode)
	market := normalizeMarketCode(marketCode)

	var existing translationRecord
	err := s.db.NewSelect().
		Model(&existing).
		Where("key = ?", value.Key).
		Where("language = ?", language).
		Where("market = ?", market).
		Scan(ctx)
	created := false
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			created = true
		} else {
			return err
		}
	}

	record, err := recordFromValue(language, market, value)
	if err != nil {
		return err
	}
	record.UpdatedAt = time.Now().UTC()

	if created {
		_, err = s.db.NewInsert().Model(&record).Exec(ctx)
		return err
	}

	record.ID = existing.ID
	_, err = s.db.NewUpdate().
		Model(&record).
		Column("value", "context", "gender", "plural_category", "variables", "is_active", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}

// Delete removes the row for the key, reporting whether it existed.
func (s *BunStore) Delete(ctx context.Context, languageCode, marketCode, key string) (bool, error) {
	if s.db == nil {
		return false, errors.New("localize: bun store requires a database")
	}

	var existing translationRecord
	err := s.db.NewSelect().
		Model(&existing).
		Where("key = ?", key).
		Where("language = ?", normalizeLanguageCode(languageCode)).
		Where("market = ?", normalizeMarketCode(marketCode)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if _, err := s.db.NewDelete().Model(&existing).WherePK().Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}

type translationRecord struct {
	bun.BaseModel `bun:"table:translations"`

	ID             int64     `bun:"id,pk,autoincrement"`
	Key            string    `bun:"key,notnull"`
	Language       string    `bun:"language,notnull"`
	Market         string    `bun:"market,notnull"`
	Value          string    `bun:"value,notnull"`
	Context        string    `bun:"context"`
	Gender         string    `bun:"gender"`
	PluralCategory string    `bun:"plural_category"`
	Variables      []byte    `bun:"variables"`
	IsActive       bool      `bun:"is_active"`
	UpdatedAt      time.Time `bun:"updated_at"`
}

func recordFromValue(language, market string, value TranslationValue) (translationRecord, error) {
	record := translationRecord{
		Key:            value.Key,
		Language:       language,
		Market:         market,
		Value:          value.Value,
		Context:        value.Context,
		Gender:         value.Gender,
		PluralCategory: string(value.PluralCategory),
		IsActive:       true,
	}

	if len(value.Variables) > 0 {
		payload, err := json.Marshal(value.Variables)
		if err != nil {
			return translationRecord{}, err
		}
		record.Variables = payload
	}

	return record, nil
}

func recordToValue(record *translationRecord) (TranslationValue, error) {
	value := TranslationValue{
		Key:            record.Key,
		Value:          record.Value,
		Context:        record.Context,
		Gender:         record.Gender,
		PluralCategory: PluralCategory(record.PluralCategory),
	}

	if len(record.Variables) > 0 {
		variables := make(map[string]string)
		if err := json.Unmarshal(record.Variables, &variables); err != nil {
			return TranslationValue{}, err
		}
		value.Variables = variables
	}

	return value, nil
}
