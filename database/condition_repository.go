package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"digital-physician-backend/models"
)

var (
	ErrConditionNotFound  = errors.New("condition not found")
	ErrDuplicateCondition = errors.New("duplicate condition id")
)

// ConditionRepository is the source of the condition reference table
type ConditionRepository interface {
	All(ctx context.Context) ([]models.Condition, error)
	GetByID(ctx context.Context, id string) (*models.Condition, error)
}

// StaticConditionRepository serves an in-process, read-only table
type StaticConditionRepository struct {
	conditions []models.Condition
	byID       map[string]int
}

// NewStaticConditionRepository serves the compiled-in table
func NewStaticConditionRepository() *StaticConditionRepository {
	repo, err := NewConditionTable(conditionTable)
	if err != nil {
		panic(fmt.Sprintf("compiled-in condition table is invalid: %v", err))
	}
	return repo
}

// NewConditionTable validates conditions and serves them in the given order
func NewConditionTable(conditions []models.Condition) (*StaticConditionRepository, error) {
	repo := &StaticConditionRepository{
		conditions: make([]models.Condition, len(conditions)),
		byID:       make(map[string]int, len(conditions)),
	}
	copy(repo.conditions, conditions)

	for i, c := range repo.conditions {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, exists := repo.byID[c.ID]; exists {
			return nil, fmt.Errorf("%s: %w", c.ID, ErrDuplicateCondition)
		}
		repo.byID[c.ID] = i
	}
	return repo, nil
}

// All returns a copy of the table in table order
func (r *StaticConditionRepository) All(ctx context.Context) ([]models.Condition, error) {
	out := make([]models.Condition, len(r.conditions))
	copy(out, r.conditions)
	return out, nil
}

func (r *StaticConditionRepository) GetByID(ctx context.Context, id string) (*models.Condition, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrConditionNotFound)
	}
	c := r.conditions[i]
	return &c, nil
}

// FindSimpleMatch returns the first condition with a keyword in lang that is
// contained in input, or that contains it. It backs the quick lookup endpoint
// and does no scoring.
func FindSimpleMatch(conditions []models.Condition, input string, lang models.Language) (*models.Condition, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil, false
	}

	for _, c := range conditions {
		for _, kw := range c.Keywords.For(lang.Display()) {
			kw = strings.ToLower(kw)
			if strings.Contains(input, kw) || strings.Contains(kw, input) {
				found := c
				return &found, true
			}
		}
	}
	return nil, false
}
