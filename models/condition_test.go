package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionValidate(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		keywords Keywords
		wantErr  error
	}{
		{name: "valid", id: "fever", keywords: Keywords{En: []string{"fever"}, Ur: []string{"بخار"}}},
		{name: "missing id", keywords: Keywords{En: []string{"fever"}, Ur: []string{"بخار"}}, wantErr: ErrConditionMissingID},
		{name: "no urdu keywords", id: "fever", keywords: Keywords{En: []string{"fever"}}, wantErr: ErrConditionMissingKeywords},
		{name: "empty keyword", id: "fever", keywords: Keywords{En: []string{""}, Ur: []string{"بخار"}}, wantErr: ErrConditionBlankKeyword},
		{name: "whitespace keyword", id: "fever", keywords: Keywords{En: []string{"fever"}, Ur: []string{"بخار", "  "}}, wantErr: ErrConditionBlankKeyword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Condition{ID: tt.id, Keywords: tt.keywords}.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
