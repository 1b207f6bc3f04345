package dto

import (
	"github.com/SscSPs/money_chat/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TeachPatternRequest records or reinforces a learned phrase.
// Omitted attributes keep their stored value.
type TeachPatternRequest struct {
	Phrase        string           `json:"phrase" binding:"required,max=100,notblank" example:"birra"`
	Type          *string          `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Category      *string          `json:"category,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	Multiplier    *decimal.Decimal `json:"multiplier,omitempty" swaggertype:"string"`
	Context       *string          `json:"context,omitempty"`
}

// ToAttributes extracts the optional attributes of the request.
func (r TeachPatternRequest) ToAttributes() domain.PatternAttributes {
	attrs := domain.PatternAttributes{
		Category:      r.Category,
		PaymentMethod: r.PaymentMethod,
		Multiplier:    r.Multiplier,
		Context:       r.Context,
	}
	if r.Type != nil {
		t := domain.TransactionType(*r.Type)
		attrs.Type = &t
	}
	return attrs
}

// PatternResponse defines data returned for a learned pattern.
type PatternResponse struct {
	Phrase        string           `json:"phrase"`
	Type          string           `json:"type"`
	Category      string           `json:"category,omitempty"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
	Multiplier    *decimal.Decimal `json:"multiplier,omitempty" swaggertype:"string"`
	Context       string           `json:"context,omitempty"`
	Count         int              `json:"count"`
}

// ToPatternResponse converts domain.LearnedPattern to DTO.
func ToPatternResponse(p domain.LearnedPattern) PatternResponse {
	return PatternResponse{
		Phrase:        p.Phrase,
		Type:          string(p.Type),
		Category:      p.Category,
		PaymentMethod: p.PaymentMethod,
		Multiplier:    p.Multiplier,
		Context:       p.Context,
		Count:         p.Count,
	}
}

// ListPatternsResponse wraps the learned pattern table.
type ListPatternsResponse struct {
	Patterns []PatternResponse `json:"patterns"`
}

// ToListPatternsResponse converts a slice of domain.LearnedPattern to DTO.
func ToListPatternsResponse(ps []domain.LearnedPattern) ListPatternsResponse {
	list := make([]PatternResponse, len(ps))
	for i, p := range ps {
		list[i] = ToPatternResponse(p)
	}
	return ListPatternsResponse{Patterns: list}
}
