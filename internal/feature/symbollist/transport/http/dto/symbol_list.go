// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

import "etf_dashboard/internal/feature/symbollist/domain/entity"

// SymbolItem is one ETF of the catalogue as served to the multi-select control.
type SymbolItem struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Exchange string `json:"exchange"`
}

// NewSymbolList maps catalogue rows to response items. The result is never nil.
func NewSymbolList(symbols []entity.Symbol) []SymbolItem {
	out := make([]SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, SymbolItem{Code: s.Code, Name: s.Name, Category: s.Category, Exchange: s.Market})
	}
	return out
}
