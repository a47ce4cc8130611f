package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"etf_dashboard/internal/api"
	"etf_dashboard/internal/feature/symbollist/domain/entity"
	"etf_dashboard/internal/feature/symbollist/transport/http/dto"
)

// SymbolUsecase は銘柄カタログのユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolHandler は銘柄カタログのHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List は選択可能なETFの一覧を表示順に返します。
// category クエリを指定すると、その分類（大文字小文字を区別しない）に絞り込みます。
//
// エンドポイント例:
// GET /api/symbols?category=Large%20Blend
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		slog.Error("failed to list symbols", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		symbols = filterByCategory(symbols, category)
	}
	c.JSON(http.StatusOK, dto.NewSymbolList(symbols))
}

func filterByCategory(symbols []entity.Symbol, category string) []entity.Symbol {
	var out []entity.Symbol
	for _, s := range symbols {
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out
}
