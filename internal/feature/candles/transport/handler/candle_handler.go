// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"etf_dashboard/internal/api"
	"etf_dashboard/internal/feature/candles/domain"
	"etf_dashboard/internal/feature/candles/domain/entity"
	"etf_dashboard/internal/feature/candles/transport/http/dto"
)

// CandlesUsecase は価格履歴操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CandlesUsecase interface {
	GetChart(ctx context.Context, symbol, period string) (entity.Chart, error)
}

// CandlesHandler は価格履歴データのHTTPリクエストを処理します。
type CandlesHandler struct {
	uc CandlesUsecase
}

// NewCandlesHandler は指定されたusecaseでCandlesHandlerの新しいインスタンスを生成します。
func NewCandlesHandler(uc CandlesUsecase) *CandlesHandler {
	return &CandlesHandler{uc: uc}
}

// GetHistory は銘柄コードと期間を受け取り、移動平均とバンド付きの日足データをJSONで返します。
//
// エンドポイント例:
// GET /api/history/:symbol?period=3mo
func (h *CandlesHandler) GetHistory(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	// 未指定の場合はデフォルト値を使用
	period := c.DefaultQuery("period", entity.DefaultPeriod.String())

	chart, err := h.uc.GetChart(c.Request.Context(), symbol, period)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPeriod):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrEmptyDataset):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Warn("history fetch failed", "symbol", symbol, "period", period, "error", err)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewChartResponse(chart))
}
