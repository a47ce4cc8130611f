// Package usecase は価格履歴データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"etf_dashboard/internal/feature/candles/domain"
	"etf_dashboard/internal/feature/candles/domain/entity"
	"etf_dashboard/internal/shared/stats"
)

// MarketRepository は株価データを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	// GetHistory は指定された銘柄と期間の日足履歴を返します。
	// データが存在しない場合はエラーではなく空のHistoryを返します。
	GetHistory(ctx context.Context, symbol string, period entity.Period) (entity.History, error)
}

// candlesUsecase は価格履歴の取得とチャート用オーバーレイの計算を行います。
type candlesUsecase struct {
	market MarketRepository
}

// NewCandlesUsecase はcandlesUsecaseの新しいインスタンスを生成します。
func NewCandlesUsecase(market MarketRepository) *candlesUsecase {
	return &candlesUsecase{market: market}
}

// GetChart は指定された銘柄と期間の価格履歴を取得し、
// 20日移動平均とボラティリティバンドを付与して返します。
// 期間が不正な場合は domain.ErrInvalidPeriod、データが空の場合は domain.ErrEmptyDataset を返します。
func (cu *candlesUsecase) GetChart(ctx context.Context, symbol, period string) (entity.Chart, error) {
	p, err := entity.ParsePeriod(period)
	if err != nil {
		return entity.Chart{}, err
	}

	h, err := cu.market.GetHistory(ctx, symbol, p)
	if err != nil {
		return entity.Chart{}, err
	}
	if h.Empty() {
		return entity.Chart{}, fmt.Errorf("%w: %s (%s)", domain.ErrEmptyDataset, symbol, p)
	}

	return BuildChart(h), nil
}

// BuildChart は履歴に移動平均とボラティリティバンドを付与します。
func BuildChart(h entity.History) entity.Chart {
	b := stats.BollingerBands(h.Closes(), entity.BandWindow, entity.BandWidth)
	return entity.Chart{
		History: h,
		MA20:    b.Middle,
		Upper:   b.Upper,
		Lower:   b.Lower,
	}
}
