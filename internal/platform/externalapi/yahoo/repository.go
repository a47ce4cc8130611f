package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"etf_dashboard/internal/feature/candles/domain/entity"
	"etf_dashboard/internal/feature/candles/usecase"
	"etf_dashboard/internal/platform/externalapi/yahoo/dto"
)

// dailyInterval is the only bar size the dashboard uses.
const dailyInterval = "1d"

// notFoundCode is the chart.error code Yahoo returns for unknown or delisted symbols.
const notFoundCode = "Not Found"

// YahooMarket はYahoo Finance外部APIから株価データを取得するMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &YahooMarket{cfg: cfg, client: client}
}

// GetHistory はYahoo Finance APIから指定期間の日足データを取得し、entity.Historyとして返します。
// 銘柄が存在しない、またはデータが無い場合はエラーではなく空のHistoryを返します。
func (y *YahooMarket) GetHistory(ctx context.Context, symbol string, period entity.Period) (entity.History, error) {
	empty := entity.History{Symbol: symbol, Period: period}

	// クエリパラメータを追加
	q := url.Values{}
	q.Set("range", period.String())
	q.Set("interval", dailyInterval)
	q.Set("includePrePost", "false")

	// URLを生成
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s",
		strings.TrimRight(y.cfg.BaseURL, "/"), url.PathEscape(symbol), q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return empty, err
	}
	if y.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", y.cfg.UserAgent)
	}

	// リクエストを実行
	res, err := y.client.Do(req)
	if err != nil {
		return empty, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// JSONレスポンスをDTOにデコード（エラー時もYahooは本文にerrorオブジェクトを返す）
	var body dto.ChartResponse
	decodeErr := json.NewDecoder(res.Body).Decode(&body)

	if apiErr := body.Chart.Error; decodeErr == nil && apiErr != nil {
		if apiErr.Code == notFoundCode {
			slog.Info("yahoo returned no data", "symbol", symbol, "period", period, "description", apiErr.Description)
			return empty, nil
		}
		return empty, fmt.Errorf("yahoo: %s: %s", apiErr.Code, apiErr.Description)
	}
	if res.StatusCode >= 400 {
		return empty, fmt.Errorf("yahoo http %d", res.StatusCode)
	}
	if decodeErr != nil {
		return empty, fmt.Errorf("yahoo decode: %w", decodeErr)
	}
	if len(body.Chart.Result) == 0 {
		return empty, nil
	}

	return toHistory(symbol, period, body.Chart.Result[0])
}

// toHistory はチャートAPIの結果をドメインエンティティに変換します。
// 終値が null の行（休場日など）は読み飛ばします。
func toHistory(symbol string, period entity.Period, r dto.ChartResult) (entity.History, error) {
	h := entity.History{
		Symbol: symbol,
		Period: period,
		Info: entity.FundInfo{
			LongName:       firstNonEmpty(r.Meta.LongName, r.Meta.ShortName),
			Currency:       r.Meta.Currency,
			Exchange:       firstNonEmpty(r.Meta.FullExchangeName, r.Meta.ExchangeName),
			InstrumentType: r.Meta.InstrumentType,
		},
	}
	if len(r.Timestamp) == 0 {
		return h, nil
	}
	if len(r.Indicators.Quote) == 0 {
		return h, errors.New("yahoo: timestamps without quote data")
	}

	q := r.Indicators.Quote[0]
	if len(q.Close) != len(r.Timestamp) {
		return h, fmt.Errorf("yahoo: %d timestamps but %d closes", len(r.Timestamp), len(q.Close))
	}

	loc := exchangeLocation(r.Meta)
	h.Candles = make([]entity.Candle, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		c := q.Close[i]
		if c == nil {
			continue
		}
		h.Candles = append(h.Candles, entity.Candle{
			Time:   time.Unix(ts, 0).In(loc),
			Open:   floatAt(q.Open, i, *c),
			High:   floatAt(q.High, i, *c),
			Low:    floatAt(q.Low, i, *c),
			Close:  *c,
			Volume: intAt(q.Volume, i),
		})
	}
	return h, nil
}

// exchangeLocation は取引所のタイムゾーンを返します。
// 名前で解決できない場合はGMTオフセットから固定ゾーンを作ります。
func exchangeLocation(m dto.ChartMeta) *time.Location {
	if m.ExchangeTimezoneName != "" {
		if loc, err := time.LoadLocation(m.ExchangeTimezoneName); err == nil {
			return loc
		}
	}
	return time.FixedZone(m.Timezone, m.GMTOffset)
}

func floatAt(vs []*float64, i int, fallback float64) float64 {
	if i < len(vs) && vs[i] != nil {
		return *vs[i]
	}
	return fallback
}

func intAt(vs []*int64, i int) int64 {
	if i < len(vs) && vs[i] != nil {
		return *vs[i]
	}
	return 0
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}
