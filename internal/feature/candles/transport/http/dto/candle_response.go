// Package dto defines data transfer objects for the candles HTTP API.
package dto

// CandleResponse はロウソク足データのレスポンスDTOです。
// 移動平均とバンドは未定義の区間で null になります。
type CandleResponse struct {
	Time   string   `json:"time"`   // 日付
	Open   float64  `json:"open"`   // 始値
	High   float64  `json:"high"`   // 高値
	Low    float64  `json:"low"`    // 安値
	Close  float64  `json:"close"`  // 終値
	Volume int64    `json:"volume"` // 出来高
	MA20   *float64 `json:"ma20"`   // 20日移動平均
	Upper  *float64 `json:"upper"`  // 上側バンド
	Lower  *float64 `json:"lower"`  // 下側バンド
}

// FundInfoResponse は銘柄の説明情報です。
type FundInfoResponse struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	Currency       string `json:"currency"`
	Exchange       string `json:"exchange"`
	InstrumentType string `json:"instrument_type"`
}

// ChartResponse は /api/history/:symbol のレスポンスDTOです。
type ChartResponse struct {
	Symbol  string           `json:"symbol"`
	Period  string           `json:"period"`
	Info    FundInfoResponse `json:"info"`
	Candles []CandleResponse `json:"candles"`
}
