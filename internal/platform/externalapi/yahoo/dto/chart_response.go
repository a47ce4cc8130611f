// Package dto defines data transfer objects for the Yahoo Finance chart API responses.
package dto

// ChartResponse represents the JSON response from the v8 finance/chart endpoint.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *ChartError   `json:"error"`
	} `json:"chart"`
}

// ChartError is the error object Yahoo embeds in the body.
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartResult is one symbol's series.
type ChartResult struct {
	Meta       ChartMeta `json:"meta"`
	Timestamp  []int64   `json:"timestamp"`
	Indicators struct {
		Quote []Quote `json:"quote"`
	} `json:"indicators"`
}

// ChartMeta carries descriptive fields about the symbol.
type ChartMeta struct {
	Currency             string `json:"currency"`
	Symbol               string `json:"symbol"`
	ExchangeName         string `json:"exchangeName"`
	FullExchangeName     string `json:"fullExchangeName"`
	InstrumentType       string `json:"instrumentType"`
	GMTOffset            int    `json:"gmtoffset"`
	Timezone             string `json:"timezone"`
	ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	LongName             string `json:"longName"`
	ShortName            string `json:"shortName"`
}

// Quote holds parallel OHLCV arrays. Entries are null on days without trading.
type Quote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}
