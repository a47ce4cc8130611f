package entity

// DefaultCatalogue is the fixed list of well-known ETFs offered for selection,
// seeded into the symbols table at startup.
var DefaultCatalogue = []Symbol{
	{Code: "SPY", Name: "SPDR S&P 500 ETF Trust", Category: "Large Blend", Market: "NYSE Arca", IsActive: true, SortKey: 1},
	{Code: "IVV", Name: "iShares Core S&P 500 ETF", Category: "Large Blend", Market: "NYSE Arca", IsActive: true, SortKey: 2},
	{Code: "VOO", Name: "Vanguard S&P 500 ETF", Category: "Large Blend", Market: "NYSE Arca", IsActive: true, SortKey: 3},
	{Code: "QQQ", Name: "Invesco QQQ Trust", Category: "Large Growth", Market: "NASDAQ", IsActive: true, SortKey: 4},
	{Code: "DIA", Name: "SPDR Dow Jones Industrial Average ETF Trust", Category: "Large Value", Market: "NYSE Arca", IsActive: true, SortKey: 5},
	{Code: "EFA", Name: "iShares MSCI EAFE ETF", Category: "Foreign Large Blend", Market: "NYSE Arca", IsActive: true, SortKey: 6},
	{Code: "IEMG", Name: "iShares Core MSCI Emerging Markets ETF", Category: "Diversified Emerging Mkts", Market: "NYSE Arca", IsActive: true, SortKey: 7},
	{Code: "AGG", Name: "iShares Core US Aggregate Bond ETF", Category: "Intermediate Core Bond", Market: "NYSE Arca", IsActive: true, SortKey: 8},
	{Code: "GLD", Name: "SPDR Gold Shares", Category: "Commodities Focused", Market: "NYSE Arca", IsActive: true, SortKey: 9},
	{Code: "SLV", Name: "iShares Silver Trust", Category: "Commodities Focused", Market: "NYSE Arca", IsActive: true, SortKey: 10},
	{Code: "XLK", Name: "Technology Select Sector SPDR Fund", Category: "Technology", Market: "NYSE Arca", IsActive: true, SortKey: 11},
	{Code: "XLF", Name: "Financial Select Sector SPDR Fund", Category: "Financial", Market: "NYSE Arca", IsActive: true, SortKey: 12},
	{Code: "XLE", Name: "Energy Select Sector SPDR Fund", Category: "Equity Energy", Market: "NYSE Arca", IsActive: true, SortKey: 13},
}
