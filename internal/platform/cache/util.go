package cache

import (
	"time"
)

// marketZone is the exchange time zone of the ETFs and the benchmark.
const marketZone = "America/New_York"

// settleHour and settleMinute mark when the day's closing prices are final.
const (
	settleHour   = 16
	settleMinute = 30
)

// TimeUntilNextSettle はnowから次の終値確定時刻（ニューヨーク時間16:30）までの期間を返します。
func TimeUntilNextSettle(now time.Time) time.Duration {
	loc, err := time.LoadLocation(marketZone)
	if err != nil {
		loc = time.FixedZone("EST", -5*60*60)
	}
	return TimeUntilNextDaily(now, loc, settleHour, settleMinute)
}

// TimeUntilNextDaily は指定タイムゾーンで次に hour:minute になるまでの期間を返します。
func TimeUntilNextDaily(now time.Time, loc *time.Location, hour, minute int) time.Duration {
	local := now.In(loc)

	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)

	// 今日の時刻が既に過ぎている場合は翌日を使用
	if !local.Before(next) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(local)
}
