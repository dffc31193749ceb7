package model

import "strings"

// Timeframe is the bar aggregation period requested from the provider.
type Timeframe string

const (
	TimeframeTick Timeframe = "tick"
	TimeframeS1   Timeframe = "s1"
	TimeframeM1   Timeframe = "m1"
	TimeframeM5   Timeframe = "m5"
	TimeframeM15  Timeframe = "m15"
	TimeframeM30  Timeframe = "m30"
	TimeframeH1   Timeframe = "h1"
	TimeframeH4   Timeframe = "h4"
	TimeframeD1   Timeframe = "d1"
	TimeframeMN1  Timeframe = "mn1"
)

var timeframes = map[Timeframe]bool{
	TimeframeTick: true,
	TimeframeS1:   true,
	TimeframeM1:   true,
	TimeframeM5:   true,
	TimeframeM15:  true,
	TimeframeM30:  true,
	TimeframeH1:   true,
	TimeframeH4:   true,
	TimeframeD1:   true,
	TimeframeMN1:  true,
}

// ParseTimeframe normalizes s and reports whether it names a known timeframe.
func ParseTimeframe(s string) (Timeframe, bool) {
	tf := Timeframe(strings.ToLower(strings.TrimSpace(s)))
	return tf, timeframes[tf]
}

// PriceSide selects which quote side bars are aggregated from.
type PriceSide string

const (
	SideBid PriceSide = "bid"
	SideAsk PriceSide = "ask"
)
