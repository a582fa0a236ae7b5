package market

// Candle is one day's open/high/low/close price record.
type Candle struct {
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// AggregateCandles groups n consecutive daily candles into coarser bars:
// open of the first, close of the last, extremes across the group. This is
// a presentation transform for chart timeframes; the market itself only
// ever appends daily candles.
func AggregateCandles(candles []Candle, groupSize int) []Candle {
	if groupSize <= 1 || len(candles) == 0 {
		out := make([]Candle, len(candles))
		copy(out, candles)
		return out
	}

	out := make([]Candle, 0, (len(candles)+groupSize-1)/groupSize)
	for start := 0; start < len(candles); start += groupSize {
		end := start + groupSize
		if end > len(candles) {
			end = len(candles)
		}
		bar := Candle{
			Open:  candles[start].Open,
			High:  candles[start].High,
			Low:   candles[start].Low,
			Close: candles[end-1].Close,
		}
		for _, c := range candles[start+1 : end] {
			if c.High > bar.High {
				bar.High = c.High
			}
			if c.Low < bar.Low {
				bar.Low = c.Low
			}
		}
		out = append(out, bar)
	}
	return out
}
