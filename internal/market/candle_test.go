package market

import "testing"

func TestAggregateCandles(t *testing.T) {
	daily := []Candle{
		{Open: 10, High: 15, Low: 9, Close: 12},
		{Open: 12, High: 20, Low: 11, Close: 18},
		{Open: 18, High: 19, Low: 8, Close: 9},
		{Open: 9, High: 14, Low: 9, Close: 13},
		{Open: 13, High: 16, Low: 12, Close: 15},
	}

	weekly := AggregateCandles(daily, 3)
	if len(weekly) != 2 {
		t.Fatalf("bar count = %d, want 2", len(weekly))
	}

	first := weekly[0]
	if first.Open != 10 || first.Close != 9 {
		t.Errorf("first bar open/close = %v/%v, want 10/9", first.Open, first.Close)
	}
	if first.High != 20 || first.Low != 8 {
		t.Errorf("first bar high/low = %v/%v, want 20/8", first.High, first.Low)
	}

	// The trailing partial group still forms a bar.
	second := weekly[1]
	if second.Open != 9 || second.Close != 15 {
		t.Errorf("second bar open/close = %v/%v, want 9/15", second.Open, second.Close)
	}
	if second.High != 16 || second.Low != 9 {
		t.Errorf("second bar high/low = %v/%v, want 16/9", second.High, second.Low)
	}
}

func TestAggregateCandlesGroupOfOne(t *testing.T) {
	daily := []Candle{{Open: 1, Close: 2}, {Open: 2, Close: 3}}

	out := AggregateCandles(daily, 1)
	if len(out) != len(daily) {
		t.Fatalf("bar count = %d, want %d", len(out), len(daily))
	}

	// Must be a copy, not an alias into the source series.
	out[0].Close = 99
	if daily[0].Close == 99 {
		t.Error("aggregation aliases the input slice")
	}
}

func TestAggregateCandlesEmpty(t *testing.T) {
	if out := AggregateCandles(nil, 7); len(out) != 0 {
		t.Errorf("empty input produced %d bars", len(out))
	}
}
