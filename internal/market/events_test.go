package market

import (
	"math/rand"
	"testing"

	"github.com/hwanchang/stocksim/internal/news"
)

func TestSurgeSchedulesClimb(t *testing.T) {
	m := newTestMarket(t, 20, 23)

	target := m.SurgeEvent()
	if target == nil {
		t.Fatal("no surge target found in a fresh roster")
	}
	if target.CurrentPrice() >= 50_000 {
		t.Errorf("surge picked a high-priced company: %v", target.CurrentPrice())
	}
	if target.NewsImpactDays < 5 || target.NewsImpactDays > 10 {
		t.Errorf("surge duration %d outside 5-10", target.NewsImpactDays)
	}
	if target.NewsImpact <= 0 {
		t.Errorf("surge impact %v not positive", target.NewsImpact)
	}

	msgs := m.Messages()
	if len(msgs) == 0 {
		t.Fatal("surge published no news")
	}
	last := msgs[len(msgs)-1]
	if last.Kind != news.KindSurge {
		t.Errorf("event kind = %v, want surge", last.Kind)
	}
	if last.Company != target.Name {
		t.Errorf("event names %q, want %q", last.Company, target.Name)
	}
}

func TestPlayerEventBoostsPrice(t *testing.T) {
	m := newTestMarket(t, 21, 23)

	prices := make(map[string]float64, len(m.companies))
	for _, c := range m.companies {
		prices[c.ID] = c.CurrentPrice()
	}

	m.TriggerPlayerEvent()

	var boosted *Company
	for _, c := range m.companies {
		if c.CurrentPrice() != prices[c.ID] {
			if boosted != nil {
				t.Fatal("more than one company moved")
			}
			boosted = c
		}
	}
	if boosted == nil {
		t.Fatal("no company moved")
	}

	ratio := boosted.CurrentPrice() / prices[boosted.ID]
	if ratio < 1.05 || ratio > 1.15 {
		t.Errorf("boost ratio %v outside 5-15%%", ratio)
	}
}

func TestGenerateDailyPublishesAtMostOne(t *testing.T) {
	m := newTestMarket(t, 22, 23)
	rng := rand.New(rand.NewSource(22))

	for i := 0; i < 50; i++ {
		before := len(m.Messages())
		m.events.GenerateDaily(m, rng)
		if got := len(m.Messages()) - before; got > 1 {
			t.Fatalf("iteration %d published %d events", i, got)
		}
	}
}

func TestGenerateDailySchedulesImpacts(t *testing.T) {
	m := newTestMarket(t, 23, 23)
	rng := rand.New(rand.NewSource(23))

	// Run enough days that every slot fires; whenever an impact was
	// scheduled it must carry a sensible duration.
	for i := 0; i < 200; i++ {
		m.events.GenerateDaily(m, rng)
	}

	scheduled := 0
	for _, c := range m.companies {
		if c.NewsImpactDays == 0 {
			continue
		}
		scheduled++
		if c.NewsImpactDays < 3 || c.NewsImpactDays > 30 {
			t.Errorf("%s: impact duration %d outside any news band", c.Name, c.NewsImpactDays)
		}
	}
	if scheduled == 0 {
		t.Error("200 news days scheduled no price impacts")
	}
}

func TestHandleSpecialShocksAreRare(t *testing.T) {
	m := newTestMarket(t, 24, 23)
	rng := rand.New(rand.NewSource(24))

	before := len(m.Messages())
	for i := 0; i < 500; i++ {
		m.events.HandleSpecial(m, rng)
	}
	shocks := len(m.Messages()) - before

	// 4% per day over 500 days: expect about 20, allow a wide band.
	if shocks == 0 {
		t.Error("no special events in 500 days")
	}
	if shocks > 60 {
		t.Errorf("%d special events in 500 days, far above the 4%% rate", shocks)
	}
}
