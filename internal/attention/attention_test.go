package attention

import (
	"math/rand/v2"
	"testing"
	"time"
)

func newTestMonitor() *Monitor {
	return NewMonitor(rand.New(rand.NewPCG(3, 9)))
}

func TestSampleStaysInRange(t *testing.T) {
	m := newTestMonitor()
	for i := 0; i < 200; i++ {
		v := m.Sample()
		if v < 0 || v > 100 {
			t.Fatalf("sample out of range: %f", v)
		}
	}
}

func TestLevelNeutralWithoutHistory(t *testing.T) {
	m := newTestMonitor()
	if got := m.Level(); got != 50.0 {
		t.Errorf("level = %f, want neutral 50", got)
	}
}

func TestLevelTracksRecentSamples(t *testing.T) {
	m := newTestMonitor()
	for i := 0; i < 30; i++ {
		m.Sample()
	}
	level := m.Level()
	if level < 0 || level > 100 {
		t.Fatalf("level out of range: %f", level)
	}
	// The simulated signal averages around 75%, so the weighted level
	// should land well above neutral.
	if level < 40 {
		t.Errorf("level = %f, suspiciously low for the simulated signal", level)
	}
}

func TestHistoryBounded(t *testing.T) {
	m := newTestMonitor()
	for i := 0; i < historyLimit+50; i++ {
		m.Sample()
	}
	m.mu.Lock()
	n := len(m.history)
	m.mu.Unlock()
	if n != historyLimit {
		t.Errorf("history = %d, want %d", n, historyLimit)
	}
}

func TestReportEmpty(t *testing.T) {
	m := newTestMonitor()
	r := m.Report()
	if r.Recommendation != "No data available" {
		t.Errorf("recommendation = %q", r.Recommendation)
	}
	if r.AverageAttention != 0 || r.TotalAlerts != 0 {
		t.Errorf("empty report not zeroed: %+v", r)
	}
}

func TestReportAggregates(t *testing.T) {
	m := newTestMonitor()
	for i := 0; i < 40; i++ {
		m.Sample()
	}
	r := m.Report()

	if r.AverageAttention <= 0 || r.AverageAttention > 100 {
		t.Errorf("average = %f", r.AverageAttention)
	}
	if r.PeakAttention < r.AverageAttention {
		t.Errorf("peak %f below average %f", r.PeakAttention, r.AverageAttention)
	}
	if len(r.AttentionTrend) != trendWindow {
		t.Errorf("trend length = %d, want %d", len(r.AttentionTrend), trendWindow)
	}
	if r.Recommendation == "" {
		t.Error("missing recommendation")
	}
}

func TestRecommendationTiers(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{85, "Excellent focus! Keep up the great work! 🌟"},
		{65, "Good attention. Try to minimize distractions. 👍"},
		{45, "Fair attention. Take breaks and check your environment. 📚"},
		{20, "Low attention detected. Consider shorter study sessions. ⚠️"},
	}
	for _, c := range cases {
		if got := recommendation(c.avg); got != c.want {
			t.Errorf("recommendation(%f) = %q, want %q", c.avg, got, c.want)
		}
	}
}

func TestStartStopLifecycle(t *testing.T) {
	m := newTestMonitor()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	current := base
	m.WithClock(func() time.Time { return current })

	if !m.Start(t.Context(), time.Hour) {
		t.Fatal("start failed")
	}
	if m.Start(t.Context(), time.Hour) {
		t.Error("second start should be rejected")
	}
	if !m.Monitoring() {
		t.Error("monitor not active after start")
	}

	m.Sample()
	current = base.Add(90 * time.Second)
	r := m.Stop()

	if m.Monitoring() {
		t.Error("monitor still active after stop")
	}
	if r.MonitoringDuration != 90 {
		t.Errorf("duration = %f, want 90", r.MonitoringDuration)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []float64 {
		m := NewMonitor(rand.New(rand.NewPCG(42, 7)))
		out := make([]float64, 10)
		for i := range out {
			out[i] = m.Sample()
		}
		return out
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %f vs %f", i, a[i], b[i])
		}
	}
}
