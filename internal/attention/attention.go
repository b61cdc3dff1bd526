// Package attention tracks how focused a student stays during a study
// session. Without camera hardware the signal is simulated: a noisy level
// around a high baseline, which still exercises the full reporting path.
package attention

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// historyLimit bounds the retained measurements.
	historyLimit = 100

	// recentWindow is how many measurements feed the live level.
	recentWindow = 10

	// trendWindow is how many measurements the report's trend shows.
	trendWindow = 20

	// lowAttentionCut marks a measurement as a low-attention period.
	lowAttentionCut = 50.0

	// alertCut marks a measurement severe enough to alert on.
	alertCut = 30.0

	// DefaultSampleInterval is the live sampling rate.
	DefaultSampleInterval = time.Second
)

// Report summarizes one monitoring session.
type Report struct {
	AverageAttention    float64   `json:"average_attention"`
	PeakAttention       float64   `json:"peak_attention"`
	LowAttentionPeriods int       `json:"low_attention_periods"`
	TotalAlerts         int       `json:"total_alerts"`
	MonitoringDuration  float64   `json:"monitoring_duration"` // seconds
	Recommendation      string    `json:"recommendation"`
	AttentionTrend      []float64 `json:"attention_trend"`
}

// Monitor produces and aggregates attention measurements. The random
// source is injected so sessions replay deterministically in tests.
type Monitor struct {
	mu         sync.Mutex
	rng        *rand.Rand
	now        func() time.Time
	history    []float64 // percentages, oldest first
	alerts     int
	monitoring bool
	started    time.Time
	elapsed    time.Duration
	stop       chan struct{}
}

// NewMonitor creates a Monitor. A nil rng gets a time-seeded one.
func NewMonitor(rng *rand.Rand) *Monitor {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>5))
	}
	return &Monitor{rng: rng, now: time.Now}
}

// WithClock overrides the monitor clock. Test-only.
func (m *Monitor) WithClock(now func() time.Time) *Monitor {
	m.now = now
	return m
}

// Start begins sampling at the given interval until Stop is called or the
// context ends. Returns false if monitoring is already active.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) bool {
	m.mu.Lock()
	if m.monitoring {
		m.mu.Unlock()
		return false
	}
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	m.monitoring = true
	m.started = m.now()
	m.stop = make(chan struct{})
	stop := m.stop
	m.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				m.Stop()
				return
			case <-stop:
				return
			case <-ticker.C:
				m.Sample()
			}
		}
	}()
	return true
}

// Stop ends the active session. Returns the session report.
func (m *Monitor) Stop() Report {
	m.mu.Lock()
	if m.monitoring {
		m.monitoring = false
		m.elapsed += m.now().Sub(m.started)
		close(m.stop)
	}
	m.mu.Unlock()
	return m.Report()
}

// Monitoring reports whether a session is active.
func (m *Monitor) Monitoring() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.monitoring
}

// Sample takes one simulated measurement and records it. The simulated
// signal sits around an 80% baseline with noise in [-30%, +20%].
func (m *Monitor) Sample() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	noise := -0.3 + m.rng.Float64()*0.5
	level := 0.8 + noise
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	pct := level * 100

	m.history = append(m.history, pct)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
	if pct < alertCut {
		m.alerts++
	}
	return pct
}

// Level returns the current attention percentage: a weighted average of
// the most recent measurements with newer ones counting more. With no
// history it returns a neutral 50.
func (m *Monitor) Level() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) == 0 {
		return 50.0
	}

	recent := m.history
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}

	// Weights ramp linearly from 0.1 (oldest) to 1.0 (newest).
	var weighted, total float64
	n := len(recent)
	for i, v := range recent {
		w := 0.1
		if n > 1 {
			w = 0.1 + 0.9*float64(i)/float64(n-1)
		}
		weighted += v * w
		total += w
	}
	return weighted / total
}

// Report aggregates the session so far.
func (m *Monitor) Report() Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) == 0 {
		return Report{Recommendation: "No data available"}
	}

	var sum, peak float64
	lowPeriods := 0
	for _, v := range m.history {
		sum += v
		if v > peak {
			peak = v
		}
		if v < lowAttentionCut {
			lowPeriods++
		}
	}
	avg := sum / float64(len(m.history))

	duration := m.elapsed
	if m.monitoring {
		duration += m.now().Sub(m.started)
	}

	trend := m.history
	if len(trend) > trendWindow {
		trend = trend[len(trend)-trendWindow:]
	}
	trendCopy := make([]float64, len(trend))
	copy(trendCopy, trend)

	return Report{
		AverageAttention:    round1(avg),
		PeakAttention:       round1(peak),
		LowAttentionPeriods: lowPeriods,
		TotalAlerts:         m.alerts,
		MonitoringDuration:  round1(duration.Seconds()),
		Recommendation:      recommendation(avg),
		AttentionTrend:      trendCopy,
	}
}

func recommendation(avg float64) string {
	switch {
	case avg >= 80:
		return "Excellent focus! Keep up the great work! 🌟"
	case avg >= 60:
		return "Good attention. Try to minimize distractions. 👍"
	case avg >= 40:
		return "Fair attention. Take breaks and check your environment. 📚"
	default:
		return "Low attention detected. Consider shorter study sessions. ⚠️"
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
