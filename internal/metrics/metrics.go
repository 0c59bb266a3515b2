package metrics

import (
	"sort"
	"sync"
	"time"
)

type Metrics struct {
	mutex         sync.RWMutex
	requests      map[string]int64
	statusCodes   map[int]int64
	rejections    map[string]int64
	responseTimes []time.Duration
	startTime     time.Time
}

type Snapshot struct {
	TotalRequests    int64            `json:"total_requests"`
	Uptime           time.Duration    `json:"uptime"`
	RequestsByMethod map[string]int64 `json:"requests_by_method"`
	StatusCodes      map[int]int64    `json:"status_codes"`
	Rejections       map[string]int64 `json:"rejections"`
	AvgResponse      time.Duration    `json:"avg_response"`
	P50Response      time.Duration    `json:"p50_response"`
	P95Response      time.Duration    `json:"p95_response"`
	P99Response      time.Duration    `json:"p99_response"`
}

func NewMetrics() *Metrics {
	return &Metrics{
		requests:    make(map[string]int64),
		statusCodes: make(map[int]int64),
		rejections:  make(map[string]int64),
		startTime:   time.Now(),
	}
}

func (m *Metrics) RecordResponse(method string, statusCode int, duration time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.requests[method]++
	m.statusCodes[statusCode]++

	m.responseTimes = append(m.responseTimes, duration)
	if len(m.responseTimes) > 1000 {
		m.responseTimes = m.responseTimes[1:]
	}
}

func (m *Metrics) RecordRejection(message string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.rejections[message]++
}

func (m *Metrics) Snapshot() Snapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	snap := Snapshot{
		Uptime:           time.Since(m.startTime),
		RequestsByMethod: make(map[string]int64, len(m.requests)),
		StatusCodes:      make(map[int]int64, len(m.statusCodes)),
		Rejections:       make(map[string]int64, len(m.rejections)),
	}

	for method, count := range m.requests {
		snap.TotalRequests += count
		snap.RequestsByMethod[method] = count
	}
	for code, count := range m.statusCodes {
		snap.StatusCodes[code] = count
	}
	for message, count := range m.rejections {
		snap.Rejections[message] = count
	}

	if len(m.responseTimes) > 0 {
		sorted := make([]time.Duration, len(m.responseTimes))
		copy(sorted, m.responseTimes)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i] < sorted[j]
		})

		snap.AvgResponse = average(sorted)
		snap.P50Response = percentile(sorted, 0.50)
		snap.P95Response = percentile(sorted, 0.95)
		snap.P99Response = percentile(sorted, 0.99)
	}

	return snap
}

func average(durations []time.Duration) time.Duration {
	if len(durations) == 0 {
		return 0
	}

	var sum time.Duration
	for _, d := range durations {
		sum += d
	}

	return sum / time.Duration(len(durations))
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	index := int(float64(len(sorted)) * p)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	return sorted[index]
}
