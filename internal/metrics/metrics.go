// Package metrics exposes Prometheus counters for command dispatch and announcements.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Command outcomes.
const (
	OutcomeOK             = "ok"
	OutcomeError          = "error"
	OutcomeNotImplemented = "not_implemented"
	OutcomePanic          = "panic"
)

// Recorder is what the dispatcher and the scheduler report to.
type Recorder interface {
	RecordCommand(command, outcome string)
	RecordCommandLatency(command string, d time.Duration)
	RecordAnnouncement(kind string)
	RecordFiring(ok bool)
}

type Collector struct {
	commands      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	announcements *prometheus.CounterVec
	firings       *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "birthdaybot_commands_total",
			Help: "Slash commands dispatched, by command and outcome.",
		}, []string{"command", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "birthdaybot_command_duration_seconds",
			Help:    "Time spent handling a slash command.",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
		announcements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "birthdaybot_announcements_total",
			Help: "Announcement messages posted, by kind.",
		}, []string{"kind"}),
		firings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "birthdaybot_scheduler_firings_total",
			Help: "Scheduler firings, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(c.commands, c.latency, c.announcements, c.firings)

	return c
}

func (c *Collector) RecordCommand(command, outcome string) {
	c.commands.WithLabelValues(command, outcome).Inc()
}

func (c *Collector) RecordCommandLatency(command string, d time.Duration) {
	c.latency.WithLabelValues(command).Observe(d.Seconds())
}

func (c *Collector) RecordAnnouncement(kind string) {
	c.announcements.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordFiring(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	c.firings.WithLabelValues(result).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type nopRecorder struct{}

func (nopRecorder) RecordCommand(string, string)              {}
func (nopRecorder) RecordCommandLatency(string, time.Duration) {}
func (nopRecorder) RecordAnnouncement(string)                  {}
func (nopRecorder) RecordFiring(bool)                          {}

// Nop returns a Recorder that discards everything.
func Nop() Recorder {
	return nopRecorder{}
}
