package jobs

import (
	"context"
	"log/slog"

	"fastbite/internal/core/application/broadcast"
	"fastbite/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

type HubStatsSource interface {
	Stats() map[string]broadcast.Stats
}

// HubReportJob copies the broadcaster counters into the hub gauges.
type HubReportJob struct {
	source   HubStatsSource
	metrics  *metrics.Metrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewHubReportJob(source HubStatsSource, m *metrics.Metrics, schedule string, logger *slog.Logger) *HubReportJob {
	return &HubReportJob{
		source:   source,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "hub_report_job"),
	}
}

// Report takes one sample.
func (j *HubReportJob) Report(ctx context.Context) {
	for name, s := range j.source.Stats() {
		j.metrics.HubSubscribers.WithLabelValues(name).Set(float64(s.Subscribers))
		j.metrics.HubBuffered.WithLabelValues(name).Set(float64(s.Buffered))
		j.metrics.HubPublished.WithLabelValues(name).Set(float64(s.Published))
		j.metrics.HubDropped.WithLabelValues(name).Set(float64(s.Dropped))

		if s.Dropped > 0 {
			j.logger.DebugContext(ctx, "Hub has dropped events",
				"hub", name, "dropped", s.Dropped, "subscribers", s.Subscribers)
		}
	}
}

func (j *HubReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Report(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hub report job started", "schedule", j.schedule)
	return nil
}

func (j *HubReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Hub report job stopped")
}
