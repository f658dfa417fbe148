package jobs

import (
	"context"
	"log/slog"

	"fastbite/internal/core/application/usecases/queries"
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

type OrderBacklogSource interface {
	Handle(ctx context.Context, query queries.GetOrderBacklogQuery) ([]queries.GetOrderBacklogQueryResponse, error)
}

// OrderBacklogJob publishes how many orders wait in each stage and the age
// of the oldest one. Terminal stages are counted but report no age.
type OrderBacklogJob struct {
	source   OrderBacklogSource
	metrics  *metrics.Metrics
	clock    kernel.Clock
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderBacklogJob(
	source OrderBacklogSource,
	m *metrics.Metrics,
	clock kernel.Clock,
	schedule string,
	logger *slog.Logger,
) *OrderBacklogJob {
	return &OrderBacklogJob{
		source:   source,
		metrics:  m,
		clock:    clock,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

func (j *OrderBacklogJob) Report(ctx context.Context) error {
	backlog, err := j.source.Handle(ctx, queries.NewGetOrderBacklogQuery())
	if err != nil {
		return err
	}

	now := j.clock.Now()
	for _, stage := range backlog {
		label := stage.Status.String()
		j.metrics.OrdersInStage.WithLabelValues(label).Set(float64(stage.Count))

		age := 0.0
		if !stage.Status.IsTerminal() && stage.Count > 0 && !stage.OldestCreatedAt.IsZero() {
			age = max(now.Sub(stage.OldestCreatedAt).Seconds(), 0)
		}
		j.metrics.OldestInStageSecs.WithLabelValues(label).Set(age)
	}
	return nil
}

func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
