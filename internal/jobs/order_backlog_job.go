package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"nannyadmin/internal/core/application/usecases/queries"
)

// OrderBacklogJob periodically reports how many orders sit in each status.
// Runs every minute so operators can watch the backlog drain.
type OrderBacklogJob struct {
	handler queries.GetOrderBacklogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderBacklogJob creates the backlog report job.
func NewOrderBacklogJob(handler queries.GetOrderBacklogQueryHandler, logger *slog.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_backlog_job"),
	}
}

// Start begins the backlog report job to run every minute.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderBacklogQuery()

		backlog, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order backlog report failed", "error", err)
			return
		}

		if len(backlog) == 0 {
			j.logger.InfoContext(ctx, "Order backlog empty")
			return
		}

		attrs := make([]any, 0, len(backlog)*2)
		for _, entry := range backlog {
			attrs = append(attrs, entry.Status, entry.Count)
		}
		j.logger.InfoContext(ctx, "Order backlog", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog report job.
func (j *OrderBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
