package telegram

import (
	"context"
	"time"

	"log/slog"

	"github.com/Availableperson/nexa/internal/domain"
)

type UpdateHandler interface {
	HandleUpdate(ctx context.Context, upd domain.Update) error
}

// Poller is the long-polling bot transport. It is the push/webhook
// alternative for deployments without a public HTTPS endpoint.
type Poller struct {
	logger  *slog.Logger
	client  *Client
	handler UpdateHandler
	timeout time.Duration
	offset  int64
}

func NewPoller(logger *slog.Logger, client *Client, handler UpdateHandler, timeout time.Duration) *Poller {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &Poller{
		logger:  logger,
		client:  client,
		handler: handler,
		timeout: timeout,
	}
}

func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("telegram poller STARTED", slog.Duration("timeout", p.timeout))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("telegram poller STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		updates, err := p.client.GetUpdates(ctx, p.offset, p.timeout)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			p.logger.Error("getUpdates failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= p.offset {
				p.offset = upd.UpdateID + 1
			}
			if err := p.handler.HandleUpdate(ctx, upd); err != nil {
				p.logger.Error("handle update failed",
					slog.Int64("update_id", upd.UpdateID),
					slog.Any("error", err),
				)
			}
		}
	}
}
