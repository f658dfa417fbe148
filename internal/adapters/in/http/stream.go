package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fastbite/internal/core/application/broadcast"

	"github.com/labstack/echo/v4"
)

// stream writes every delivery of sub to the client as Server-Sent Events
// until the client goes away or the hub shuts down. The subscription is
// always closed on return.
func stream[T any](
	c echo.Context,
	sub *broadcast.Subscription[T],
	keepAlive time.Duration,
	frames func(broadcast.Delivery[T]) []sseFrame,
) error {
	defer sub.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(res, ": connected\n\n"); err != nil {
		return nil
	}
	res.Flush()

	ctx := c.Request().Context()
	for {
		d, err := receive(ctx, sub, keepAlive)
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			if _, writeErr := fmt.Fprint(res, ": keep-alive\n\n"); writeErr != nil {
				return nil
			}
			res.Flush()
			continue
		case errors.Is(err, broadcast.ErrSubscriptionClosed), ctx.Err() != nil:
			return nil
		case err != nil:
			return err
		}

		for _, f := range frames(d) {
			if writeErr := writeFrame(res, f); writeErr != nil {
				return nil
			}
		}
		res.Flush()
	}
}

// receive waits at most keepAlive for the next delivery. A non-positive
// keepAlive waits until the request context ends.
func receive[T any](ctx context.Context, sub *broadcast.Subscription[T], keepAlive time.Duration) (broadcast.Delivery[T], error) {
	if keepAlive <= 0 {
		return sub.Receive(ctx)
	}

	waitCtx, cancel := context.WithTimeout(ctx, keepAlive)
	defer cancel()

	d, err := sub.Receive(waitCtx)
	if err != nil && ctx.Err() != nil {
		return d, ctx.Err()
	}
	return d, err
}

func writeFrame(res *echo.Response, f sseFrame) error {
	data, err := json.Marshal(f.data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", f.name, data)
	return err
}
