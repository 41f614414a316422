package api

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"qrstudio/internal/client/models"
)

// RetryPolicy bounds the download path: at most MaxRetries additional
// attempts after the first, a fixed Backoff between attempts, and a hard
// AttemptTimeout applied to every attempt individually.
type RetryPolicy struct {
	MaxRetries     int
	Backoff        time.Duration
	AttemptTimeout time.Duration
}

// DefaultRetryPolicy matches the behavior users see in the hosted frontend:
// 2 retries, 1 s apart, 30 s per attempt.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 2, Backoff: time.Second, AttemptTimeout: 30 * time.Second}
}

func (p RetryPolicy) backoff() retry.Backoff {
	return retry.WithMaxRetries(uint64(p.MaxRetries), retry.NewConstant(p.Backoff))
}

// Download requests the QR in its exact target format, retrying transient
// failures per the policy. After a successful transfer the payload size is
// validated; implausibly small bodies fail with *CorruptPayloadError and are
// not retried. Exhausted retries or timeouts fail with *DownloadError.
func (c *HTTPClient) Download(ctx context.Context, req models.GenerateRequest, policy RetryPolicy) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, &DownloadError{Message: err.Error(), Err: err}
	}

	var body []byte

	err := retry.Do(ctx, policy.backoff(), func(ctx context.Context) error {
		attemptCtx := ctx
		if policy.AttemptTimeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, policy.AttemptTimeout)
			defer cancel()
		}

		b, err := c.Generate(attemptCtx, req)
		if err != nil {
			c.log.Warn(ctx, "download attempt failed, will retry if attempts remain", "error", err)
			return retry.RetryableError(err)
		}

		if len(b) < MinPayloadSize {
			// A tiny body is not transient; do not burn retries on it.
			return &CorruptPayloadError{Size: len(b)}
		}

		body = b
		return nil
	})

	if err != nil {
		var cpe *CorruptPayloadError
		if errors.As(err, &cpe) {
			return nil, cpe
		}
		return nil, &DownloadError{Message: "all download attempts failed", Err: err}
	}

	return body, nil
}
