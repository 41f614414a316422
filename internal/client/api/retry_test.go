package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// retryDoForTest runs fn under the policy's backoff with every failure
// treated as retryable, so attempt counting can be checked in isolation.
func retryDoForTest(p RetryPolicy, fn func() error) error {
	return retry.Do(context.Background(), p.backoff(), func(ctx context.Context) error {
		if err := fn(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

func testPolicy() RetryPolicy {
	// Same shape as the production policy, compressed for test speed.
	return RetryPolicy{MaxRetries: 2, Backoff: 20 * time.Millisecond, AttemptTimeout: time.Second}
}

func TestDownload_SucceedsOnThirdAttempt(t *testing.T) {
	var attempts atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write(fakePNG())
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())

	start := time.Now()
	body, err := c.Download(context.Background(), validRequest(), testPolicy())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, int32(3), attempts.Load(), "expected exactly 3 network attempts")
	assert.GreaterOrEqual(t, len(body), MinPayloadSize)
	// two backoff waits must have elapsed between the three attempts
	assert.GreaterOrEqual(t, elapsed, 2*20*time.Millisecond)
}

func TestDownload_ExhaustsRetries(t *testing.T) {
	var attempts atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	_, err := c.Download(context.Background(), validRequest(), testPolicy())

	var dlErr *DownloadError
	require.ErrorAs(t, err, &dlErr)
	assert.Equal(t, int32(3), attempts.Load(), "1 initial + 2 retries")
}

func TestDownload_TinyPayload_CorruptNotRetried(t *testing.T) {
	var attempts atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	_, err := c.Download(context.Background(), validRequest(), testPolicy())

	var cpErr *CorruptPayloadError
	require.ErrorAs(t, err, &cpErr)
	assert.Equal(t, 2, cpErr.Size)
	assert.Equal(t, int32(1), attempts.Load(), "a corrupt payload must not be retried")
}

func TestDownload_AttemptTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, testLogger())
	policy := RetryPolicy{MaxRetries: 0, Backoff: 10 * time.Millisecond, AttemptTimeout: 50 * time.Millisecond}

	start := time.Now()
	_, err := c.Download(context.Background(), validRequest(), policy)

	var dlErr *DownloadError
	require.ErrorAs(t, err, &dlErr)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetryPolicy_BackoffBoundsAttempts(t *testing.T) {
	// The policy value is testable without any network in the loop.
	p := RetryPolicy{MaxRetries: 2, Backoff: time.Millisecond}

	calls := 0
	err := retryDoForTest(p, func() error {
		calls++
		return assert.AnError
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}
