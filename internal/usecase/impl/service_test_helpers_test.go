package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/umithief/motovibe6/config"
	mockSvc "github.com/umithief/motovibe6/internal/mocks/service"
)

var testNow = time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(codeAttempts int) *config.Config {
	return &config.Config{
		Checkout: &config.CheckoutConfig{
			EnforceStock: true,
			CodeAttempts: codeAttempts,
		},
		ActivityLog: &config.ActivityLogConfig{
			RetentionDays: 30,
		},
	}
}

// newFixedClock returns a clock mock pinned to testNow in UTC.
func newFixedClock(t *testing.T) *mockSvc.MockClock {
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Maybe()
	clock.EXPECT().Location().Return(time.UTC).Maybe()

	return clock
}
