//go:build integration

package steps

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/integration/adapters"
)

// iAmLoggedInAs signs an access token for the user behind email. The same email always
// maps to the same user within a scenario.
func (t *testContext) iAmLoggedInAs(email string) error {
	userID, ok := t.users[email]
	if !ok {
		userID = uuid.New()
		t.users[email] = userID
	}

	token, err := adapters.SignAccessToken(testJWTSecret, testJWTIssuer, userID, email, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}

	t.userID = userID
	t.accessToken = token
	return nil
}

// todayIs moves the API clock to noon UTC of date.
func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) theSweepRuns() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t.injector.SweepWorker.RunOnce(ctx)
	return nil
}

func (t *testContext) theEmailAPIRespondsWithStatus(status int) error {
	response := map[string]any{"id": "email-id"}
	if status >= http.StatusBadRequest {
		response = map[string]any{
			"statusCode": status,
			"name":       "application_error",
			"message":    fmt.Sprintf("%d %s", status, http.StatusText(status)),
		}
	}
	t.emailApi.SetResponse(-1, http.MethodPost, "/emails", status, response)
	return nil
}

func (t *testContext) theEmailAPIShouldHaveReceivedEmails(quantity int) error {
	received := t.emailApi.RequestCount(http.MethodPost, "/emails")
	if received != quantity {
		return fmt.Errorf("expected %d emails, got %d", quantity, received)
	}
	return nil
}

// theEmailShouldBeSentTo checks the recipient of the n-th email, counting from 1.
func (t *testContext) theEmailShouldBeSentTo(n int, address string) error {
	body := t.emailApi.GetRequestBody(http.MethodPost, "/emails", n-1)
	if body == nil {
		return fmt.Errorf("email %d was not sent", n)
	}

	to, ok := body["to"].([]any)
	if !ok || len(to) == 0 {
		return fmt.Errorf("email %d has no recipients: %v", n, body)
	}
	if to[0] != address {
		return fmt.Errorf("email %d expected recipient '%s', got '%v'", n, address, to[0])
	}
	return nil
}
