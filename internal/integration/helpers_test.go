package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-kiosk/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "updatedAt" || k == "ticketId"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func truncateMovies(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE TABLE kiosk_movies RESTART IDENTITY")
	require.NoError(t, err)
}

func insertMovies(t testing.TB, db *pgxpool.Pool, movies []domain.SeedMovie) {
	for i, m := range movies {
		_, err := db.Exec(context.Background(),
			`INSERT INTO kiosk_movies (name, price, showtime_hour, showtime_minute, position)
			VALUES ($1, $2, $3, $4, $5)`,
			m.Name, m.Price, m.Hour, m.Minute, i)
		require.NoError(t, err)
	}
}

func deleteTickets(t testing.TB, rdb *redis.Client) {
	require.NoError(t, rdb.Del(context.Background(), ticketStream).Err())
}

func readTickets(t testing.TB, rdb *redis.Client) []domain.Ticket {
	messages, err := rdb.XRange(context.Background(), ticketStream, "-", "+").Result()
	require.NoError(t, err)

	tickets := make([]domain.Ticket, 0, len(messages))
	for _, msg := range messages {
		raw, ok := msg.Values["ticket"].(string)
		require.True(t, ok, "stream entry %s has no ticket field", msg.ID)

		var ticket domain.Ticket
		require.NoError(t, json.Unmarshal([]byte(raw), &ticket))
		tickets = append(tickets, ticket)
	}

	return tickets
}
