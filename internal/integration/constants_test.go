package integration_test

import "github.com/metinatakli/cinema-kiosk/internal/domain"

const (
	dbName         = "cinema_kiosk"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	ticketStream = "kiosk:tickets"
)

var testMovies = []domain.SeedMovie{
	{Name: "Metropolis", Price: 6, Hour: 14, Minute: 0},
	{Name: "Stalker", Price: 7, Hour: 18, Minute: 45},
	{Name: "Heat", Price: 9, Hour: 21, Minute: 15},
}
