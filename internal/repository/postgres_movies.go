package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-kiosk/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

// GetAll returns the kiosk seed set in insertion order. A database that has
// not been migrated yet reports domain.ErrRecordNotFound.
func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]domain.SeedMovie, error) {
	query := `SELECT name, price, showtime_hour, showtime_minute
		FROM kiosk_movies
		WHERE active
		ORDER BY position, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}
	defer rows.Close()

	movies := []domain.SeedMovie{}

	for rows.Next() {
		var movie domain.SeedMovie

		err := rows.Scan(
			&movie.Name,
			&movie.Price,
			&movie.Hour,
			&movie.Minute,
		)

		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return movies, nil
}
