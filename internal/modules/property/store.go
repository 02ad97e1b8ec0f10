// README: Property store backed by PostgreSQL; one query per dataset question.
package property

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `
	id, name, owner, area, price_per_night, beds, max_guests,
	wifi_speed, wifi_password, rating, style, type,
	has_pool, has_hot_tub, has_cameras, check_in, parking, lat, lng`

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetByName resolves a property by its display name, case-insensitively.
func (s *Store) GetByName(ctx context.Context, name string) (*Property, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE LOWER(name) = LOWER($1)`, name,
	)
	p, err := scanProperty(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// ListAll returns the whole portfolio, name-ordered.
func (s *Store) ListAll(ctx context.Context) ([]Property, error) {
	return s.list(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY name`)
}

// OwnerWithMostProperties returns the owner holding the largest share.
func (s *Store) OwnerWithMostProperties(ctx context.Context) (*OwnerCount, error) {
	row := s.db.QueryRow(ctx, `
		SELECT owner, COUNT(*) AS n
		FROM properties
		GROUP BY owner
		ORDER BY n DESC, owner
		LIMIT 1`)
	var oc OwnerCount
	if err := row.Scan(&oc.Owner, &oc.Count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &oc, nil
}

// CountByOwner counts properties held by the named owner.
func (s *Store) CountByOwner(ctx context.Context, owner string) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM properties WHERE LOWER(owner) = LOWER($1)`, owner,
	).Scan(&n)
	return n, err
}

// ListByOwner returns the named owner's properties.
func (s *Store) ListByOwner(ctx context.Context, owner string) ([]Property, error) {
	return s.list(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE LOWER(owner) = LOWER($1)
		ORDER BY name`, owner)
}

// WithPool returns properties with a pool or a hot tub.
func (s *Store) WithPool(ctx context.Context) ([]Property, error) {
	return s.list(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE has_pool OR has_hot_tub
		ORDER BY name`)
}

// WithoutCameras returns camera-free properties.
func (s *Store) WithoutCameras(ctx context.Context) ([]Property, error) {
	return s.list(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE NOT has_cameras
		ORDER BY name`)
}

// HighestRated returns the single best-rated property.
func (s *Store) HighestRated(ctx context.Context) (*Property, error) {
	return s.one(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		ORDER BY rating DESC, name
		LIMIT 1`)
}

// LowestRated returns the single worst-rated property.
func (s *Store) LowestRated(ctx context.Context) (*Property, error) {
	return s.one(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		ORDER BY rating ASC, name
		LIMIT 1`)
}

// AbovePrice returns properties with a nightly rate strictly above min.
func (s *Store) AbovePrice(ctx context.Context, min float64) ([]Property, error) {
	return s.list(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE price_per_night > $1
		ORDER BY price_per_night DESC`, min)
}

// ByBeds returns properties with exactly beds bedrooms.
func (s *Store) ByBeds(ctx context.Context, beds int) ([]Property, error) {
	return s.list(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE beds = $1
		ORDER BY name`, beds)
}

// ByMaxGuests returns properties that sleep at least guests people.
func (s *Store) ByMaxGuests(ctx context.Context, guests int) ([]Property, error) {
	return s.list(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE max_guests >= $1
		ORDER BY max_guests DESC`, guests)
}

// WifiAbove returns properties whose measured WiFi beats mbps.
func (s *Store) WifiAbove(ctx context.Context, mbps int) ([]Property, error) {
	return s.list(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE wifi_speed > $1
		ORDER BY wifi_speed DESC`, mbps)
}

// ByStyle matches properties by architectural style ("mansion", "cabin", ...).
func (s *Store) ByStyle(ctx context.Context, style string) ([]Property, error) {
	return s.list(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE style ILIKE $1
		ORDER BY name`, "%"+style+"%")
}

// ByType matches properties by listing type ("villa", "apartment", ...).
func (s *Store) ByType(ctx context.Context, typ string) ([]Property, error) {
	return s.list(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE type ILIKE $1
		ORDER BY name`, "%"+typ+"%")
}

// Areas returns the distinct areas the portfolio spans.
func (s *Store) Areas(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT area FROM properties ORDER BY area`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

// InArea matches properties whose area contains the given phrase.
func (s *Store) InArea(ctx context.Context, area string) ([]Property, error) {
	return s.list(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE area ILIKE $1
		ORDER BY name`, "%"+area+"%")
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Property, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *Store) one(ctx context.Context, query string, args ...any) (*Property, error) {
	p, err := scanProperty(s.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func scanProperty(row pgx.Row) (*Property, error) {
	var p Property
	err := row.Scan(
		&p.ID, &p.Name, &p.Owner, &p.Area, &p.PricePerNight, &p.Beds, &p.MaxGuests,
		&p.WifiSpeed, &p.WifiPassword, &p.Rating, &p.Style, &p.Type,
		&p.HasPool, &p.HasHotTub, &p.HasCameras, &p.CheckIn, &p.Parking, &p.Lat, &p.Lng,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
