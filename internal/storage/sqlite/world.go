package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mmynk/tripcraft/internal/models"
	"github.com/mmynk/tripcraft/internal/storage"
)

// World reference data is immutable: everything below is read-only. Name
// search goes through the FTS5 tables with prefix queries; structured
// filters go through the base tables.

const regionCols = "r.id, r.name, r.translations"

const subRegionCols = "sr.id, sr.name, sr.region_id, sr.translations, " + regionCols

const countryCols = `c.id, c.name, COALESCE(c.iso3, ''), COALESCE(c.iso2, ''), COALESCE(c.capital, ''),
	c.latitude, c.longitude, COALESCE(c.emoji, ''), COALESCE(c.region_id, 0), COALESCE(c.subregion_id, 0), c.translations,
	r.id, r.name, r.translations,
	sr.id, sr.name, sr.region_id, sr.translations`

const countryJoins = `LEFT JOIN regions r ON r.id = c.region_id
	LEFT JOIN subregions sr ON sr.id = c.subregion_id`

const stateCols = "s.id, s.name, s.latitude, s.longitude, s.country_id, " + countryCols

const stateJoins = "JOIN countries c ON c.id = s.country_id " + countryJoins

const cityCols = "ct.id, ct.name, ct.latitude, ct.longitude, ct.state_id, ct.country_id, " +
	"s.id, s.name, s.latitude, s.longitude, s.country_id, " + countryCols

const cityJoins = `JOIN states s ON s.id = ct.state_id
	JOIN countries c ON c.id = ct.country_id ` + countryJoins

// ListRegions returns regions matching the filter.
func (s *Store) ListRegions(ctx context.Context, filter storage.WorldFilter) ([]models.Region, error) {
	query := "SELECT " + regionCols + " FROM regions r"
	where, args := buildWhere(map[string]*int64{"r.id": filter.ID})
	rows, err := s.db.QueryContext(ctx, query+where+" ORDER BY r.id", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	defer rows.Close()
	return collectRegions(rows)
}

// SearchRegions runs a full-text prefix search on region names.
func (s *Store) SearchRegions(ctx context.Context, name string) ([]models.Region, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+regionCols+" FROM regions_fts f JOIN regions r ON r.id = f.rowid WHERE regions_fts MATCH ? ORDER BY f.rank",
		prefixQuery(name),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search regions: %w", err)
	}
	defer rows.Close()
	return collectRegions(rows)
}

// ListSubRegions returns sub-regions matching the filter, with their region
// loaded.
func (s *Store) ListSubRegions(ctx context.Context, filter storage.WorldFilter) ([]models.SubRegion, error) {
	query := "SELECT " + subRegionCols + " FROM subregions sr JOIN regions r ON r.id = sr.region_id"
	where, args := buildWhere(map[string]*int64{
		"sr.id":        filter.ID,
		"sr.region_id": filter.RegionID,
	})
	rows, err := s.db.QueryContext(ctx, query+where+" ORDER BY sr.id", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub-regions: %w", err)
	}
	defer rows.Close()
	return collectSubRegions(rows)
}

// SearchSubRegions runs a full-text prefix search on sub-region names.
func (s *Store) SearchSubRegions(ctx context.Context, name string) ([]models.SubRegion, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+subRegionCols+" FROM subregions_fts f JOIN subregions sr ON sr.id = f.rowid JOIN regions r ON r.id = sr.region_id WHERE subregions_fts MATCH ? ORDER BY f.rank",
		prefixQuery(name),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search sub-regions: %w", err)
	}
	defer rows.Close()
	return collectSubRegions(rows)
}

// ListCountries returns one page of countries matching the filter plus the
// total count for the filter.
func (s *Store) ListCountries(ctx context.Context, filter storage.WorldFilter, page storage.Page) ([]models.Country, int, error) {
	conds := map[string]*int64{
		"c.id":           filter.ID,
		"c.region_id":    filter.RegionID,
		"c.subregion_id": filter.SubRegionID,
	}
	where, args := buildWhere(conds)

	total, err := s.countRows(ctx, "countries c", where, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + countryCols + " FROM countries c " + countryJoins + where +
		" ORDER BY c.id LIMIT ? OFFSET ?"
	rows, err := s.db.QueryContext(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list countries: %w", err)
	}
	defer rows.Close()

	countries, err := collectCountries(rows)
	return countries, total, err
}

// SearchCountries runs a paginated full-text prefix search on country names.
func (s *Store) SearchCountries(ctx context.Context, name string, page storage.Page) ([]models.Country, int, error) {
	match := prefixQuery(name)

	var total int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM countries_fts WHERE countries_fts MATCH ?", match,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count countries: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+countryCols+" FROM countries_fts f JOIN countries c ON c.id = f.rowid "+countryJoins+
			" WHERE countries_fts MATCH ? ORDER BY f.rank LIMIT ? OFFSET ?",
		match, page.Size, page.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search countries: %w", err)
	}
	defer rows.Close()

	countries, err := collectCountries(rows)
	return countries, total, err
}

// ListStates returns one page of states matching the filter plus the total
// count, each with its country loaded.
func (s *Store) ListStates(ctx context.Context, filter storage.WorldFilter, page storage.Page) ([]models.State, int, error) {
	conds := map[string]*int64{
		"s.id":         filter.ID,
		"s.country_id": filter.CountryID,
	}
	where, args := buildWhere(conds)

	total, err := s.countRows(ctx, "states s", where, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + stateCols + " FROM states s " + stateJoins + where +
		" ORDER BY s.id LIMIT ? OFFSET ?"
	rows, err := s.db.QueryContext(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list states: %w", err)
	}
	defer rows.Close()

	states, err := collectStates(rows)
	return states, total, err
}

// SearchStates runs a paginated full-text prefix search on state names.
func (s *Store) SearchStates(ctx context.Context, name string, page storage.Page) ([]models.State, int, error) {
	match := prefixQuery(name)

	var total int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM states_fts WHERE states_fts MATCH ?", match,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count states: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+stateCols+" FROM states_fts f JOIN states s ON s.id = f.rowid "+stateJoins+
			" WHERE states_fts MATCH ? ORDER BY f.rank LIMIT ? OFFSET ?",
		match, page.Size, page.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search states: %w", err)
	}
	defer rows.Close()

	states, err := collectStates(rows)
	return states, total, err
}

// ListCities returns one page of cities matching the filter plus the total
// count, each with its state and country loaded.
func (s *Store) ListCities(ctx context.Context, filter storage.WorldFilter, page storage.Page) ([]models.City, int, error) {
	conds := map[string]*int64{
		"ct.id":         filter.ID,
		"ct.state_id":   filter.StateID,
		"ct.country_id": filter.CountryID,
	}
	where, args := buildWhere(conds)

	total, err := s.countRows(ctx, "cities ct", where, args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + cityCols + " FROM cities ct " + cityJoins + where +
		" ORDER BY ct.id LIMIT ? OFFSET ?"
	rows, err := s.db.QueryContext(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	cities, err := collectCities(rows)
	return cities, total, err
}

// SearchCities runs a paginated full-text prefix search on city names.
func (s *Store) SearchCities(ctx context.Context, name string, page storage.Page) ([]models.City, int, error) {
	match := prefixQuery(name)

	var total int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cities_fts WHERE cities_fts MATCH ?", match,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count cities: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+cityCols+" FROM cities_fts f JOIN cities ct ON ct.id = f.rowid "+cityJoins+
			" WHERE cities_fts MATCH ? ORDER BY f.rank LIMIT ? OFFSET ?",
		match, page.Size, page.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search cities: %w", err)
	}
	defer rows.Close()

	cities, err := collectCities(rows)
	return cities, total, err
}

// GetCountry retrieves one country with region and sub-region loaded.
func (s *Store) GetCountry(ctx context.Context, id int64) (*models.Country, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+countryCols+" FROM countries c "+countryJoins+" WHERE c.id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	defer rows.Close()

	countries, err := collectCountries(rows)
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, storage.ErrNotFound
	}
	return &countries[0], nil
}

// GetState retrieves one state with its country loaded.
func (s *Store) GetState(ctx context.Context, id int64) (*models.State, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+stateCols+" FROM states s "+stateJoins+" WHERE s.id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get state: %w", err)
	}
	defer rows.Close()

	states, err := collectStates(rows)
	if err != nil {
		return nil, err
	}
	if len(states) == 0 {
		return nil, storage.ErrNotFound
	}
	return &states[0], nil
}

// GetCity retrieves one city with its state and country loaded.
func (s *Store) GetCity(ctx context.Context, id int64) (*models.City, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+cityCols+" FROM cities ct "+cityJoins+" WHERE ct.id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	defer rows.Close()

	cities, err := collectCities(rows)
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return nil, storage.ErrNotFound
	}
	return &cities[0], nil
}

// prefixQuery builds an FTS5 prefix match ("term"*) with quotes escaped.
func prefixQuery(name string) string {
	escaped := strings.ReplaceAll(name, `"`, `""`)
	return `"` + escaped + `"*`
}

// buildWhere assembles a WHERE clause from optional equality conditions.
func buildWhere(conds map[string]*int64) (string, []any) {
	var clauses []string
	var args []any
	// deterministic order keeps the SQL stable for the same filter
	for _, col := range []string{
		"r.id", "sr.id", "sr.region_id", "c.id", "c.region_id", "c.subregion_id",
		"s.id", "s.country_id", "ct.id", "ct.state_id", "ct.country_id",
	} {
		if v, ok := conds[col]; ok && v != nil {
			clauses = append(clauses, col+" = ?")
			args = append(args, *v)
		}
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (s *Store) countRows(ctx context.Context, from, where string, args []any) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+from+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", from, err)
	}
	return total, nil
}

func collectRegions(rows *sql.Rows) ([]models.Region, error) {
	regions := []models.Region{}
	for rows.Next() {
		var r models.Region
		if err := rows.Scan(&r.ID, &r.Name, &r.RawTranslations); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate regions: %w", err)
	}
	return regions, nil
}

func collectSubRegions(rows *sql.Rows) ([]models.SubRegion, error) {
	subRegions := []models.SubRegion{}
	for rows.Next() {
		var sr models.SubRegion
		var r models.Region
		if err := rows.Scan(&sr.ID, &sr.Name, &sr.RegionID, &sr.RawTranslations,
			&r.ID, &r.Name, &r.RawTranslations); err != nil {
			return nil, fmt.Errorf("failed to scan sub-region: %w", err)
		}
		sr.Region = &r
		subRegions = append(subRegions, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sub-regions: %w", err)
	}
	return subRegions, nil
}

// countryScan holds the nullable scratch columns for one countryCols block.
// targets returns the scan destinations; apply moves the scanned values onto
// the Country after a successful Scan.
type countryScan struct {
	dst                *models.Country
	lat, lng           sql.NullFloat64
	regionID           sql.NullInt64
	regionName         sql.NullString
	regionTranslations sql.NullString
	srID, srRegionID   sql.NullInt64
	srName             sql.NullString
	srTranslations     sql.NullString
}

func (cs *countryScan) targets() []any {
	return []any{
		&cs.dst.ID, &cs.dst.Name, &cs.dst.ISO3, &cs.dst.ISO2, &cs.dst.Capital,
		&cs.lat, &cs.lng, &cs.dst.Emoji, &cs.dst.RegionID, &cs.dst.SubRegionID, &cs.dst.RawTranslations,
		&cs.regionID, &cs.regionName, &cs.regionTranslations,
		&cs.srID, &cs.srName, &cs.srRegionID, &cs.srTranslations,
	}
}

func (cs *countryScan) apply() {
	if cs.lat.Valid {
		cs.dst.Latitude = &cs.lat.Float64
	}
	if cs.lng.Valid {
		cs.dst.Longitude = &cs.lng.Float64
	}
	if cs.regionID.Valid {
		cs.dst.Region = &models.Region{
			ID:              cs.regionID.Int64,
			Name:            cs.regionName.String,
			RawTranslations: cs.regionTranslations.String,
		}
	}
	if cs.srID.Valid {
		cs.dst.SubRegion = &models.SubRegion{
			ID:              cs.srID.Int64,
			Name:            cs.srName.String,
			RegionID:        cs.srRegionID.Int64,
			RawTranslations: cs.srTranslations.String,
		}
	}
}

func collectCountries(rows *sql.Rows) ([]models.Country, error) {
	countries := []models.Country{}
	for rows.Next() {
		var c models.Country
		cs := countryScan{dst: &c}
		if err := rows.Scan(cs.targets()...); err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		cs.apply()
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate countries: %w", err)
	}
	return countries, nil
}

func collectStates(rows *sql.Rows) ([]models.State, error) {
	states := []models.State{}
	for rows.Next() {
		var st models.State
		var country models.Country
		var lat, lng sql.NullFloat64
		cs := countryScan{dst: &country}

		targets := append([]any{&st.ID, &st.Name, &lat, &lng, &st.CountryID}, cs.targets()...)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		cs.apply()

		if lat.Valid {
			st.Latitude = &lat.Float64
		}
		if lng.Valid {
			st.Longitude = &lng.Float64
		}
		st.Country = &country
		states = append(states, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate states: %w", err)
	}
	return states, nil
}

func collectCities(rows *sql.Rows) ([]models.City, error) {
	cities := []models.City{}
	for rows.Next() {
		var city models.City
		var state models.State
		var country models.Country
		var cityLat, cityLng, stateLat, stateLng sql.NullFloat64
		cs := countryScan{dst: &country}

		targets := append([]any{
			&city.ID, &city.Name, &cityLat, &cityLng, &city.StateID, &city.CountryID,
			&state.ID, &state.Name, &stateLat, &stateLng, &state.CountryID,
		}, cs.targets()...)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cs.apply()

		if cityLat.Valid {
			city.Latitude = &cityLat.Float64
		}
		if cityLng.Valid {
			city.Longitude = &cityLng.Float64
		}
		if stateLat.Valid {
			state.Latitude = &stateLat.Float64
		}
		if stateLng.Valid {
			state.Longitude = &stateLng.Float64
		}
		state.Country = &country
		city.State = &state
		city.Country = &country
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cities: %w", err)
	}
	return cities, nil
}
