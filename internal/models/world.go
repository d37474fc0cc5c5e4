package models

// Translations is a three-language name bundle. En is the canonical stored
// name; ZhHans and ZhHant are derived once from the stored translation data.
type Translations struct {
	En     string `json:"en"`
	ZhHans string `json:"zhHans"`
	ZhHant string `json:"zhHant"`
}

// Region is a top-level geographic region (e.g. Asia).
// World entities are immutable reference data seeded out of band.
type Region struct {
	ID int64

	// Name is the canonical English name.
	Name string

	// RawTranslations is the stored translations JSON for this row.
	// Three-language bundles are derived from it by the translate package.
	RawTranslations string
}

// SubRegion is a second-level region (e.g. Eastern Asia) within a Region.
type SubRegion struct {
	ID              int64
	Name            string
	RegionID        int64
	RawTranslations string

	Region *Region
}

// Country is an ISO-3166 country within a region and sub-region.
type Country struct {
	ID              int64
	Name            string
	ISO3            string
	ISO2            string
	Capital         string
	Latitude        *float64
	Longitude       *float64
	Emoji           string
	RegionID        int64
	SubRegionID     int64
	RawTranslations string

	Region    *Region
	SubRegion *SubRegion
}

// State is a first-level administrative division of a country.
type State struct {
	ID        int64
	Name      string
	Latitude  *float64
	Longitude *float64
	CountryID int64

	Country *Country
}

// City belongs to a state and a country.
type City struct {
	ID        int64
	Name      string
	Latitude  *float64
	Longitude *float64
	StateID   int64
	CountryID int64

	State   *State
	Country *Country
}
