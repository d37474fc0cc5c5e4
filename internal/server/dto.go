package server

import (
	"github.com/mmynk/tripcraft/internal/models"
	"github.com/mmynk/tripcraft/internal/service"
	"github.com/mmynk/tripcraft/internal/translate"
)

// Request and response schemas. All field names are camelCase to match the
// portal client.

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type planRequest struct {
	Name             string            `json:"name"`
	Config           models.PlanConfig `json:"config"`
	PublicVisibility bool              `json:"publicVisibility"`
	PublicRole       models.Role       `json:"publicRole"`
}

type planResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Config           planConfigResponse `json:"config"`
	PublicVisibility bool               `json:"publicVisibility"`
	PublicRole       models.Role        `json:"publicRole"`
	Role             models.Role        `json:"role,omitempty"`
	CreatedAt        int64              `json:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt"`
}

type planConfigResponse struct {
	DateStart models.Date       `json:"dateStart"`
	DateEnd   models.Date       `json:"dateEnd"`
	Details   []planDayResponse `json:"details"`
}

type planDayResponse struct {
	Date                models.Date                    `json:"date"`
	Destinations        []models.Destination           `json:"destinations"`
	Schedules           []models.ScheduleEntry         `json:"schedules"`
	DestinationHolidays map[string]models.Translations `json:"destinationHolidays,omitempty"`
}

type plansResponse struct {
	Plans []planResponse `json:"plans"`
}

// toPlanResponse flattens a PlanView for the caller; Role carries the
// caller's own membership role when they have one.
func toPlanResponse(view *service.PlanView, userID string) planResponse {
	p := view.Plan
	details := make([]planDayResponse, len(p.Config.Details))
	for i, day := range p.Config.Details {
		details[i] = planDayResponse{
			Date:         day.Date,
			Destinations: day.Destinations,
			Schedules:    day.Schedules,
		}
		if i < len(view.Holidays) && len(view.Holidays[i]) > 0 {
			details[i].DestinationHolidays = view.Holidays[i]
		}
	}

	resp := planResponse{
		ID:   p.ID,
		Name: p.Name,
		Config: planConfigResponse{
			DateStart: p.Config.DateStart,
			DateEnd:   p.Config.DateEnd,
			Details:   details,
		},
		PublicVisibility: p.PublicVisibility,
		PublicRole:       p.PublicRole,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if m := p.MembershipFor(userID); m != nil {
		resp.Role = m.Role
	}
	return resp
}

func toPlansResponse(views []*service.PlanView, userID string) plansResponse {
	plans := make([]planResponse, len(views))
	for i, v := range views {
		plans[i] = toPlanResponse(v, userID)
	}
	return plansResponse{Plans: plans}
}

// pageResponse is the paginated world query envelope. NextPageIndex is
// omitted once the window reaches the last match.
type pageResponse[T any] struct {
	TotalCount    int  `json:"totalCount"`
	NextPageIndex *int `json:"nextPageIndex,omitempty"`
	Results       []T  `json:"results"`
}

func newPageResponse[T any](results []T, total, pageIndex, pageSize int) pageResponse[T] {
	resp := pageResponse[T]{TotalCount: total, Results: results}
	if (pageIndex+1)*pageSize < total {
		next := pageIndex + 1
		resp.NextPageIndex = &next
	}
	return resp
}

type regionResponse struct {
	ID   int64               `json:"id"`
	Name models.Translations `json:"name"`
}

type subRegionResponse struct {
	ID     int64               `json:"id"`
	Name   models.Translations `json:"name"`
	Region *regionResponse     `json:"region,omitempty"`
}

type countryResponse struct {
	ID        int64               `json:"id"`
	Name      models.Translations `json:"name"`
	ISO2      string              `json:"iso2"`
	ISO3      string              `json:"iso3"`
	Capital   string              `json:"capital,omitempty"`
	Latitude  *float64            `json:"latitude,omitempty"`
	Longitude *float64            `json:"longitude,omitempty"`
	Emoji     string              `json:"emoji,omitempty"`
	Region    *regionResponse     `json:"region,omitempty"`
	SubRegion *subRegionResponse  `json:"subRegion,omitempty"`
}

type stateResponse struct {
	ID        int64               `json:"id"`
	Name      models.Translations `json:"name"`
	Latitude  *float64            `json:"latitude,omitempty"`
	Longitude *float64            `json:"longitude,omitempty"`
	Country   *countryResponse    `json:"country,omitempty"`
}

type cityResponse struct {
	ID        int64               `json:"id"`
	Name      models.Translations `json:"name"`
	Latitude  *float64            `json:"latitude,omitempty"`
	Longitude *float64            `json:"longitude,omitempty"`
	State     *stateResponse      `json:"state,omitempty"`
	Country   *countryResponse    `json:"country,omitempty"`
}

// worldMapper converts world models into response schemas, deriving the
// three-language name bundles from stored translation data.
type worldMapper struct {
	translate *translate.Service
}

func (m worldMapper) region(r *models.Region) *regionResponse {
	if r == nil {
		return nil
	}
	return &regionResponse{
		ID:   r.ID,
		Name: m.translate.StoredBundle(r.Name, r.RawTranslations, translate.KeyCN),
	}
}

func (m worldMapper) subRegion(sr *models.SubRegion) *subRegionResponse {
	if sr == nil {
		return nil
	}
	return &subRegionResponse{
		ID:     sr.ID,
		Name:   m.translate.StoredBundle(sr.Name, sr.RawTranslations, translate.KeyChinese),
		Region: m.region(sr.Region),
	}
}

func (m worldMapper) country(c *models.Country) *countryResponse {
	if c == nil {
		return nil
	}
	return &countryResponse{
		ID:        c.ID,
		Name:      m.translate.StoredBundle(c.Name, c.RawTranslations, translate.KeyCN),
		ISO2:      c.ISO2,
		ISO3:      c.ISO3,
		Capital:   c.Capital,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Emoji:     c.Emoji,
		Region:    m.region(c.Region),
		SubRegion: m.subRegion(c.SubRegion),
	}
}

func (m worldMapper) state(st *models.State) *stateResponse {
	if st == nil {
		return nil
	}
	return &stateResponse{
		ID:        st.ID,
		Name:      m.translate.Bundle(st.Name),
		Latitude:  st.Latitude,
		Longitude: st.Longitude,
		Country:   m.country(st.Country),
	}
}

func (m worldMapper) city(c *models.City) *cityResponse {
	if c == nil {
		return nil
	}
	return &cityResponse{
		ID:        c.ID,
		Name:      m.translate.Bundle(c.Name),
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		State:     m.state(c.State),
		Country:   m.country(c.Country),
	}
}
