package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/mmynk/tripcraft/internal/apperr"
	"github.com/mmynk/tripcraft/internal/storage"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	filter, err := parseFilter(query)
	if err != nil {
		writeError(w, err)
		return
	}

	regions, err := s.world.Regions(r.Context(), query.Get("name"), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]regionResponse, len(regions))
	for i := range regions {
		results[i] = *s.mapper.region(&regions[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleSubRegions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	filter, err := parseFilter(query)
	if err != nil {
		writeError(w, err)
		return
	}

	subRegions, err := s.world.SubRegions(r.Context(), query.Get("name"), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]subRegionResponse, len(subRegions))
	for i := range subRegions {
		results[i] = *s.mapper.subRegion(&subRegions[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	filter, page, err := parseFilterAndPage(query)
	if err != nil {
		writeError(w, err)
		return
	}

	countries, total, err := s.world.Countries(r.Context(), query.Get("name"), filter, page)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]countryResponse, len(countries))
	for i := range countries {
		results[i] = *s.mapper.country(&countries[i])
	}
	writeJSON(w, http.StatusOK, newPageResponse(results, total, page.Index, page.Size))
}

func (s *Server) handleStates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	filter, page, err := parseFilterAndPage(query)
	if err != nil {
		writeError(w, err)
		return
	}

	states, total, err := s.world.States(r.Context(), query.Get("name"), filter, page)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]stateResponse, len(states))
	for i := range states {
		results[i] = *s.mapper.state(&states[i])
	}
	writeJSON(w, http.StatusOK, newPageResponse(results, total, page.Index, page.Size))
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	filter, page, err := parseFilterAndPage(query)
	if err != nil {
		writeError(w, err)
		return
	}

	cities, total, err := s.world.Cities(r.Context(), query.Get("name"), filter, page)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]cityResponse, len(cities))
	for i := range cities {
		results[i] = *s.mapper.city(&cities[i])
	}
	writeJSON(w, http.StatusOK, newPageResponse(results, total, page.Index, page.Size))
}

func parseFilter(query url.Values) (storage.WorldFilter, error) {
	var filter storage.WorldFilter
	for param, field := range map[string]**int64{
		"id":          &filter.ID,
		"regionId":    &filter.RegionID,
		"subRegionId": &filter.SubRegionID,
		"countryId":   &filter.CountryID,
		"stateId":     &filter.StateID,
	} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return storage.WorldFilter{}, apperr.InvalidRequest("invalid " + param)
		}
		*field = &v
	}
	return filter, nil
}

func parseFilterAndPage(query url.Values) (storage.WorldFilter, storage.Page, error) {
	filter, err := parseFilter(query)
	if err != nil {
		return storage.WorldFilter{}, storage.Page{}, err
	}

	page := storage.Page{Index: 0, Size: defaultPageSize}
	if raw := query.Get("pageIndex"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return storage.WorldFilter{}, storage.Page{}, apperr.InvalidRequest("invalid pageIndex")
		}
		page.Index = v
	}
	if raw := query.Get("pageSize"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxPageSize {
			return storage.WorldFilter{}, storage.Page{}, apperr.InvalidRequest("invalid pageSize")
		}
		page.Size = v
	}
	return filter, page, nil
}
