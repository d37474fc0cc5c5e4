package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/mmynk/tripcraft/internal/middleware"
	"github.com/mmynk/tripcraft/internal/service"
)

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.GetUserID(r.Context())

	views, err := s.plans.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlansResponse(views, userID))
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.GetUserID(r.Context())

	var req planRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	view, err := s.plans.Create(r.Context(), userID, planInput(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPlanResponse(view, userID))
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := middleware.GetUserID(r.Context())

	view, err := s.plans.Get(r.Context(), ps.ByName("id"), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(view, userID))
}

func (s *Server) handleUpdatePlan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := middleware.GetUserID(r.Context())

	var req planRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	view, err := s.plans.Update(r.Context(), ps.ByName("id"), userID, planInput(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(view, userID))
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := middleware.GetUserID(r.Context())

	views, err := s.plans.Delete(r.Context(), ps.ByName("id"), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlansResponse(views, userID))
}

func planInput(req planRequest) service.PlanInput {
	return service.PlanInput{
		Name:             req.Name,
		Config:           req.Config,
		PublicVisibility: req.PublicVisibility,
		PublicRole:       req.PublicRole,
	}
}
