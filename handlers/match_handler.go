package handlers

import (
	"fmt"
	"net/http"

	"github.com/Dosada05/tournament-engine/services"
)

// ScheduleHandler
// @Summary Расписание лиги по турам
// @Tags matches
// @Produce json
// @Success 200 {array} services.ScheduleRound
// @Router /tournament/schedule [get]
func (h *TournamentHandler) ScheduleHandler(w http.ResponseWriter, r *http.Request) {
	rounds := h.tournamentService.GetRounds(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"rounds": rounds}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetMatchHandler
// @Summary Матч по идентификатору
// @Tags matches
// @Produce json
// @Param matchID path string true "ID матча (match_1..match_21, semifinal_1, semifinal_2, final)"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string
// @Router /tournament/matches/{matchID} [get]
func (h *TournamentHandler) GetMatchHandler(w http.ResponseWriter, r *http.Request) {
	matchID, err := getStringFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.tournamentService.GetMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordResultHandler
// @Summary Внести результат матча (по сетам)
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param matchID path string true "ID матча"
// @Param result body services.ScoreInput true "Счёт по сетам"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string "Некорректный счёт"
// @Failure 404 {object} map[string]string "Матч не найден"
// @Failure 409 {object} map[string]string "Матч уже завершён"
// @Failure 422 {object} map[string]string "Ничья недопустима"
// @Router /tournament/matches/{matchID}/result [post]
func (h *TournamentHandler) RecordResultHandler(w http.ResponseWriter, r *http.Request) {
	matchID, err := getStringFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ScoreInput
	if err := readJSON(w, r, &input); err != nil {
		mapServiceErrorToHTTP(w, r, fmt.Errorf("%w: %v", services.ErrInvalidScore, err))
		return
	}

	match, err := h.tournamentService.RecordResult(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"match": match,
		"phase": h.tournamentService.Phase(r.Context()),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
