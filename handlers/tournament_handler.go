package handlers

import (
	"net/http"
	"time"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/Dosada05/tournament-engine/services"
)

const serviceName = "tournament-engine"

// Version is overridden at build time with -ldflags.
var Version = "dev"

type TournamentHandler struct {
	tournamentService *services.TournamentService
	simulationService services.SimulationService
	reportService     services.ReportService
}

func NewTournamentHandler(
	ts *services.TournamentService,
	simulation services.SimulationService,
	reports services.ReportService,
) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
		simulationService: simulation,
		reportService:     reports,
	}
}

// HealthHandler
// @Summary Проверка работоспособности
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *TournamentHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	response := jsonResponse{
		"status":        "ok",
		"service":       serviceName,
		"version":       Version,
		"tournament_id": h.tournamentService.ID(),
		"phase":         h.tournamentService.Phase(r.Context()),
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetHandler
// @Summary Полный снимок турнира
// @Tags tournament
// @Produce json
// @Success 200 {object} models.Tournament
// @Router /tournament [get]
func (h *TournamentHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := h.tournamentService.Snapshot(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": snapshot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetHandler
// @Summary Начать новый турнир (сброс состояния)
// @Tags tournament
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.Tournament
// @Failure 401 {object} map[string]string
// @Router /tournament/reset [post]
func (h *TournamentHandler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	snapshot := h.tournamentService.NewTournament(r.Context())
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": snapshot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DrawHandler
// @Summary Жеребьёвка: посев 1..7 и генерация расписания лиги
// @Tags tournament
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Competitor
// @Failure 409 {object} map[string]string "Жеребьёвка уже проведена"
// @Router /tournament/draw [post]
func (h *TournamentHandler) DrawHandler(w http.ResponseWriter, r *http.Request) {
	competitors, err := h.tournamentService.PerformDraw(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	response := jsonResponse{
		"competitors": competitors,
		"schedule":    h.tournamentService.GetRounds(r.Context()),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StandingsHandler
// @Summary Турнирная таблица лиги
// @Tags tournament
// @Produce json
// @Success 200 {array} models.TournamentStanding
// @Router /tournament/standings [get]
func (h *TournamentHandler) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	standings := models.StandingsTable(h.tournamentService.GetStandings(r.Context()))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AdvanceToPlayoffsHandler
// @Summary Перейти к плей-офф (1-4, 2-3)
// @Tags tournament
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.Bracket
// @Failure 409 {object} map[string]string "Лига не завершена"
// @Failure 422 {object} map[string]string "Недостаточно участников"
// @Router /tournament/playoffs [post]
func (h *TournamentHandler) AdvanceToPlayoffsHandler(w http.ResponseWriter, r *http.Request) {
	bracket, err := h.tournamentService.AdvanceToPlayoffs(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// BracketHandler
// @Summary Сетка плей-офф
// @Tags tournament
// @Produce json
// @Success 200 {object} models.Bracket
// @Router /tournament/bracket [get]
func (h *TournamentHandler) BracketHandler(w http.ResponseWriter, r *http.Request) {
	bracket := h.tournamentService.GetBracket(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ChampionHandler
// @Summary Чемпион турнира
// @Tags tournament
// @Produce json
// @Success 200 {object} models.Competitor
// @Failure 404 {object} map[string]string "Финал ещё не сыгран"
// @Router /tournament/champion [get]
func (h *TournamentHandler) ChampionHandler(w http.ResponseWriter, r *http.Request) {
	champion := h.tournamentService.GetChampion(r.Context())
	if champion == nil {
		notFoundResponse(w, r)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"champion": champion}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RankingHandler
// @Summary Итоговое распределение мест
// @Description Пока чемпион не определён, возвращается таблица лиги и complete=false.
// @Tags tournament
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tournament/ranking [get]
func (h *TournamentHandler) RankingHandler(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.tournamentService.GetFinalRanking(r.Context())
	if err != nil && !services.IsIncomplete(err) {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	response := jsonResponse{
		"complete": err == nil,
		"ranking":  ranking,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SimulateHandler
// @Summary Симулировать открытые матчи текущей фазы
// @Tags tournament
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Match
// @Failure 409 {object} map[string]string
// @Router /tournament/simulate [post]
func (h *TournamentHandler) SimulateHandler(w http.ResponseWriter, r *http.Request) {
	recorded, err := h.simulationService.SimulatePhase(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	response := jsonResponse{
		"recorded": recorded,
		"phase":    h.tournamentService.Phase(r.Context()),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ReportHandler
// @Summary Текстовый отчёт о турнире
// @Tags reports
// @Produce plain
// @Success 200 {string} string
// @Router /tournament/report [get]
func (h *TournamentHandler) ReportHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeText(w, http.StatusOK, h.reportService.BuildReport(r.Context())); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PublishReportHandler
// @Summary Опубликовать отчёт в объектное хранилище
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 201 {object} storage.UploadResult
// @Failure 503 {object} map[string]string "Хранилище не настроено"
// @Router /tournament/report/publish [post]
func (h *TournamentHandler) PublishReportHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.PublishReport(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"report": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
