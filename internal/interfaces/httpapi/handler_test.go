package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"golang.org/x/crypto/bcrypt"

	"github.com/lamberpool/matchday/internal/infrastructure/repository/memory"
	"github.com/lamberpool/matchday/internal/platform/id"
	"github.com/lamberpool/matchday/internal/platform/logging"
	"github.com/lamberpool/matchday/internal/usecase"
)

const (
	testClubName      = "Lamberpool FC"
	testAdminUser     = "gaffer"
	testAdminPassword = "sunday-league"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	store.Seed()

	ids := id.NewSequence("test")
	nop := logging.NewNop()

	teamService := usecase.NewTeamService(store.Teams(), store.Players(), testClubName)
	tournamentService := usecase.NewTournamentService(store.Tournaments(), store.Teams(), testClubName, ids)
	seasonService := usecase.NewSeasonService(store.Seasons(), store.Tournaments(), ids)
	competitionService := usecase.NewCompetitionService(store.Competitions(), store.Seasons(), ids)
	matchService := usecase.NewMatchService(store.Matches(), store.Competitions(), store.Teams(), store.Photos(), nil, testClubName, nop, ids)
	rosterService := usecase.NewRosterService(store.Players(), store.Teams(), store.Lineups(), store.Ratings(), store.GuestRatings(), testClubName, 2, ids)
	lineupService := usecase.NewLineupService(store.Lineups(), store.Matches(), store.Players(), store.Ratings(), store.GuestRatings(), ids)
	judgeService := usecase.NewJudgeService(store.Judges(), store.GuestJudges(), store.Matches(), ids)
	ratingService := usecase.NewRatingService(store.Ratings(), store.GuestRatings(), store.Lineups(), store.Judges(), store.GuestJudges(), ids)
	photoService := usecase.NewPhotoService(store.Photos(), store.Matches(), nil, nop, ids)
	championshipService := usecase.NewChampionshipService(store.Championships(), ids)
	filterService := usecase.NewFilterService(store.Tournaments(), store.Seasons(), store.Competitions())

	handler := NewHandler(
		teamService,
		tournamentService,
		seasonService,
		competitionService,
		matchService,
		rosterService,
		lineupService,
		judgeService,
		ratingService,
		photoService,
		championshipService,
		filterService,
		nop,
	)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate password hash: %v", err)
	}

	return NewRouter(handler, nop, RouterConfig{
		AdminCredentials:   AdminCredentials{Username: testAdminUser, PasswordHash: string(hash)},
		CORSAllowedOrigins: []string{"*"},
	})
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	data, ok := body["data"]
	if !ok {
		t.Fatalf("expected data key, body: %s", rec.Body.String())
	}
	return data
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_GetClub(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	data, _ := decodeData(t, rec).(map[string]any)
	if got, _ := data["name"].(string); got != testClubName {
		t.Fatalf("expected club name %q, got %v", testClubName, data["name"])
	}
}

func TestRouter_ListMatches(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/matches?competitionId="+memory.SeedCompetitionID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	items, _ := decodeData(t, rec).([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded matches, got %d", len(items))
	}
}

func TestRouter_CreateMatch_RequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"competitionId":"` + memory.SeedCompetitionID + `","opponent":"Harbour Athletic","date":"2025-04-06T10:00:00Z","goalsFor":2,"goalsAgainst":1}`

	req := httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without credentials, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(payload))
	req.SetBasicAuth(testAdminUser, testAdminPassword)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d body %s", rec.Code, rec.Body.String())
	}

	data, _ := decodeData(t, rec).(map[string]any)
	if got, _ := data["result"].(string); got != "W" {
		t.Fatalf("expected derived result W, got %v", data["result"])
	}
}

func TestRouter_CreateMatch_RejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"competitionId":"` + memory.SeedCompetitionID + `","opponent":"Harbour Athletic","date":"2025-04-06T10:00:00Z","goalsFor":2,"goalsAgainst":1,"bogus":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(payload))
	req.SetBasicAuth(testAdminUser, testAdminPassword)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown field, got %d", rec.Code)
	}
}

func TestRouter_RatingFlow(t *testing.T) {
	router := newTestRouter(t)

	entryPayload := `{"matchId":"mtc-001","playerId":"ply-09","position":"ST","goals":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/match-players", strings.NewReader(entryPayload))
	req.SetBasicAuth(testAdminUser, testAdminPassword)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create match player failed: %d body %s", rec.Code, rec.Body.String())
	}
	entry, _ := decodeData(t, rec).(map[string]any)
	entryID, _ := entry["id"].(string)
	if entryID == "" {
		t.Fatalf("expected match player id in response")
	}

	ratingPayload := `{"matchPlayerId":"` + entryID + `","judgeId":"jdg-01","score":8}`
	req = httptest.NewRequest(http.MethodPost, "/api/ratings", strings.NewReader(ratingPayload))
	req.SetBasicAuth(testAdminUser, testAdminPassword)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert rating failed: %d body %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/ratings/"+entryID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list ratings failed: %d", rec.Code)
	}
	ratings, _ := decodeData(t, rec).(map[string]any)
	if got, _ := ratings["averageRating"].(float64); got != 8 {
		t.Fatalf("expected average rating 8, got %v", ratings["averageRating"])
	}
}

func TestRouter_RatingScoreOutOfRange(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"matchPlayerId":"whatever","judgeId":"jdg-01","score":11}`
	req := httptest.NewRequest(http.MethodPost, "/api/ratings", strings.NewReader(payload))
	req.SetBasicAuth(testAdminUser, testAdminPassword)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for score out of range, got %d", rec.Code)
	}
}

func TestRouter_DeleteCompetition_CascadesUpward(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/competitions/cmp-2024-regular", nil)
	req.SetBasicAuth(testAdminUser, testAdminPassword)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete competition failed: %d body %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/seasons/"+memory.SeedTournamentID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	seasons, _ := decodeData(t, rec).([]any)
	if len(seasons) != 1 {
		t.Fatalf("expected emptied 2024 season to be removed, got %d seasons", len(seasons))
	}
}

func TestRouter_DeleteChampionship_NoContent(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/championships/chp-2023-d2", nil)
	req.SetBasicAuth(testAdminUser, testAdminPassword)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
}

func TestRouter_FilterOptions(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/filters/options", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	data, _ := decodeData(t, rec).(map[string]any)
	years, _ := data["years"].([]any)
	if len(years) != 2 {
		t.Fatalf("expected 2 distinct years, got %v", data["years"])
	}
}
