package httpapi

import "net/http"

func registerRoutes(mux *http.ServeMux, h *Handler, creds AdminCredentials) {
	admin := func(handler http.HandlerFunc) http.Handler {
		return RequireAdmin(creds, handler)
	}

	mux.HandleFunc("GET /api/healthz", h.Healthz)

	mux.HandleFunc("GET /api/teams", h.GetClub)
	mux.HandleFunc("GET /api/teams/{id}", h.GetTeam)

	mux.HandleFunc("GET /api/tournaments", h.ListTournaments)
	mux.HandleFunc("GET /api/tournaments/active", h.GetActiveTournament)
	mux.Handle("POST /api/tournaments", admin(h.CreateTournament))

	mux.HandleFunc("GET /api/seasons/{tournamentId}", h.ListSeasons)
	mux.HandleFunc("GET /api/seasons/{tournamentId}/active", h.GetActiveSeason)
	mux.Handle("POST /api/seasons", admin(h.CreateSeason))
	mux.Handle("DELETE /api/seasons/{id}", admin(h.DeleteSeason))

	mux.HandleFunc("GET /api/competitions/{seasonId}", h.ListCompetitions)
	mux.HandleFunc("GET /api/competitions/{seasonId}/active", h.GetActiveCompetition)
	mux.Handle("POST /api/competitions", admin(h.CreateCompetition))
	mux.Handle("DELETE /api/competitions/{id}", admin(h.DeleteCompetition))
	mux.Handle("PUT /api/competitions/{id}/jersey", admin(h.SetCompetitionJersey))
	mux.Handle("DELETE /api/competitions/{id}/jersey", admin(h.ClearCompetitionJersey))
	mux.Handle("PUT /api/competitions/{id}/final-table-photo", admin(h.SetCompetitionFinalTablePhoto))
	mux.Handle("DELETE /api/competitions/{id}/final-table-photo", admin(h.ClearCompetitionFinalTablePhoto))

	mux.HandleFunc("GET /api/matches", h.ListMatches)
	mux.HandleFunc("GET /api/matches/{id}", h.GetMatch)
	mux.Handle("POST /api/matches", admin(h.CreateMatch))
	mux.Handle("PUT /api/matches/{id}", admin(h.UpdateMatch))
	mux.Handle("DELETE /api/matches/{id}", admin(h.DeleteMatch))
	mux.Handle("DELETE /api/matches", admin(h.DeleteAllMatches))

	mux.HandleFunc("GET /api/players", h.ListPlayers)
	mux.HandleFunc("GET /api/players/stats", h.ListPlayerStats)
	mux.HandleFunc("GET /api/players/{id}", h.GetPlayer)
	mux.Handle("POST /api/players", admin(h.CreatePlayer))
	mux.Handle("PUT /api/players/{id}", admin(h.UpdatePlayer))
	mux.Handle("DELETE /api/players/{id}", admin(h.DeletePlayer))

	mux.HandleFunc("GET /api/match-players/{matchId}", h.ListMatchPlayers)
	mux.Handle("POST /api/match-players", admin(h.CreateMatchPlayer))
	mux.Handle("PUT /api/match-players/{id}", admin(h.UpdateMatchPlayer))

	mux.HandleFunc("GET /api/judges", h.ListJudges)
	mux.Handle("POST /api/judges", admin(h.CreateJudge))

	mux.HandleFunc("GET /api/guest-judges/{matchId}", h.ListGuestJudges)
	mux.Handle("POST /api/guest-judges", admin(h.CreateGuestJudge))
	mux.Handle("DELETE /api/guest-judges/{id}", admin(h.DeleteGuestJudge))

	mux.HandleFunc("GET /api/ratings/{matchPlayerId}", h.ListRatings)
	mux.Handle("POST /api/ratings", admin(h.UpsertRating))
	mux.Handle("DELETE /api/ratings", admin(h.DeleteAllRatings))

	mux.HandleFunc("GET /api/guest-ratings/{matchPlayerId}", h.ListGuestRatings)
	mux.Handle("POST /api/guest-ratings", admin(h.UpsertGuestRating))
	mux.Handle("DELETE /api/guest-ratings", admin(h.DeleteAllGuestRatings))

	mux.HandleFunc("GET /api/photos/{matchId}", h.ListPhotos)
	mux.Handle("POST /api/photos", admin(h.CreatePhoto))
	mux.Handle("DELETE /api/photos/{id}", admin(h.DeletePhoto))

	mux.HandleFunc("GET /api/championships", h.ListChampionships)
	mux.HandleFunc("GET /api/championships/{year}", h.ListChampionshipsByYear)
	mux.Handle("POST /api/championships", admin(h.CreateChampionship))
	mux.Handle("PUT /api/championships/{id}", admin(h.UpdateChampionship))
	mux.Handle("DELETE /api/championships/{id}", admin(h.DeleteChampionship))

	mux.HandleFunc("GET /api/filters/options", h.GetFilterOptions)
}
