package httpapi

import (
	"net/http"
	"time"

	"github.com/lamberpool/matchday/internal/domain/player"
	"github.com/lamberpool/matchday/internal/domain/team"
)

// GetClub returns the configured club team, creating it on first access.
func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClub")
	defer span.End()

	club, err := h.teamService.Club(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get club failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(club))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("id")
	detail, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	players := make([]playerDTO, 0, len(detail.Players))
	for _, p := range detail.Players {
		players = append(players, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailDTO{
		Team:    teamToDTO(detail.Team),
		Players: players,
	})
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:        p.ID,
		Name:      p.Name,
		Number:    p.Number,
		TeamID:    p.TeamID,
		CreatedAt: p.CreatedAt,
	}
}

type teamDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type playerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Number    int       `json:"number"`
	TeamID    string    `json:"teamId"`
	CreatedAt time.Time `json:"createdAt"`
}

type teamDetailDTO struct {
	Team    teamDTO     `json:"team"`
	Players []playerDTO `json:"players"`
}
