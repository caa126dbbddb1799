package httpapi

import (
	"net/http"

	"github.com/lamberpool/matchday/internal/usecase"
)

// GetFilterOptions returns the distinct years, tournaments and competitions
// the UI offers as filters. The options are cached until the hierarchy
// changes.
func (h *Handler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFilterOptions")
	defer span.End()

	options, err := h.filterService.Options(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get filter options failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, filterOptionsToDTO(options))
}

func filterOptionsToDTO(options usecase.FilterOptions) filterOptionsDTO {
	tournaments := make([]tournamentOptionDTO, 0, len(options.Tournaments))
	for _, t := range options.Tournaments {
		tournaments = append(tournaments, tournamentOptionDTO{ID: t.ID, Name: t.Name})
	}
	competitions := make([]competitionOptionDTO, 0, len(options.Competitions))
	for _, c := range options.Competitions {
		competitions = append(competitions, competitionOptionDTO{ID: c.ID, Name: c.Name, FullName: c.FullName})
	}

	return filterOptionsDTO{
		Years:        options.Years,
		Tournaments:  tournaments,
		Competitions: competitions,
	}
}

type tournamentOptionDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type competitionOptionDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
}

type filterOptionsDTO struct {
	Years        []int                  `json:"years"`
	Tournaments  []tournamentOptionDTO  `json:"tournaments"`
	Competitions []competitionOptionDTO `json:"competitions"`
}
