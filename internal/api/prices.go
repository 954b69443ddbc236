package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/meur/crafthub/internal/catalog"
	"github.com/meur/crafthub/internal/craft"
	"github.com/meur/crafthub/internal/market"
	"github.com/meur/crafthub/internal/models"
	"github.com/meur/crafthub/internal/obs"
)

// handleGetMarket returns per-city sell and buy orders of any item id
func (s *Server) handleGetMarket(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	region, ok := s.region(w, r)
	if !ok {
		return
	}
	locations := s.locations(r)

	quotes, err := s.prices.FetchPrices(r.Context(), region.Key, []string{id}, locations)
	if err != nil {
		s.respondPriceError(w, r, err)
		return
	}

	view := market.BuildMarketView(id, quotes, locations, s.now())
	view.Region = region.Key
	respondJSON(w, http.StatusOK, view)
}

// handleGetCraft returns the cost and profit table of a craftable item
func (s *Server) handleGetCraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, ok := s.catalog.Resolve(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}
	if !item.Craftable() {
		respondError(w, http.StatusUnprocessableEntity, "Item has no recipe")
		return
	}

	region, ok := s.region(w, r)
	if !ok {
		return
	}
	flags, err := parseBonusFlags(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	locations := s.locations(r)

	quotes, err := s.prices.FetchPrices(r.Context(), region.Key, catalog.ResourceIDs(item), locations)
	if err != nil {
		s.respondPriceError(w, r, err)
		return
	}

	table, err := craft.Compute(item, quotes, locations, flags)
	if errors.Is(err, craft.ErrNoRecipe) {
		respondError(w, http.StatusUnprocessableEntity, "Item has no recipe")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute craft table")
		return
	}
	table.Region = region.Key

	respondJSON(w, http.StatusOK, table)
}

// region resolves the region query parameter, writing a 400 when unknown
func (s *Server) region(w http.ResponseWriter, r *http.Request) (models.Region, bool) {
	key := r.URL.Query().Get("region")
	if key == "" {
		key = s.cfg.DefaultRegion
	}
	region, err := market.LookupRegion(key)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Unknown region")
		return models.Region{}, false
	}
	return region, true
}

// locations reads a comma-separated city list, defaulting to the configured one
func (s *Server) locations(r *http.Request) []string {
	raw := r.URL.Query().Get("locations")
	if raw == "" {
		return s.cfg.Locations
	}
	var out []string
	for _, city := range strings.Split(raw, ",") {
		if city = strings.TrimSpace(city); city != "" {
			out = append(out, city)
		}
	}
	if len(out) == 0 {
		return s.cfg.Locations
	}
	return out
}

func parseBonusFlags(r *http.Request) (models.BonusFlags, error) {
	var flags models.BonusFlags
	q := r.URL.Query()
	for name, dst := range map[string]*bool{
		"city":  &flags.City,
		"focus": &flags.Focus,
		"event": &flags.Event,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return flags, errors.New("invalid value for " + name)
		}
		*dst = b
	}
	return flags, nil
}

func (s *Server) respondPriceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, market.ErrUnknownRegion) {
		respondError(w, http.StatusBadRequest, "Unknown region")
		return
	}
	obs.Logger.Warn("price lookup failed", "path", r.URL.Path, "error", err)
	respondError(w, http.StatusBadGateway, "Failed to fetch prices")
}
