package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meur/crafthub/internal/assets"
	"github.com/meur/crafthub/internal/catalog"
	"github.com/meur/crafthub/internal/market"
	"github.com/meur/crafthub/internal/models"
)

// handleGetRegions returns the game server regions
func (s *Server) handleGetRegions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, market.Regions)
}

// handleGetCategories returns the category tree
func (s *Server) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.Categories())
}

// handleGetCategoryPath returns the ids from the tree root down to a category
func (s *Server) handleGetCategoryPath(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if id == catalog.MiscCategory.ID {
		respondJSON(w, http.StatusOK, []string{id})
		return
	}
	path := catalog.CategoryPath(id, catalog.Categories())
	if path == nil {
		respondError(w, http.StatusNotFound, "Category not found")
		return
	}

	respondJSON(w, http.StatusOK, path)
}

// handleSearchItems filters base items by name and category
func (s *Server) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	locale := q.Get("lang")
	if locale == "" {
		locale = models.LocaleEN
	}

	items := s.catalog.Search(q.Get("q"), locale, q.Get("category"))
	if s.preloader != nil {
		s.preloader.Enqueue(items)
	}

	respondJSON(w, http.StatusOK, models.ItemList{
		Items:      items,
		TotalCount: len(items),
	})
}

// handleGetBaseItems returns every base item
func (s *Server) handleGetBaseItems(w http.ResponseWriter, r *http.Request) {
	items := s.catalog.BaseItems()
	respondJSON(w, http.StatusOK, models.ItemList{
		Items:      items,
		TotalCount: len(items),
	})
}

// handleGetItem returns a single item by its tier-qualified id
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, ok := s.catalog.Resolve(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	baseID := item.ID
	if _, b, ok := catalog.ParseID(item.ID); ok {
		baseID = b
	}

	respondJSON(w, http.StatusOK, models.ItemDetail{
		Item:        item,
		BaseID:      baseID,
		ImageURL:    assets.RenderURL(s.cfg.RenderHost, item.ID, 0, 0),
		BonusCities: catalog.CityBonusCities(baseID),
	})
}

// handleGetItemImage redirects to the rendered image of any item id
func (s *Server) handleGetItemImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()

	size, _ := strconv.Atoi(q.Get("size"))
	quality, _ := strconv.Atoi(q.Get("quality"))

	http.Redirect(w, r, assets.RenderURL(s.cfg.RenderHost, id, size, quality), http.StatusFound)
}
