package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"piechart/internal/chart"
	"piechart/internal/viewmodel"
	"piechart/views/pages"
)

const maxItemsForm = 64 << 10

type HomeHandler struct {
	store *chart.Store
}

func NewHomeHandler(store *chart.Store) *HomeHandler {
	return &HomeHandler{store: store}
}

func (h *HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Post("/charts", h.createChart)
}

func (h *HomeHandler) home(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.HomePage(viewmodel.HomePage{
		Title: "Pie Chart",
		Items: chart.FormatItems(chart.DefaultItems),
	}))
}

func (h *HomeHandler) createChart(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxItemsForm)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	text := r.FormValue("items")
	items, err := chart.ParseItems(text)
	if err == nil {
		var session *chart.Session
		session, err = h.store.CreateChart(items)
		if err == nil {
			http.Redirect(w, r, "/chart/"+session.ID, http.StatusSeeOther)
			return
		}
	}

	log.Printf("create chart rejected err=%v", err)
	renderStatus(w, r, http.StatusBadRequest, pages.HomePage(viewmodel.HomePage{
		Title: "Pie Chart",
		Items: text,
		Error: err.Error(),
	}))
}
