package handlers

import (
	"image/color"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"piechart/internal/chart"
	chartimg "piechart/internal/render"
	"piechart/internal/viewmodel"
	"piechart/pkg/pie"
	"piechart/views/components"
	"piechart/views/pages"
)

const (
	maxStillSize = 2048
	// maxBoxSize bounds the layout box a client may report on resize.
	maxBoxSize = 16384

	eventLegend = "legend"
)

type ChartHandler struct {
	store *chart.Store
}

func NewChartHandler(store *chart.Store) *ChartHandler {
	return &ChartHandler{store: store}
}

func (h *ChartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/chart/{id}", func(r chi.Router) {
		r.Get("/", h.chartPage)
		r.Delete("/", h.deleteChart)
		r.Get("/chart.svg", h.svgImage)
		r.Get("/chart.png", h.pngImage)
		r.Get("/legend", h.legendFragment)
		r.Get("/share.png", h.shareQR)
		r.Get("/stream", h.stream)
		r.Post("/resize", h.resize)
		r.Post("/pointer", h.pointerMove)
		r.Post("/leave", h.pointerLeave)
		r.Post("/focus", h.focus)
	})
}

func (h *ChartHandler) session(w http.ResponseWriter, r *http.Request) (*chart.Session, bool) {
	session, ok := h.store.GetChart(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return nil, false
	}
	return session, true
}

func (h *ChartHandler) chartPage(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	snap := session.Snapshot()
	render(w, r, pages.ChartPage(viewmodel.ChartPage{
		Title:    "Pie Chart",
		ChartID:  snap.ID,
		ShareURL: buildShareURL(r, snap.ID),
		Chart:    toChartFragment(snap),
		Legend:   toLegendFragment(snap),
	}))
}

func (h *ChartHandler) deleteChart(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteChart(chi.URLParam(r, "id")) {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChartHandler) legendFragment(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	render(w, r, components.LegendFragment(toLegendFragment(session.Snapshot())))
}

func (h *ChartHandler) svgImage(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	doc := session.SVG()
	if doc == "" {
		http.Error(w, pie.PlaceholderText, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(doc))
}

func (h *ChartHandler) pngImage(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	snap := session.Snapshot()
	size := snap.Size
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxStillSize {
			http.Error(w, "invalid size", http.StatusBadRequest)
			return
		}
		size = parsed
	}
	if size > maxStillSize {
		size = maxStillSize
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	err := chartimg.PNG(w, chartimg.Still{
		Items:      session.Items(),
		Size:       size,
		Focus:      snap.FocusedID,
		Background: color.White,
	})
	if err != nil {
		log.Printf("png render error chart=%s err=%v", snap.ID, err)
	}
}

func (h *ChartHandler) shareQR(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	png, err := qrcode.Encode(buildShareURL(r, session.ID), qrcode.Medium, 256)
	if err != nil {
		log.Printf("share qr error chart=%s err=%v", session.ID, err)
		http.Error(w, "failed to encode", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (h *ChartHandler) resize(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	values, ok := parseFloats(w, r, "width", "height", "left?", "top?")
	if !ok {
		return
	}
	for i, name := range []string{"width", "height"} {
		if values[i] > maxBoxSize {
			http.Error(w, "invalid "+name, http.StatusBadRequest)
			return
		}
	}
	session.Resize(values[0], values[1], values[2], values[3])
	writeFocus(w, session.Snapshot())
}

func (h *ChartHandler) pointerMove(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	values, ok := parseFloats(w, r, "x", "y")
	if !ok {
		return
	}
	session.PointerMove(values[0], values[1])
	writeFocus(w, session.Snapshot())
}

func (h *ChartHandler) pointerLeave(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	session.PointerLeave()
	writeFocus(w, session.Snapshot())
}

func (h *ChartHandler) focus(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	session.SetFocus(strings.TrimSpace(r.FormValue("id")))
	writeFocus(w, session.Snapshot())
}

func (h *ChartHandler) stream(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	hub, ok := h.store.Broadcaster(session.ID)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	snap := session.Snapshot()
	if snap.Interactive {
		writeSSE(w, chart.EventChart, snap.SVG)
	}
	writeSSE(w, eventLegend, renderToString(r, components.LegendFragment(toLegendFragment(snap))))
	writeSSE(w, chart.EventTooltip, snap.Tooltip)
	flusher.Flush()

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-sub:
			if !open {
				return
			}
			writeSSE(w, event.Name, event.Data)
			if event.Name == chart.EventTooltip {
				// Every focus change carries a tooltip event; resend the legend
				// so rows stay in sync when row events were dropped.
				writeSSE(w, eventLegend, renderToString(r, components.LegendFragment(toLegendFragment(session.Snapshot()))))
			}
			flusher.Flush()
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}

func writeFocus(w http.ResponseWriter, snap chart.Snapshot) {
	writeJSON(w, map[string]any{
		"focused": snap.FocusedID,
		"tooltip": snap.Tooltip,
		"size":    snap.Size,
	})
}

// parseFloats reads the named finite form values; names ending in '?'
// default to 0.
func parseFloats(w http.ResponseWriter, r *http.Request, names ...string) ([]float64, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return nil, false
	}
	out := make([]float64, len(names))
	for i, name := range names {
		optional := strings.HasSuffix(name, "?")
		name = strings.TrimSuffix(name, "?")
		raw := strings.TrimSpace(r.FormValue(name))
		if raw == "" && optional {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			http.Error(w, "invalid "+name, http.StatusBadRequest)
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func buildShareURL(r *http.Request, chartID string) string {
	if baseURL := strings.TrimSpace(os.Getenv("BASE_URL")); baseURL != "" {
		return strings.TrimRight(baseURL, "/") + "/chart/" + chartID
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/chart/" + chartID
}

func toChartFragment(snap chart.Snapshot) viewmodel.ChartFragment {
	return viewmodel.ChartFragment{
		ChartID:     snap.ID,
		Interactive: snap.Interactive,
		SVG:         snap.SVG,
		Tooltip:     snap.Tooltip,
		Placeholder: pie.PlaceholderText,
	}
}

func toLegendFragment(snap chart.Snapshot) viewmodel.LegendFragment {
	rows := make([]viewmodel.LegendRow, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		rows = append(rows, viewmodel.LegendRow{
			ID:      row.ID,
			Value:   strconv.FormatFloat(row.Value, 'f', -1, 64),
			Percent: pie.FormatPercent(row.Percent),
			Color:   row.Color,
			Active:  row.Active,
		})
	}
	return viewmodel.LegendFragment{ChartID: snap.ID, Rows: rows}
}
