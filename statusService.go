package main

import (
	"encoding/json"
	"net/http"
	"time"

	"dscheirer.com/alphadisplay/dlg7137"
	"github.com/gorilla/mux"
)

// how often the service loop looks for a quit
const dStatusSleep = time.Second

type patternEntry struct {
	Index  int    `json:"index"`
	Mask   uint8  `json:"mask"`
	Lines  string `json:"lines"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type statusResponse struct {
	Response string           `json:"response"`
	Error    string           `json:"error,omitempty"`
	Status   *displaySnapshot `json:"status,omitempty"`
	Patterns []patternEntry   `json:"patterns,omitempty"`
}

// statusHandler answers read-only questions about the display
type statusHandler struct {
	rt runtimeConfig
}

func newStatusHandler(rt runtimeConfig) *statusHandler {
	return &statusHandler{rt: rt}
}

func (h *statusHandler) getStatus() statusResponse {
	snap := h.rt.state.snapshot()
	return statusResponse{Response: "OK", Status: &snap}
}

func (h *statusHandler) getPatterns() statusResponse {
	table := dlg7137.Patterns()
	entries := make([]patternEntry, 0, len(table))
	for i, m := range table {
		entries = append(entries, patternEntry{
			Index:  i,
			Mask:   uint8(m),
			Lines:  m.String(),
			Symbol: string(dlg7137.Symbol(i)),
			Name:   dlg7137.Name(i),
		})
	}
	return statusResponse{Response: "OK", Patterns: entries}
}

func writeAnswer(w http.ResponseWriter, sr statusResponse) {
	output, _ := json.Marshal(sr)
	w.Header().Set("Content-Type", "application/json")
	w.Write(output)
}

func (h *statusHandler) apiStatus(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, h.getStatus())
}

func (h *statusHandler) apiPatterns(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, h.getPatterns())
}

func (h *statusHandler) apiError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	writeAnswer(w, statusResponse{Response: "BAD", Error: "no such endpoint"})
}

func (h *statusHandler) rootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/api/status", http.StatusMovedPermanently)
}

func newStatusRouter(h *statusHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/status", h.apiStatus).Methods("GET")
	r.HandleFunc("/api/patterns", h.apiPatterns).Methods("GET")
	r.HandleFunc("/api/{cmd}", h.apiError)
	r.HandleFunc("/", h.rootHandler)
	return r
}

func startStatusService(rt runtimeConfig, svc statusService, addr string) {
	rt.logger = &ThreadLogger{name: "StatusService"}
	wg.Add(1)
	go func() {
		defer wg.Done()
		runStatusService(rt, svc, addr)
	}()
}

func runStatusService(rt runtimeConfig, svc statusService, addr string) {
	handler := newStatusHandler(rt)
	svc.launch(handler, addr)
	rt.logger.Printf("status service on %s", addr)

	for {
		select {
		case <-rt.comms.quit:
			rt.logger.Println("quit from status service")
			svc.stop()
			return
		default:
			rt.clock.Sleep(dStatusSleep)
		}
	}
}
