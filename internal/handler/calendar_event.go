package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mverdier/foyer/internal/calendar"
)

type CalendarEventHandler struct {
	calendar *calendar.Store
	logger   *slog.Logger
	now      func() time.Time
}

func NewCalendarEventHandler(cal *calendar.Store, logger *slog.Logger) *CalendarEventHandler {
	return &CalendarEventHandler{calendar: cal, logger: logger, now: time.Now}
}

type eventRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Place       string `json:"place"`
	Category    string `json:"category"`
}

// List answers all events, one day's events with ?date=YYYY-MM-DD, or one
// month's with ?year=&month=.
func (h *CalendarEventHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if date := q.Get("date"); date != "" {
		writeJSON(w, http.StatusOK, h.calendar.EventsOn(date))
		return
	}

	if q.Get("year") != "" || q.Get("month") != "" {
		year, err := strconv.Atoi(q.Get("year"))
		if err != nil {
			badRequest(w, "year must be a number")
			return
		}
		month, err := strconv.Atoi(q.Get("month"))
		if err != nil || month < 1 || month > 12 {
			badRequest(w, "month must be 1-12")
			return
		}
		writeJSON(w, http.StatusOK, h.calendar.EventsInMonth(year, time.Month(month)))
		return
	}

	writeJSON(w, http.StatusOK, h.calendar.Events())
}

func (h *CalendarEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		badRequest(w, "title is required")
		return
	}

	event, res := h.calendar.Add(req.Date, req.Time, req.Title, req.Description, req.Place, req.Category)
	if res.Applied {
		writeJSON(w, http.StatusCreated, event)
		return
	}
	writeResult(w, res)
}

func (h *CalendarEventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		badRequest(w, "title is required")
		return
	}

	event, res := h.calendar.Update(r.PathValue("id"), req.Date, req.Time, req.Title, req.Description, req.Place, req.Category)
	writeResultWith(w, res, event)
}

func (h *CalendarEventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.calendar.Delete(r.PathValue("id")))
}

// Next answers the next upcoming event, or 404 when the calendar holds
// nothing at or after the current moment.
func (h *CalendarEventHandler) Next(w http.ResponseWriter, r *http.Request) {
	event, ok := h.calendar.NextUpcoming(h.now())
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no upcoming event"})
		return
	}
	writeJSON(w, http.StatusOK, event)
}
