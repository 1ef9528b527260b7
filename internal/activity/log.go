package activity

import (
	"strings"
	"sync"
	"time"
)

// Action mirrors the badge shown on the dashboard.
type Action string

const (
	ActionCreate Action = "Create"
	ActionUpdate Action = "Update"
	ActionDelete Action = "Delete"
)

const timestampLayout = "2006-01-02 15:04:05"

// Entry is one dashboard row.
type Entry struct {
	Action   Action    `json:"type"`
	Movement string    `json:"movement"`
	Message  string    `json:"message"`
	At       time.Time `json:"-"`
}

// Timestamp is the display form used by the dashboard and the exports.
func (e Entry) Timestamp() string {
	return e.At.Format(timestampLayout)
}

// Log is the in-memory activity feed. Handlers write and read it from
// different request goroutines.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

func NewLog() *Log {
	return &Log{now: time.Now}
}

// Record appends an entry stamped with the current time.
func (l *Log) Record(action Action, movement, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{
		Action:   action,
		Movement: movement,
		Message:  message,
		At:       l.now(),
	})
}

// Query selects and pages the feed. Empty or "all" filters match everything.
type Query struct {
	Search   string
	Action   string
	Movement string
	Page     int
	PageSize int
}

// Page is one screen of the filtered feed, newest first.
type Page struct {
	Entries    []Entry `json:"entries"`
	Total      int     `json:"total"`
	Filtered   int     `json:"filtered"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
}

const defaultPageSize = 20

// Find filters first, then slices the requested page, the same order the
// dashboard applies.
func (l *Log) Find(q Query) Page {
	matched := l.Filtered(q)

	size := q.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}

	totalPages := (len(matched) + size - 1) / size

	start := (page - 1) * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}

	l.mu.RLock()
	total := len(l.entries)
	l.mu.RUnlock()

	return Page{
		Entries:    matched[start:end],
		Total:      total,
		Filtered:   len(matched),
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}
}

// Filtered returns every matching entry, newest first. Exports use this so
// a download carries the filtered set, not just the visible page.
func (l *Log) Filtered(q Query) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	search := strings.ToLower(q.Search)
	out := make([]Entry, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if !matchesFilter(q.Action, string(e.Action)) {
			continue
		}
		if !matchesFilter(q.Movement, e.Movement) {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesFilter(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}

func matchesSearch(e Entry, search string) bool {
	return strings.Contains(strings.ToLower(string(e.Action)), search) ||
		strings.Contains(strings.ToLower(e.Movement), search) ||
		strings.Contains(strings.ToLower(e.Message), search) ||
		strings.Contains(e.Timestamp(), search)
}
