package activity

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// seededLog returns a log with a fixed clock and four entries, oldest first.
func seededLog() *Log {
	base := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	i := 0
	l := NewLog()
	l.now = func() time.Time {
		i++
		return base.Add(time.Duration(i) * time.Minute)
	}
	l.Record(ActionCreate, "Transfer", "Created Transfer: #16771")
	l.Record(ActionCreate, "Receiver", "Created Receiver: #17145")
	l.Record(ActionCreate, "MudMix", "Created MudMix: #16527")
	l.Record(ActionDelete, "Transfer", "Deleted Transfer: #16770")
	return l
}

func TestFilteredNewestFirst(t *testing.T) {
	l := seededLog()
	got := l.Filtered(Query{})
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if got[0].Message != "Deleted Transfer: #16770" {
		t.Errorf("first entry = %q, want the newest", got[0].Message)
	}
	if got[3].Message != "Created Transfer: #16771" {
		t.Errorf("last entry = %q, want the oldest", got[3].Message)
	}
}

func TestFilteredByActionAndMovement(t *testing.T) {
	l := seededLog()

	tests := []struct {
		name string
		q    Query
		want int
	}{
		{"action", Query{Action: "Delete"}, 1},
		{"movement", Query{Movement: "Transfer"}, 2},
		{"both", Query{Action: "Create", Movement: "Transfer"}, 1},
		{"all_keyword", Query{Action: "all", Movement: "all"}, 4},
		{"no_match", Query{Action: "Update"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Filtered(tt.q); len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFilteredSearch(t *testing.T) {
	l := seededLog()

	// Case-insensitive, matches message text.
	if got := l.Filtered(Query{Search: "mudmix"}); len(got) != 1 {
		t.Errorf("search mudmix: len = %d, want 1", len(got))
	}
	// Matches the movement column too.
	if got := l.Filtered(Query{Search: "receiver"}); len(got) != 1 {
		t.Errorf("search receiver: len = %d, want 1", len(got))
	}
	// Matches the display timestamp.
	if got := l.Filtered(Query{Search: "2026-03-14"}); len(got) != 4 {
		t.Errorf("search timestamp: len = %d, want 4", len(got))
	}
	if got := l.Filtered(Query{Search: "nothing here"}); len(got) != 0 {
		t.Errorf("search miss: len = %d, want 0", len(got))
	}
}

func TestFindPagination(t *testing.T) {
	l := seededLog()

	p := l.Find(Query{Page: 1, PageSize: 3})
	if len(p.Entries) != 3 || p.Total != 4 || p.Filtered != 4 || p.TotalPages != 2 {
		t.Errorf("page 1 = %+v", p)
	}
	p = l.Find(Query{Page: 2, PageSize: 3})
	if len(p.Entries) != 1 || p.Page != 2 {
		t.Errorf("page 2 = %+v", p)
	}
	// Past the end yields an empty page, not a panic.
	p = l.Find(Query{Page: 9, PageSize: 3})
	if len(p.Entries) != 0 {
		t.Errorf("page 9 entries = %d, want 0", len(p.Entries))
	}
	// Zero values fall back to page 1 and the default size.
	p = l.Find(Query{})
	if p.Page != 1 || p.PageSize != 20 || len(p.Entries) != 4 {
		t.Errorf("defaults = %+v", p)
	}
}

func TestFindCountsFilteredSeparately(t *testing.T) {
	l := seededLog()
	p := l.Find(Query{Movement: "Transfer"})
	if p.Total != 4 {
		t.Errorf("total = %d, want 4", p.Total)
	}
	if p.Filtered != 2 {
		t.Errorf("filtered = %d, want 2", p.Filtered)
	}
}

func TestWriteCSV(t *testing.T) {
	l := seededLog()
	var buf bytes.Buffer
	if err := WriteCSV(&buf, l.Filtered(Query{Movement: "Receiver"})); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	want := "Type,Movement,Message,Timestamp\n" +
		"Create,Receiver,Created Receiver: #17145,2026-03-14 09:32:00\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

func TestBuildXLSX(t *testing.T) {
	l := seededLog()
	f, err := BuildXLSX(l.Filtered(Query{}))
	if err != nil {
		t.Fatalf("BuildXLSX failed: %v", err)
	}
	defer f.Close()

	if f.GetSheetName(f.GetActiveSheetIndex()) != "Activity Log" {
		t.Errorf("active sheet = %q", f.GetSheetName(f.GetActiveSheetIndex()))
	}
	got, err := f.GetCellValue("Activity Log", "A1")
	if err != nil || got != "Type" {
		t.Errorf("A1 = %q, err = %v", got, err)
	}
	// Newest entry lands on the first data row.
	got, err = f.GetCellValue("Activity Log", "C2")
	if err != nil || got != "Deleted Transfer: #16770" {
		t.Errorf("C2 = %q, err = %v", got, err)
	}
	got, err = f.GetCellValue("Activity Log", "D5")
	if err != nil || got != "2026-03-14 09:31:00" {
		t.Errorf("D5 = %q, err = %v", got, err)
	}
	if rows, _ := f.GetRows("Activity Log"); len(rows) != 5 {
		t.Errorf("row count = %d, want 5", len(rows))
	}
}

func TestRecordStampsCurrentTime(t *testing.T) {
	l := NewLog()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	l.now = func() time.Time { return fixed }
	l.Record(ActionUpdate, "Transfer", "Updated Transfer: #1")

	got := l.Filtered(Query{})
	if len(got) != 1 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Timestamp() != "2026-01-02 03:04:05" {
		t.Errorf("timestamp = %q", got[0].Timestamp())
	}
	if !strings.HasPrefix(got[0].Message, "Updated") {
		t.Errorf("message = %q", got[0].Message)
	}
}
