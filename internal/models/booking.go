package models

// DateEntry groups the movie ids a user booked for one calendar date.
// Movie ids are appended without dedup: booking the same movie twice on
// the same date yields two entries, matching the historical file format.
type DateEntry struct {
	Date   string   `json:"date"`
	Movies []string `json:"movies"`
}

// BookingRecord is the per-user ledger entry. There is at most one
// record per user id and at most one DateEntry per date inside it.
type BookingRecord struct {
	UserID string       `json:"userid"`
	Dates  []*DateEntry `json:"dates"`
}

func (d *DateEntry) Clone() *DateEntry {
	movies := make([]string, len(d.Movies))
	copy(movies, d.Movies)
	return &DateEntry{Date: d.Date, Movies: movies}
}

func (b *BookingRecord) Clone() *BookingRecord {
	dates := make([]*DateEntry, len(b.Dates))
	for i, d := range b.Dates {
		dates[i] = d.Clone()
	}
	return &BookingRecord{UserID: b.UserID, Dates: dates}
}

// add appends movieid under date, creating the DateEntry on first use.
func (b *BookingRecord) add(date, movieid string) {
	for _, entry := range b.Dates {
		if entry.Date == date {
			entry.Movies = append(entry.Movies, movieid)
			return
		}
	}
	b.Dates = append(b.Dates, &DateEntry{Date: date, Movies: []string{movieid}})
}
