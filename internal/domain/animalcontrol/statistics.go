package animalcontrol

import "encoding/json"

// Statistics es la respuesta del dashboard. Los contadores conocidos se
// exponen tipados; el resto queda en Raw.
type Statistics struct {
	Date        string `json:"date,omitempty"`
	Total       int    `json:"total_records"`
	Catch       int    `json:"catch_records"`
	Surrendered int    `json:"surrendered_records"`

	Raw map[string]any `json:"-"`
}

func (s *Statistics) UnmarshalJSON(b []byte) error {
	type plain Statistics
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = Statistics(p)
	s.Raw = raw
	return nil
}

// Summarize calcula los mismos contadores sobre una lista en memoria
// (day vacío = todos los días).
func Summarize(records []Record, day string) Statistics {
	st := Statistics{Date: day}
	for _, r := range records {
		if day != "" && r.Day() != day {
			continue
		}
		st.Total++
		switch r.RecordType {
		case RecordTypeCatch:
			st.Catch++
		case RecordTypeSurrendered:
			st.Surrendered++
		}
	}
	return st
}
