package gamemap

import (
	"encoding/json"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// mapRecord is the serialised shape of a Map. Sets are stored as sorted
// index lists so the encoding is stable.
type mapRecord struct {
	Name        string     `json:"name"`
	Depth       int        `json:"depth"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Outdoors    bool       `json:"outdoors"`
	Tiles       []TileType `json:"tiles"`
	Revealed    []bool     `json:"revealed"`
	Visible     []bool     `json:"visible"`
	Light       []RGB      `json:"light"`
	Bloodstains []int      `json:"bloodstains,omitempty"`
	ViewBlocked []int      `json:"view_blocked,omitempty"`
}

func sortedSet(s mapset.Set[int]) []int {
	var out []int
	s.Each(func(i int) { out = append(out, i) })
	slices.Sort(out)
	return out
}

// MarshalJSON implements json.Marshaler.
func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(mapRecord{
		Name:        m.Name,
		Depth:       m.Depth,
		Width:       m.Width,
		Height:      m.Height,
		Outdoors:    m.Outdoors,
		Tiles:       m.Tiles,
		Revealed:    m.Revealed,
		Visible:     m.Visible,
		Light:       m.Light,
		Bloodstains: sortedSet(m.Bloodstains),
		ViewBlocked: sortedSet(m.ViewBlocked),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Map) UnmarshalJSON(data []byte) error {
	var r mapRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*m = *New(r.Depth, r.Width, r.Height, r.Name)
	m.Outdoors = r.Outdoors
	copy(m.Tiles, r.Tiles)
	copy(m.Revealed, r.Revealed)
	copy(m.Visible, r.Visible)
	copy(m.Light, r.Light)
	for _, i := range r.Bloodstains {
		m.Bloodstains.Put(i)
	}
	for _, i := range r.ViewBlocked {
		m.ViewBlocked.Put(i)
	}
	return nil
}
