package facet

// Sentinel option values shared with the filter package.
const (
	All           = "全部"
	AllLocations  = "全部地點"
	OtherLocation = "_other_"
	OtherLabel    = "其他"
)

// Option is one selectable value and its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Campus lists the predefined locations of one campus.
type Campus struct {
	Name      string   `json:"name" koanf:"name"`
	Locations []string `json:"locations" koanf:"locations"`
}

// Categories is the read-only campus/location metadata.
type Categories struct {
	campuses []Campus
	index    map[string]int
}

// DefaultCampuses returns the campus layout of the public sheet.
func DefaultCampuses() []Campus {
	return []Campus{
		{Name: All, Locations: []string{AllLocations}},
		{Name: "進德校區", Locations: []string{AllLocations, "教學大樓", "白沙大樓", "圖書館", "體育館", "操場"}},
		{Name: "寶山校區", Locations: []string{AllLocations, "工學院大樓", "科技學院大樓", "管理學院大樓", "教學一館", "教學二館"}},
	}
}

// NewCategories copies campuses into an immutable Categories. The ALL
// pseudo-campus is added first when campuses does not define it.
func NewCategories(campuses []Campus) *Categories {
	c := &Categories{index: make(map[string]int, len(campuses)+1)}

	hasAll := false
	for _, cp := range campuses {
		if cp.Name == All {
			hasAll = true
			break
		}
	}
	if !hasAll {
		c.add(Campus{Name: All, Locations: []string{AllLocations}})
	}
	for _, cp := range campuses {
		c.add(cp)
	}
	return c
}

// DefaultCategories returns Categories built from DefaultCampuses.
func DefaultCategories() *Categories {
	return NewCategories(DefaultCampuses())
}

func (c *Categories) add(cp Campus) {
	if _, dup := c.index[cp.Name]; dup {
		return
	}
	locs := make([]string, len(cp.Locations))
	copy(locs, cp.Locations)
	c.index[cp.Name] = len(c.campuses)
	c.campuses = append(c.campuses, Campus{Name: cp.Name, Locations: locs})
}

// Campuses returns campus names in configured order, ALL included.
func (c *Categories) Campuses() []string {
	names := make([]string, len(c.campuses))
	for i, cp := range c.campuses {
		names[i] = cp.Name
	}
	return names
}

// CampusOptions returns campuses as options.
func (c *Categories) CampusOptions() []Option {
	opts := make([]Option, len(c.campuses))
	for i, cp := range c.campuses {
		opts[i] = Option{Value: cp.Name, Label: cp.Name}
	}
	return opts
}

// Predefined returns a copy of campus's predefined locations; nil when the
// campus is unknown.
func (c *Categories) Predefined(campus string) []string {
	i, ok := c.index[campus]
	if !ok {
		return nil
	}
	locs := make([]string, len(c.campuses[i].Locations))
	copy(locs, c.campuses[i].Locations)
	return locs
}

// IsPredefined reports whether location is in campus's predefined list.
func (c *Categories) IsPredefined(campus, location string) bool {
	i, ok := c.index[campus]
	if !ok {
		return false
	}
	for _, l := range c.campuses[i].Locations {
		if l == location {
			return true
		}
	}
	return false
}

// LocationsFor returns the location options for campus: its predefined
// locations, followed by the synthetic "other" option unless campus is ALL.
func (c *Categories) LocationsFor(campus string) []Option {
	locs := c.Predefined(campus)
	opts := make([]Option, 0, len(locs)+1)
	for _, l := range locs {
		opts = append(opts, Option{Value: l, Label: l})
	}
	if campus != All {
		opts = append(opts, Option{Value: OtherLocation, Label: OtherLabel})
	}
	return opts
}
