package item

import "time"

// Display defaults for fields the sheet leaves blank.
const (
	NoDate = "無日期"
	NoName = "無名稱"
)

// Record represents one found item listed in the sheet
type Record struct {
	ID             string     `json:"id"`
	Period         string     `json:"period"`
	PickupDateText string     `json:"pickup_date_text"`
	PickupDate     *time.Time `json:"pickup_date,omitempty"`
	Campus         string     `json:"campus"`
	Location       string     `json:"location"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	ImageRef       string     `json:"image_ref,omitempty"`
}

// Columns names the sheet column labels each Record field is read from.
type Columns struct {
	ID          string `json:"id" koanf:"id"`
	Period      string `json:"period" koanf:"period"`
	PickupDate  string `json:"pickup_date" koanf:"pickup_date"`
	Campus      string `json:"campus" koanf:"campus"`
	Location    string `json:"location" koanf:"location"`
	Name        string `json:"name" koanf:"name"`
	Description string `json:"description" koanf:"description"`
	Image       string `json:"image" koanf:"image"`
}

// DefaultColumns returns the labels used by the public lost-and-found sheet.
func DefaultColumns() Columns {
	return Columns{
		ID:          "遺失物編號",
		Period:      "學期",
		PickupDate:  "拾獲日期",
		Campus:      "拾獲校區",
		Location:    "拾獲地點",
		Name:        "拾獲物品名稱",
		Description: "物品詳細描述",
		Image:       "圖片公開連結",
	}
}

// Snapshot is a record collection captured from one successful fetch.
type Snapshot struct {
	Records   []Record  `json:"records"`
	FetchedAt time.Time `json:"fetched_at"`
	Source    string    `json:"source,omitempty"`
}

// NewSnapshot creates a snapshot of records taken at fetchedAt.
func NewSnapshot(records []Record, fetchedAt time.Time) *Snapshot {
	if records == nil {
		records = []Record{}
	}
	return &Snapshot{
		Records:   records,
		FetchedAt: fetchedAt,
	}
}
