// Package render writes records and facet options as text, JSON or HTML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lostfound-tw/lostfound/internal/facet"
	"github.com/lostfound-tw/lostfound/internal/item"
)

// Format specifies the output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// Status messages shown in place of the item list.
const (
	EmptyMessage   = "找不到符合條件的物品。"
	FailureMessage = "資料載入失敗！請檢查試算表 ID、工作表名稱或共用權限設定。"
	LoadingMessage = "資料載入中..."
)

// NoDescription is printed for items without a description.
const NoDescription = "無"

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatHTML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'html')", s)
	}
}

// Result contains the items to be output
type Result struct {
	GeneratedAt time.Time   `json:"generated_at"`
	FetchedAt   time.Time   `json:"fetched_at"`
	Criteria    string      `json:"criteria,omitempty"`
	Count       int         `json:"count"`
	Items       []item.View `json:"items"`
}

// NewResult builds a Result for records, resolving image URLs.
func NewResult(records []item.Record, criteria string, fetchedAt time.Time) *Result {
	return &Result{
		GeneratedAt: time.Now().UTC(),
		FetchedAt:   fetchedAt,
		Criteria:    criteria,
		Count:       len(records),
		Items:       item.Views(records),
	}
}

// WriteItems writes the result in the specified format
func WriteItems(w io.Writer, result *Result, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	case FormatHTML:
		return writeHTML(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteMessage writes a status message such as EmptyMessage or FailureMessage.
func WriteMessage(w io.Writer, msg string, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, map[string]string{"message": msg})
	case FormatText:
		_, err := fmt.Fprintln(w, msg)
		return err
	case FormatHTML:
		return messageTemplate.Execute(w, msg)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteFacets writes the period, campus and location options.
func WriteFacets(w io.Writer, f *facet.Facets, campus string, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, f)
	case FormatText:
		return writeFacetsText(w, f, campus)
	case FormatHTML:
		if campus == "" {
			campus = facet.All
		}
		return facetsTemplate.Execute(w, facetsPage{Facets: f, Campus: campus})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func writeText(w io.Writer, result *Result) error {
	if result.Criteria != "" {
		fmt.Fprintf(w, "篩選條件: %s\n\n", result.Criteria)
	}
	if result.Count == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	for _, v := range result.Items {
		fmt.Fprintf(w, "%s\n", v.Name)
		fmt.Fprintf(w, "  拾獲日期：%s\n", v.PickupDateText)
		fmt.Fprintf(w, "  拾獲地點：%s\n", place(v.Record))
		fmt.Fprintf(w, "  物品描述：%s\n", description(v.Record))
		fmt.Fprintf(w, "  圖片：%s\n", v.ImageURL)
		fmt.Fprintf(w, "  遺失物編號：%s\n\n", v.ID)
	}
	_, err := fmt.Fprintf(w, "共 %d 件物品\n", result.Count)
	return err
}

func writeFacetsText(w io.Writer, f *facet.Facets, campus string) error {
	fmt.Fprintln(w, "學年學期:")
	for _, o := range f.Periods {
		fmt.Fprintf(w, "  %s\n", optionLine(o))
	}

	fmt.Fprintln(w, "\n校區:")
	for _, o := range f.Campuses {
		fmt.Fprintf(w, "  %s\n", optionLine(o))
	}

	names := make([]string, 0, len(f.Campuses))
	if campus != "" {
		names = append(names, campus)
	} else {
		for _, o := range f.Campuses {
			names = append(names, o.Value)
		}
	}
	for _, name := range names {
		fmt.Fprintf(w, "\n地點 (%s):\n", name)
		for _, o := range f.Locations[name] {
			fmt.Fprintf(w, "  %s\n", optionLine(o))
		}
	}
	return nil
}

func optionLine(o facet.Option) string {
	if o.Label == o.Value {
		return o.Value
	}
	return fmt.Sprintf("%s (%s)", o.Label, o.Value)
}

func place(r item.Record) string {
	return r.Campus + " - " + r.Location
}

func description(r item.Record) string {
	if r.Description == "" {
		return NoDescription
	}
	return r.Description
}
