package sheet

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ResponseMarker precedes the JSON payload in every gviz response.
const ResponseMarker = "google.visualization.Query.setResponse("

type gvizResponse struct {
	Status string      `json:"status"`
	Errors []gvizError `json:"errors"`
	Table  *gvizTable  `json:"table"`
}

type gvizError struct {
	Reason          string `json:"reason"`
	Message         string `json:"message"`
	DetailedMessage string `json:"detailed_message"`
}

type gvizTable struct {
	Cols []struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Type  string `json:"type"`
	} `json:"cols"`
	Rows []struct {
		C []*struct {
			V any     `json:"v"`
			F *string `json:"f"`
		} `json:"c"`
	} `json:"rows"`
}

// Parse converts a raw gviz response into a Table.
func Parse(text string) (*Table, error) {
	start := strings.Index(text, ResponseMarker)
	if start < 0 {
		if title := htmlTitle(text); title != "" {
			return nil, malformed("provider returned an HTML page %q; check the sheet's sharing settings", title)
		}
		return nil, malformed("missing %q wrapper", ResponseMarker)
	}

	payload := strings.TrimSpace(text[start+len(ResponseMarker):])
	payload = strings.TrimSuffix(payload, ";")
	payload = strings.TrimSuffix(payload, ")")

	var resp gvizResponse
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(&resp); err != nil {
		return nil, malformed("decoding payload: %v", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, malformed("decoding payload: trailing data after JSON object")
	}

	if resp.Status == "error" {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msg := e.DetailedMessage
			if msg == "" {
				msg = e.Message
			}
			if msg == "" {
				msg = e.Reason
			}
			msgs = append(msgs, msg)
		}
		return nil, malformed("provider error: %s", strings.Join(msgs, "; "))
	}

	if resp.Table == nil {
		return nil, malformed("missing table envelope")
	}

	table := &Table{
		Columns: make([]string, len(resp.Table.Cols)),
		Rows:    make([][]Cell, 0, len(resp.Table.Rows)),
	}
	for i, col := range resp.Table.Cols {
		table.Columns[i] = col.Label
	}

	for _, row := range resp.Table.Rows {
		cells := make([]Cell, len(table.Columns))
		for i := 0; i < len(cells) && i < len(row.C); i++ {
			c := row.C[i]
			if c == nil {
				continue
			}
			cells[i].Value = c.V
			if c.F != nil {
				cells[i].Formatted = *c.F
			}
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}

// htmlTitle returns the <title> of an HTML document, or "" if text is not HTML.
func htmlTitle(text string) string {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "<html") && !strings.Contains(lower, "<!doctype html") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
