package views

import (
	"encoding/json"
	"net/url"
	"time"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const displayTime = "1/2/2006, 3:04:05 PM"

// backend timestamps come with or without a zone
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// formatCreatedAt shows now for a missing timestamp and the raw value for
// one it cannot read.
func formatCreatedAt(raw string, now time.Time) string {
	if raw == "" {
		return now.Format(displayTime)
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Local().Format(displayTime)
		}
	}
	return raw
}

// safeHref keeps http(s) links and turns anything else into "#".
func safeHref(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "#"
	}
	return raw
}

// openWindows renders one script per URL that opens it in a new browsing
// context. URLs that are not http(s) are skipped.
func openWindows(urls []string) cmp.Node {
	var scripts cmp.Group
	for _, u := range urls {
		if safeHref(u) == "#" {
			continue
		}
		quoted, _ := json.Marshal(u)
		scripts = append(scripts, g.Script(cmp.Rawf("window.open(%s, \"_blank\");", quoted)))
	}
	return scripts
}

func inputClass(extra string) string {
	if extra == "" {
		return "border rounded px-3 py-2"
	}
	return "border rounded px-3 py-2 " + extra
}
