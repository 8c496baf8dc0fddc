package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const statusOnAir = "ON_AIR"

var embeddedDataRe = regexp.MustCompile(`<script\s+[^>]*id=['"]embedded-data['"][^>]*data-props=['"]([^'"]+)['"][^>]*>`)

// LiveData is what the watch page reveals about a broadcast.
type LiveData struct {
	WebSocketURL string
	Status       string
	OpenTime     time.Time
}

func (d *LiveData) OnAir() bool {
	return d.Status == statusOnAir && d.WebSocketURL != ""
}

type embeddedData struct {
	Site *struct {
		Relive *struct {
			WebSocketURL string `json:"webSocketUrl"`
		} `json:"relive"`
	} `json:"site"`
	Program *struct {
		Status   string `json:"status"`
		OpenTime int64  `json:"openTime"`
	} `json:"program"`
}

// ExtractLiveData reads the embedded-data payload of a watch page.
func ExtractLiveData(page []byte) (*LiveData, error) {
	m := embeddedDataRe.FindSubmatch(page)
	if m == nil {
		return nil, fmt.Errorf("%w: embedded-data not found", ErrFormat)
	}

	var data embeddedData
	if err := json.Unmarshal([]byte(html.UnescapeString(string(m[1]))), &data); err != nil {
		return nil, fmt.Errorf("%w: decoding embedded-data: %v", ErrFormat, err)
	}
	if data.Site == nil || data.Site.Relive == nil || data.Program == nil {
		return nil, fmt.Errorf("%w: embedded-data lacks site.relive or program", ErrFormat)
	}

	return &LiveData{
		WebSocketURL: data.Site.Relive.WebSocketURL,
		Status:       data.Program.Status,
		OpenTime:     time.Unix(data.Program.OpenTime, 0),
	}, nil
}

// OnAirLink finds the broadcast link next to the channel page's on-air
// marker (<p class="g-live-airtime onair">).
func OnAirLink(page []byte) (string, bool) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return "", false
	}

	marker := findNode(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.P && attr(n, "class") == "g-live-airtime onair"
	})
	if marker == nil || marker.Parent == nil {
		return "", false
	}

	link := findNode(marker.Parent, func(n *html.Node) bool {
		return n.DataAtom == atom.A
	})
	if link == nil {
		return "", false
	}
	href := attr(link, "href")
	return href, href != ""
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
