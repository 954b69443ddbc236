// Package assets builds item image URLs and warms the image CDN.
package assets

import (
	"net/url"
	"strconv"
	"strings"
)

// RenderBase returns the image service root for a game host
func RenderBase(host string) string {
	return "https://render." + host
}

// RenderURL is the image URL of an item on the game's render service
func RenderURL(host, id string, size, quality int) string {
	return ImageURL(RenderBase(host), id, size, quality)
}

// ImageURL builds <base>/v1/item/<id>.png with optional size and quality.
// Non-positive size or quality are omitted.
func ImageURL(base, id string, size, quality int) string {
	u := strings.TrimRight(base, "/") + "/v1/item/" + url.PathEscape(id) + ".png"

	q := url.Values{}
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	if quality > 0 {
		q.Set("quality", strconv.Itoa(quality))
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}
