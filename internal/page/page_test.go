package page

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixture = `<html><body>
<h1>  First heading </h1>
<div id="box">
  <div class="row"><span class="name"> A </span><img id="card_image_1" src="/img/a.jpg"></div>
  <div class="row"><span class="name">B</span><span class="name">ignored</span></div>
</div>
</body></html>`

func TestParseQueries(t *testing.T) {
	p, err := Parse(strings.NewReader(fixture), "https://example.com/deck/view?dno=1")
	require.NoError(t, err)
	defer p.Close()

	box, ok := p.First("#box")
	require.True(t, ok)

	rows := box.All(".row")
	require.Len(t, rows, 2)

	name, ok := rows[0].First(".name")
	require.True(t, ok)
	require.Equal(t, "A", name.Text())

	name, ok = rows[1].First(".name")
	require.True(t, ok)
	require.Equal(t, "B", name.Text())

	img, ok := rows[0].First(`img[id^="card_image"]`)
	require.True(t, ok)
	require.Equal(t, "/img/a.jpg", img.Attr("src"))
	require.Equal(t, "", img.Attr("alt"))
	require.Equal(t, "https://example.com/img/a.jpg", Resolve(p, img.Attr("src")))

	_, ok = p.First("#missing")
	require.False(t, ok)
	require.Empty(t, p.All(".missing"))

	h1, ok := p.First("h1")
	require.True(t, ok)
	require.Equal(t, "First heading", h1.Text())
}

func TestResolve(t *testing.T) {
	p, err := Parse(strings.NewReader(""), "https://example.com/a/b.action")
	require.NoError(t, err)

	require.Equal(t, "", Resolve(p, ""))
	require.Equal(t, "https://cdn.example.com/x.jpg", Resolve(p, "https://cdn.example.com/x.jpg"))
	require.Equal(t, "https://example.com/a/x.jpg", Resolve(p, "x.jpg"))
}

func TestHTTPRenderer(t *testing.T) {
	var gotUserAgent string
	mux := http.NewServeMux()
	mux.HandleFunc("/deck", func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(fixture))
	})
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/deck", http.StatusFound)
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	r := NewHTTPRenderer(HTTPOptions{UserAgent: "test-agent", ReadySelectors: []string{"#box"}})
	defer r.Close()

	p, err := r.Render(context.Background(), server.URL+"/old")
	require.NoError(t, err)
	require.Equal(t, server.URL+"/deck", p.URL())
	require.Equal(t, "test-agent", gotUserAgent)

	rows := p.All("#box .row")
	require.Len(t, rows, 2)

	_, err = r.Render(context.Background(), server.URL+"/gone")
	require.Error(t, err)
}
