package gift

import (
	"net/url"
	"testing"
)

func TestMarketplaceLinks_Encoding(t *testing.T) {
	amazon, etsy := marketplaceLinks(`Kid's Art & Craft Set (Deluxe)`)

	for _, link := range []string{amazon, etsy} {
		u, err := url.Parse(link)
		if err != nil {
			t.Fatalf("link does not parse: %q: %v", link, err)
		}
		var got string
		switch u.Host {
		case "www.amazon.com":
			got = u.Query().Get("k")
		case "www.etsy.com":
			got = u.Query().Get("q")
		default:
			t.Fatalf("unexpected host %q", u.Host)
		}
		if got != `Kid's Art & Craft Set (Deluxe)` {
			t.Fatalf("query does not round-trip: %q", got)
		}
	}
}

func TestMarketplaceLinks_Domains(t *testing.T) {
	amazon, etsy := marketplaceLinks("mug")
	if amazon != "https://www.amazon.com/s?k=mug" {
		t.Fatalf("unexpected amazon link %q", amazon)
	}
	if etsy != "https://www.etsy.com/search?q=mug" {
		t.Fatalf("unexpected etsy link %q", etsy)
	}
}
