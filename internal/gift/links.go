package gift

import "net/url"

// marketplaceLinks builds the two retailer search URLs for a gift name. The
// names come straight out of model output, so everything goes through proper
// query encoding.
func marketplaceLinks(name string) (amazon, etsy string) {
	amazonQuery := url.Values{"k": {name}}
	etsyQuery := url.Values{"q": {name}}
	return "https://www.amazon.com/s?" + amazonQuery.Encode(),
		"https://www.etsy.com/search?" + etsyQuery.Encode()
}
