package query

import (
	"net/url"
	"strconv"
)

// DefaultEndpoint is the extended search results page of the portal.
const DefaultEndpoint = "https://zakupki.gov.ru/epz/order/extendedsearch/results.html"

// Builder renders Requests into search URLs against Endpoint.
type Builder struct {
	// Endpoint overrides DefaultEndpoint when non-empty.
	Endpoint string
}

// BuildSearchURL builds the search URL for req against DefaultEndpoint.
func BuildSearchURL(req Request, page int) string {
	return Builder{}.URL(req, page)
}

// URL returns the search URL for req and page. Pages below 1 are treated as 1.
// The result is deterministic: parameters are encoded in sorted key order.
func (b Builder) URL(req Request, page int) string {
	endpoint := b.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	u, err := url.Parse(endpoint)
	if err == nil {
		q = u.Query()
	}
	for k, v := range Params(req, page) {
		q[k] = v
	}
	if err != nil {
		return endpoint + "?" + q.Encode()
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Params returns the query parameters the portal expects for req.
// Price bounds are included only when present.
func Params(req Request, page int) url.Values {
	q := url.Values{}
	q.Set("searchString", req.Phrase)
	q.Set("morphology", "on")
	q.Set("search-filter", "Дата размещения")
	q.Set("monitoringFilter", "off")
	q.Set("sortBy", "DATE_CREATED")
	q.Set("sortDirection", "false")
	q.Set("recordsPerPage", "_"+pageSize(req))
	q.Set("showLotsInfoHidden", "false")
	q.Set("pageNumber", strconv.Itoa(page))
	q.Set("fz44", "on")
	q.Set("af", "on")
	// -1 selects any currency
	q.Set("currencyIdGeneral", "-1")
	if req.PriceFrom != "" {
		q.Set("priceFromGeneral", req.PriceFrom)
	}
	if req.PriceTo != "" {
		q.Set("priceToGeneral", req.PriceTo)
	}
	return q
}

func pageSize(req Request) string {
	if req.PageSize != "" {
		return req.PageSize
	}
	return strconv.Itoa(req.Limit)
}
