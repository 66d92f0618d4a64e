package extract

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Placeholders substituted when a field cannot be located in a listing block.
const (
	NoTitle        = "Без названия"
	NoPrice        = "Цена не указана"
	NoCustomer     = "Заказчик не указан"
	NoRegistration = "Регистрационный номер не найден"
)

// DetailURLPrefix is joined with a registration number to form the notice link.
const DetailURLPrefix = "https://zakupki.gov.ru/epz/order/notice/ea20/view/common-info.html?regNumber="

// Record is one procurement notice taken from the search results page.
type Record struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Customer string `json:"customer"`
	Link     string `json:"link"`
}

var (
	blockSel    = cascadia.MustCompile("div.search-registry-entry-block")
	titleSel    = cascadia.MustCompile("div.registry-entry__body-href")
	priceSel    = cascadia.MustCompile("div.price-block__value")
	customerSel = cascadia.MustCompile("div.registry-entry__body-value")

	regNumberRe = regexp.MustCompile(`regNumber=(\d+)`)
)

// Extract parses markup and returns at most limit records in document order.
// A limit of zero or less yields an empty slice. Missing fields never fail;
// they are replaced by the placeholder constants.
func Extract(markup []byte, limit int) []Record {
	if limit <= 0 {
		return []Record{}
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return []Record{}
	}
	return FromDocument(doc, limit)
}

// ExtractString is Extract for markup held in a string.
func ExtractString(markup string, limit int) []Record {
	return Extract([]byte(markup), limit)
}

// FromDocument extracts records from an already parsed document.
func FromDocument(doc *goquery.Document, limit int) []Record {
	if doc == nil || limit <= 0 {
		return []Record{}
	}
	blocks := doc.FindMatcher(blockSel)
	n := blocks.Length()
	if n > limit {
		n = limit
	}
	out := make([]Record, 0, n)
	blocks.Slice(0, n).Each(func(_ int, block *goquery.Selection) {
		out = append(out, recordFrom(block))
	})
	return out
}

func recordFrom(block *goquery.Selection) Record {
	link := NoRegistration
	if reg, ok := findRegNumber(block.Nodes); ok {
		link = DetailURL(reg)
	}
	return Record{
		Title:    textOr(block, titleSel, NoTitle),
		Price:    textOr(block, priceSel, NoPrice),
		Customer: textOr(block, customerSel, NoCustomer),
		Link:     link,
	}
}

// DetailURL returns the notice page for a registration number.
func DetailURL(regNumber string) string {
	return DetailURLPrefix + regNumber
}

// textOr returns the stripped text of the first descendant matching sel, or
// placeholder when there is none. A present but empty element yields "".
func textOr(block *goquery.Selection, sel cascadia.Selector, placeholder string) string {
	found := block.FindMatcher(sel)
	if found.Length() == 0 {
		return placeholder
	}
	return strippedText(found.Get(0))
}

// strippedText trims every descendant text node and concatenates the
// non-empty pieces without a separator.
func strippedText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		switch cur.Type {
		case html.TextNode:
			b.WriteString(strings.TrimSpace(cur.Data))
			return
		case html.ElementNode:
			switch strings.ToLower(cur.Data) {
			case "script", "style", "template":
				return
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// findRegNumber scans nodes in serialization order, attribute values before
// children, and returns the digits of the first regNumber=<digits> pair.
func findRegNumber(nodes []*html.Node) (string, bool) {
	var found string
	var walk func(*html.Node) bool
	walk = func(cur *html.Node) bool {
		switch cur.Type {
		case html.ElementNode:
			for _, attr := range cur.Attr {
				if m := regNumberRe.FindStringSubmatch(attr.Val); m != nil {
					found = m[1]
					return true
				}
			}
		case html.TextNode, html.CommentNode:
			if m := regNumberRe.FindStringSubmatch(cur.Data); m != nil {
				found = m[1]
				return true
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, n := range nodes {
		if walk(n) {
			return found, true
		}
	}
	return "", false
}
