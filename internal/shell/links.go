package shell

import (
	"regexp"
	"strings"
)

// rootFiles live at the site root and need a ../ prefix when linked from
// a page under /pages/.
var rootFiles = []string{
	"index.html", "shop.html", "product.html", "cart.html", "checkout.html",
	"privacy.html", "terms.html", "returns.html", "shipping.html", "faq.html",
}

// pagesFiles live inside /pages/ and are already correct relative links.
var pagesFiles = []string{
	"about.html", "contact.html", "get-quote.html", "how-to-order.html",
}

// pageMap resolves a filename to its nav identifier.
var pageMap = map[string]string{
	"index.html":        "home",
	"":                  "home",
	"shop.html":         "shop",
	"product.html":      "product",
	"cart.html":         "cart",
	"checkout.html":     "checkout",
	"about.html":        "about",
	"how-to-order.html": "how-to-order",
	"contact.html":      "contact",
	"get-quote.html":    "get-quote",
	"privacy.html":      "privacy",
	"terms.html":        "terms",
	"returns.html":      "returns",
	"shipping.html":     "shipping",
	"faq.html":          "faq",
}

var hrefPattern = regexp.MustCompile(`href="([^"]*)"`)

// InPages reports whether the page being composed is served from the
// one-level /pages/ subdirectory.
func InPages(pagePath string) bool {
	return strings.Contains(pagePath, "/pages/")
}

// RewriteLinks prefixes root-level relative links with ../ when the
// fragment is embedded in a page under /pages/. External URLs, absolute
// paths, anchors, and already-relative links are left alone, and query
// strings are preserved. Unrecognized files are left as-is, the safe
// default.
func RewriteLinks(html string, inPages bool) string {
	if !inPages {
		return html
	}
	return hrefPattern.ReplaceAllStringFunc(html, func(attr string) string {
		href := strings.TrimSuffix(strings.TrimPrefix(attr, `href="`), `"`)
		rewritten := rewriteHref(href)
		return `href="` + rewritten + `"`
	})
}

func rewriteHref(href string) string {
	trimmed := strings.TrimSpace(href)
	if trimmed == "" {
		return href
	}
	if strings.HasPrefix(trimmed, "http") || strings.HasPrefix(trimmed, "//") {
		return href
	}
	if strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ".") {
		return href
	}

	filename, _, _ := strings.Cut(trimmed, "?")
	if strings.HasPrefix(trimmed, "pages/") || contains(pagesFiles, filename) {
		return href
	}
	if contains(rootFiles, filename) {
		return "../" + href
	}
	return href
}

// ActiveNav resolves the nav identifier for the current page path. The
// shop dropdown also activates for the product page.
func ActiveNav(pagePath string) string {
	parts := strings.Split(pagePath, "/")
	file := parts[len(parts)-1]
	return pageMap[file]
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
