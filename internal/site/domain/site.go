// Package domain defines the merchant site model and the deterministic
// country fallback table used when the backend cannot be reached.
package domain

// DefaultSiteID is returned for countries outside the supported table.
const DefaultSiteID = "MLA"

// countrySites maps ISO 3166-1 alpha-3 country codes to site identifiers.
var countrySites = map[string]string{
	"ARG": "MLA",
	"BRA": "MLB",
	"CHL": "MLC",
	"COL": "MCO",
	"MEX": "MLM",
	"PER": "MPE",
	"URY": "MLU",
	"VEN": "MLV",
}

// SiteForCountry returns the static site id for a country, falling back to
// DefaultSiteID for unsupported countries so the lookup is total.
func SiteForCountry(country string) string {
	if site, ok := countrySites[country]; ok {
		return site
	}
	return DefaultSiteID
}
