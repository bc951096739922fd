package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zydeico/sdk-go/internal/site/usecase"
)

// RunResolveSite resolves the site id for a public key and country code.
// Resolution never fails; when the backend is unreachable the static
// country table provides the answer.
func RunResolveSite(
	ctx context.Context,
	resolver usecase.SiteResolver,
	logger *slog.Logger,
	w io.Writer,
	publicKey string,
	country string,
	format string,
) error {
	if country == "" {
		return fmt.Errorf("country is required")
	}

	logger.Info("resolving site id", slog.String("country", country))

	siteID := resolver.ResolveSiteID(ctx, publicKey, country)

	if format == "json" {
		return writeJSON(w, map[string]string{"site_id": siteID, "country": country})
	}

	fmt.Fprintf(w, "Site ID for %s: %s\n", country, siteID)
	return nil
}
