package updateservers

import (
	"fmt"
	"log"
	"strings"
	"time"

	qwfs "github.com/qwstats/qwrank/internal/firestore"
	"github.com/qwstats/qwrank/internal/hub"
	"github.com/qwstats/qwrank/internal/qw"
)

const defaultTimeout = 5 * time.Second

// UpdateServers refreshes the server table: each listed server is asked for
// its hostname over UDP, geolocated by IP, and mapped to a region. Existing
// servers keep their first-assigned region; only new servers are written.
// Servers that time out or report no hostname are skipped silently enough to
// let the rest of the list proceed.
func UpdateServers(ctx *Context) error {
	timeout := ctx.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	addresses, err := ctx.Hub.ServerAddresses()
	if err != nil {
		return fmt.Errorf("UpdateServers: %w", err)
	}

	// Geolocation cache: many servers share a host.
	regionByIP := make(map[string]string)

	count := 0
	for _, address := range addresses {
		count++
		name, err := qw.QueryHostname(address, timeout)
		if err != nil {
			log.Printf("%s: %v", address, err)
			continue
		}

		_, err = qwfs.GetServer(ctx, ctx.FirestoreClient, name)
		switch err.(type) {
		case nil:
			continue
		case qwfs.ServerNotFound:
		default:
			return fmt.Errorf("UpdateServers: %w", err)
		}

		ip := address
		if i := strings.LastIndex(address, ":"); i >= 0 {
			ip = address[:i]
		}
		region, ok := regionByIP[ip]
		if !ok {
			country, err := ctx.Hub.CountryForIP(ip)
			if err != nil {
				log.Printf("%s: %v", address, err)
				continue
			}
			region, ok = hub.RegionForCountry(country)
			if !ok {
				log.Printf("%s: unknown region for country '%s'", address, country)
				continue
			}
			regionByIP[ip] = region
		}

		if ctx.DryRun {
			log.Printf("DRY RUN: would add server '%s' in region '%s'", name, region)
			continue
		}
		if err := qwfs.CreateServer(ctx, ctx.FirestoreClient, qwfs.Server{Name: name, Region: region}); err != nil {
			return fmt.Errorf("UpdateServers: %w", err)
		}
		log.Printf("%s: added '%s' in region '%s'", address, name, region)
	}
	log.Printf("processed %d servers", count)
	return nil
}
