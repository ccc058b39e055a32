package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const SERVERS_COLLECTION = "servers"

// Server represents a game server and the region it has been assigned to.
// A region is assigned once, the first time the server is observed, and is
// never changed afterwards: all of the server's matches rate into that region.
type Server struct {
	// Name is the server's hostname with QW control characters escaped.
	Name string `firestore:"name"`

	// Region is one of the fixed region names (e.g. "Europe").
	Region string `firestore:"region"`
}

type ServerNotFound string

func (e ServerNotFound) Error() string {
	return string(e)
}

// GetServer looks a server up by its escaped hostname.
func GetServer(ctx context.Context, client *firestore.Client, name string) (Server, error) {
	var s Server
	snap, err := client.Collection(SERVERS_COLLECTION).Doc(NameID(name)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return s, ServerNotFound(fmt.Sprintf("server '%s' not found", name))
	}
	if err != nil {
		return s, fmt.Errorf("GetServer: unable to get server '%s': %w", name, err)
	}
	if err := snap.DataTo(&s); err != nil {
		return s, fmt.Errorf("GetServer: unable to convert server document '%s': %w", snap.Ref.ID, err)
	}
	return s, nil
}

// CreateServer writes a new server document. It fails if the server already
// exists: the first observed region assignment wins.
func CreateServer(ctx context.Context, client *firestore.Client, server Server) error {
	ref := client.Collection(SERVERS_COLLECTION).Doc(NameID(server.Name))
	if _, err := ref.Create(ctx, &server); err != nil {
		return fmt.Errorf("CreateServer: unable to create server '%s': %w", server.Name, err)
	}
	return nil
}

// GetRegions returns the distinct regions of all known servers, sorted order
// not guaranteed.
func GetRegions(ctx context.Context, client *firestore.Client) ([]string, error) {
	iter := client.Collection(SERVERS_COLLECTION).Documents(ctx)
	defer iter.Stop()
	seen := make(map[string]struct{})
	var regions []string
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("GetRegions: unable to iterate servers: %w", err)
		}
		var s Server
		if err := snap.DataTo(&s); err != nil {
			return nil, fmt.Errorf("GetRegions: unable to convert server document '%s': %w", snap.Ref.ID, err)
		}
		if _, ok := seen[s.Region]; !ok {
			seen[s.Region] = struct{}{}
			regions = append(regions, s.Region)
		}
	}
	return regions, nil
}
