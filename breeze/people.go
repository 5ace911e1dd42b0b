package breeze

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds concurrent person-detail fetches.
const DefaultBatchConcurrency = 10

// PeopleOptions narrows a people listing. Zero values are omitted from the
// request; the API then applies its own defaults.
type PeopleOptions struct {
	Limit      int
	Offset     int
	Details    bool
	FilterJSON string
}

// ListPeople retrieves people matching the given options
func (c *Client) ListPeople(ctx context.Context, opts PeopleOptions) ([]Person, error) {
	var qp params
	qp.addInt("limit", opts.Limit)
	qp.addInt("offset", opts.Offset)
	qp.addBool("details", opts.Details)
	qp.addString("filter_json", opts.FilterJSON)

	body, err := c.get(ctx, "/api/people", &qp)
	if err != nil {
		return nil, fmt.Errorf("failed to get people: %w", err)
	}

	var people []Person
	if err := decodeInto(body, &people); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(people)).Msg("Retrieved people from Breeze")
	return people, nil
}

// GetPersonDetails retrieves the full record for a single person
func (c *Client) GetPersonDetails(ctx context.Context, personID string) (*Person, error) {
	if personID == "" {
		return nil, fmt.Errorf("%w: person ID is required", ErrInvalidArgument)
	}

	body, err := c.get(ctx, "/api/people/"+personID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get person %s: %w", personID, err)
	}

	var person Person
	if err := decodeInto(body, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// GetPersonDetailsBatch fetches full records for multiple people with
// bounded concurrency. Individual lookup failures abort the batch.
func (c *Client) GetPersonDetailsBatch(ctx context.Context, personIDs []string) (map[string]*Person, error) {
	results := make(map[string]*Person, len(personIDs))
	if len(personIDs) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultBatchConcurrency)

	var mu sync.Mutex

	for _, id := range personIDs {
		g.Go(func() error {
			person, err := c.GetPersonDetails(ctx, id)
			if err != nil {
				return err
			}

			mu.Lock()
			results[id] = person
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ListProfileFields retrieves the tenant's profile layout
func (c *Client) ListProfileFields(ctx context.Context) ([]ProfileSection, error) {
	body, err := c.get(ctx, "/api/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile fields: %w", err)
	}

	var sections []ProfileSection
	if err := decodeInto(body, &sections); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(sections)).Msg("Retrieved profile sections from Breeze")
	return sections, nil
}
