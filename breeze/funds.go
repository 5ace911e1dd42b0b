package breeze

import (
	"context"
	"fmt"
)

// ListFunds retrieves all giving funds, optionally with per-fund totals
func (c *Client) ListFunds(ctx context.Context, includeTotals bool) ([]Fund, error) {
	var qp params
	qp.addBool("include_totals", includeTotals)

	body, err := c.get(ctx, "/api/funds/list", &qp)
	if err != nil {
		return nil, fmt.Errorf("failed to get funds: %w", err)
	}

	var funds []Fund
	if err := decodeInto(body, &funds); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(funds)).Msg("Retrieved funds from Breeze")
	return funds, nil
}

// ListCampaigns retrieves all pledge campaigns
func (c *Client) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	body, err := c.get(ctx, "/api/pledges/list_campaigns", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns: %w", err)
	}

	var campaigns []Campaign
	if err := decodeInto(body, &campaigns); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(campaigns)).Msg("Retrieved campaigns from Breeze")
	return campaigns, nil
}

// ListPledges retrieves the pledges made within a campaign
func (c *Client) ListPledges(ctx context.Context, campaignID string) ([]Pledge, error) {
	if campaignID == "" {
		return nil, fmt.Errorf("%w: campaign ID is required", ErrInvalidArgument)
	}

	var qp params
	qp.add("campaign_id", campaignID)

	body, err := c.get(ctx, "/api/pledges/list_pledges", &qp)
	if err != nil {
		return nil, fmt.Errorf("failed to get pledges for campaign %s: %w", campaignID, err)
	}

	var pledges []Pledge
	if err := decodeInto(body, &pledges); err != nil {
		return nil, err
	}
	return pledges, nil
}
