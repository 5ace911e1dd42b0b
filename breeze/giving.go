package breeze

import (
	"context"
	"fmt"
)

// ContributionsOptions narrows a contribution listing. Dates use the API's
// DD-MM-YYYY format. IncludeFamily requires PersonID.
type ContributionsOptions struct {
	StartDate      string
	EndDate        string
	PersonID       string
	IncludeFamily  bool
	AmountMin      string
	AmountMax      string
	MethodIDs      []string
	FundIDs        []string
	EnvelopeNumber string
	Batches        []string
	Forms          []string
}

// ContributionParams describes a contribution to add or edit. Either
// PersonID or UID must be set when adding: UID is the caller's own unique
// identifier for matching a person across systems.
type ContributionParams struct {
	Date        string
	Name        string
	PersonID    string
	UID         string
	Processor   string
	Method      string
	FundsJSON   string
	Amount      string
	Group       string
	BatchNumber string
	BatchName   string
}

func (p *ContributionParams) apply(qp *params) {
	qp.addString("date", p.Date)
	qp.addString("name", p.Name)
	qp.addString("person_id", p.PersonID)
	qp.addString("uid", p.UID)
	qp.addString("processor", p.Processor)
	qp.addString("method", p.Method)
	qp.addString("funds_json", p.FundsJSON)
	qp.addString("amount", p.Amount)
	qp.addString("group", p.Group)
	qp.addString("batch_number", p.BatchNumber)
	qp.addString("batch_name", p.BatchName)
}

// paymentResponse is the slice of a giving response the mutating
// operations care about.
type paymentResponse struct {
	PaymentID string `json:"payment_id"`
}

// ListContributions retrieves contributions matching the given options
func (c *Client) ListContributions(ctx context.Context, opts ContributionsOptions) ([]Contribution, error) {
	if opts.IncludeFamily && opts.PersonID == "" {
		return nil, fmt.Errorf("%w: include_family requires a person ID", ErrInvalidArgument)
	}

	var qp params
	qp.addString("start", opts.StartDate)
	qp.addString("end", opts.EndDate)
	qp.addString("person_id", opts.PersonID)
	qp.addBool("include_family", opts.IncludeFamily)
	qp.addString("amount_min", opts.AmountMin)
	qp.addString("amount_max", opts.AmountMax)
	qp.addList("method_ids", opts.MethodIDs)
	qp.addList("fund_ids", opts.FundIDs)
	qp.addString("envelope_number", opts.EnvelopeNumber)
	qp.addList("batches", opts.Batches)
	qp.addList("forms", opts.Forms)

	body, err := c.get(ctx, "/api/giving/view", &qp)
	if err != nil {
		return nil, fmt.Errorf("failed to get contributions: %w", err)
	}

	var contributions []Contribution
	if err := decodeInto(body, &contributions); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(contributions)).Msg("Retrieved contributions from Breeze")
	return contributions, nil
}

// AddContribution records a contribution and returns its payment ID
func (c *Client) AddContribution(ctx context.Context, contribution ContributionParams) (string, error) {
	if contribution.PersonID == "" && contribution.UID == "" {
		return "", fmt.Errorf("%w: a person ID or a uid is required", ErrInvalidArgument)
	}

	var qp params
	contribution.apply(&qp)

	body, err := c.get(ctx, "/api/giving/add", &qp)
	if err != nil {
		return "", fmt.Errorf("failed to add contribution: %w", err)
	}

	var payment paymentResponse
	if err := decodeInto(body, &payment); err != nil {
		return "", err
	}

	c.logger.Info().Str("payment_id", payment.PaymentID).Msg("Added contribution")
	return payment.PaymentID, nil
}

// EditContribution updates an existing contribution and returns the payment
// ID of the updated record
func (c *Client) EditContribution(ctx context.Context, paymentID string, contribution ContributionParams) (string, error) {
	if paymentID == "" {
		return "", fmt.Errorf("%w: payment ID is required", ErrInvalidArgument)
	}

	var qp params
	qp.add("payment_id", paymentID)
	contribution.apply(&qp)

	body, err := c.get(ctx, "/api/giving/edit", &qp)
	if err != nil {
		return "", fmt.Errorf("failed to edit contribution %s: %w", paymentID, err)
	}

	var payment paymentResponse
	if err := decodeInto(body, &payment); err != nil {
		return "", err
	}

	c.logger.Info().Str("payment_id", payment.PaymentID).Msg("Edited contribution")
	return payment.PaymentID, nil
}

// DeleteContribution removes a contribution and returns the payment ID of
// the deleted record
func (c *Client) DeleteContribution(ctx context.Context, paymentID string) (string, error) {
	if paymentID == "" {
		return "", fmt.Errorf("%w: payment ID is required", ErrInvalidArgument)
	}

	var qp params
	qp.add("payment_id", paymentID)

	body, err := c.get(ctx, "/api/giving/delete", &qp)
	if err != nil {
		return "", fmt.Errorf("failed to delete contribution %s: %w", paymentID, err)
	}

	var payment paymentResponse
	if err := decodeInto(body, &payment); err != nil {
		return "", err
	}

	c.logger.Info().Str("payment_id", payment.PaymentID).Msg("Deleted contribution")
	return payment.PaymentID, nil
}
