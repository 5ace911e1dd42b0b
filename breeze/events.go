package breeze

import (
	"context"
	"fmt"
)

// AttendanceDirection selects whether an attendance record marks a person
// entering or leaving an event instance.
type AttendanceDirection string

const (
	// DirectionIn checks a person in to an event instance.
	DirectionIn AttendanceDirection = "in"
	// DirectionOut checks a person out of an event instance.
	DirectionOut AttendanceDirection = "out"
)

// Valid reports whether the direction is one the API accepts.
func (d AttendanceDirection) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// EventsOptions narrows an event listing to a date range. Dates use the
// API's YYYY-MM-DD format; empty values fall back to the API's default of
// the current month.
type EventsOptions struct {
	Start string
	End   string
}

// ListEvents retrieves event instances in the given range
func (c *Client) ListEvents(ctx context.Context, opts EventsOptions) ([]Event, error) {
	var qp params
	qp.addString("start", opts.Start)
	qp.addString("end", opts.End)

	body, err := c.get(ctx, "/api/events", &qp)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	var events []Event
	if err := decodeInto(body, &events); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(events)).Msg("Retrieved events from Breeze")
	return events, nil
}

// GetEvent retrieves a single event instance
func (c *Client) GetEvent(ctx context.Context, instanceID string) (*Event, error) {
	if instanceID == "" {
		return nil, fmt.Errorf("%w: instance ID is required", ErrInvalidArgument)
	}

	var qp params
	qp.add("instance_id", instanceID)

	body, err := c.get(ctx, "/api/events/list_event", &qp)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", instanceID, err)
	}

	var event Event
	if err := decodeInto(body, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// AddAttendance records a person entering or leaving an event instance.
// Both identifiers are required and direction must be in or out; validation
// failures surface before any request is made.
func (c *Client) AddAttendance(ctx context.Context, personID, instanceID string, direction AttendanceDirection) error {
	if personID == "" {
		return fmt.Errorf("%w: person ID is required", ErrInvalidArgument)
	}
	if instanceID == "" {
		return fmt.Errorf("%w: instance ID is required", ErrInvalidArgument)
	}
	if !direction.Valid() {
		return fmt.Errorf("%w: direction must be %q or %q, got %q", ErrInvalidArgument, DirectionIn, DirectionOut, direction)
	}

	var qp params
	qp.add("person_id", personID)
	qp.add("instance_id", instanceID)
	qp.add("direction", string(direction))

	if _, err := c.get(ctx, "/api/events/attendance/add", &qp); err != nil {
		return fmt.Errorf("failed to record attendance for person %s: %w", personID, err)
	}

	c.logger.Info().
		Str("person_id", personID).
		Str("instance_id", instanceID).
		Str("direction", string(direction)).
		Msg("Recorded attendance")
	return nil
}

// CheckInPerson checks a person in to an event instance
func (c *Client) CheckInPerson(ctx context.Context, personID, instanceID string) error {
	return c.AddAttendance(ctx, personID, instanceID, DirectionIn)
}

// CheckOutPerson checks a person out of an event instance
func (c *Client) CheckOutPerson(ctx context.Context, personID, instanceID string) error {
	return c.AddAttendance(ctx, personID, instanceID, DirectionOut)
}

// ListAttendance retrieves attendance records for an event instance
func (c *Client) ListAttendance(ctx context.Context, instanceID string, details bool) ([]AttendanceRecord, error) {
	if instanceID == "" {
		return nil, fmt.Errorf("%w: instance ID is required", ErrInvalidArgument)
	}

	var qp params
	qp.add("instance_id", instanceID)
	qp.addBool("details", details)

	body, err := c.get(ctx, "/api/events/attendance/list", &qp)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for event %s: %w", instanceID, err)
	}

	var records []AttendanceRecord
	if err := decodeInto(body, &records); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(records)).Str("instance_id", instanceID).
		Msg("Retrieved attendance records from Breeze")
	return records, nil
}

// ListEligiblePeople retrieves the people eligible to check in to an
// event instance
func (c *Client) ListEligiblePeople(ctx context.Context, instanceID string) ([]Person, error) {
	if instanceID == "" {
		return nil, fmt.Errorf("%w: instance ID is required", ErrInvalidArgument)
	}

	var qp params
	qp.add("instance_id", instanceID)

	body, err := c.get(ctx, "/api/events/attendance/eligible", &qp)
	if err != nil {
		return nil, fmt.Errorf("failed to get eligible people for event %s: %w", instanceID, err)
	}

	var people []Person
	if err := decodeInto(body, &people); err != nil {
		return nil, err
	}
	return people, nil
}
