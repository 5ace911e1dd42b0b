package breeze

import (
	"context"
)

// API defines the interface for Breeze operations
type API interface {
	// TestConnection verifies the client can reach the Breeze API
	TestConnection(ctx context.Context) error

	// People
	ListPeople(ctx context.Context, opts PeopleOptions) ([]Person, error)
	GetPersonDetails(ctx context.Context, personID string) (*Person, error)
	GetPersonDetailsBatch(ctx context.Context, personIDs []string) (map[string]*Person, error)
	ListProfileFields(ctx context.Context) ([]ProfileSection, error)

	// Tags
	ListTags(ctx context.Context, folderID string) ([]Tag, error)
	ListTagFolders(ctx context.Context) ([]TagFolder, error)

	// Events and attendance
	ListEvents(ctx context.Context, opts EventsOptions) ([]Event, error)
	GetEvent(ctx context.Context, instanceID string) (*Event, error)
	AddAttendance(ctx context.Context, personID, instanceID string, direction AttendanceDirection) error
	CheckInPerson(ctx context.Context, personID, instanceID string) error
	CheckOutPerson(ctx context.Context, personID, instanceID string) error
	ListAttendance(ctx context.Context, instanceID string, details bool) ([]AttendanceRecord, error)
	ListEligiblePeople(ctx context.Context, instanceID string) ([]Person, error)

	// Giving
	ListContributions(ctx context.Context, opts ContributionsOptions) ([]Contribution, error)
	AddContribution(ctx context.Context, contribution ContributionParams) (string, error)
	EditContribution(ctx context.Context, paymentID string, contribution ContributionParams) (string, error)
	DeleteContribution(ctx context.Context, paymentID string) (string, error)
	ListFunds(ctx context.Context, includeTotals bool) ([]Fund, error)
	ListCampaigns(ctx context.Context) ([]Campaign, error)
	ListPledges(ctx context.Context, campaignID string) ([]Pledge, error)
}

// compile-time check that Client satisfies API
var _ API = (*Client)(nil)
