package breeze

import "encoding/json"

// Person represents a person record. Details holds the per-tenant profile
// fields, which are only present when details were requested; their shape
// varies per tenant so they stay raw.
type Person struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	MiddleName string          `json:"middle_name"`
	NickName   string          `json:"nick_name"`
	Path       string          `json:"path"`
	Details    json.RawMessage `json:"details,omitempty"`
}

// DisplayName returns the best available name for a person
func (p *Person) DisplayName() string {
	switch {
	case p.NickName != "" && p.LastName != "":
		return p.NickName + " " + p.LastName
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.LastName
	}
}

// ProfileSection represents one section of the tenant's profile layout
type ProfileSection struct {
	ID        string         `json:"id"`
	OID       string         `json:"oid"`
	SectionID string         `json:"section_id"`
	Name      string         `json:"name"`
	Position  string         `json:"position"`
	Profile   string         `json:"profile_id"`
	CreatedOn string         `json:"created_on"`
	Fields    []ProfileField `json:"fields"`
}

// ProfileField represents a single field inside a profile section
type ProfileField struct {
	ID        string          `json:"field_id"`
	ProfileID string          `json:"profile_section_id"`
	FieldType string          `json:"field_type"`
	Name      string          `json:"name"`
	Position  string          `json:"position"`
	Options   json.RawMessage `json:"options,omitempty"`
}

// Tag represents a people tag
type Tag struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedOn string `json:"created_on"`
	FolderID  string `json:"folder_id"`
}

// TagFolder represents a folder grouping tags
type TagFolder struct {
	ID        string `json:"id"`
	ParentID  string `json:"parent_id"`
	Name      string `json:"name"`
	CreatedOn string `json:"created_on"`
}

// Event represents a calendar event instance
type Event struct {
	ID            string `json:"id"`
	OID           string `json:"oid"`
	EventID       string `json:"event_id"`
	Name          string `json:"name"`
	CategoryID    string `json:"category_id"`
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
	IsModified    string `json:"is_modified"`
	CreatedOn     string `json:"created_on"`
}

// AttendanceRecord represents one check-in row for an event instance
type AttendanceRecord struct {
	InstanceID string          `json:"instance_id"`
	PersonID   string          `json:"person_id"`
	CheckOut   string          `json:"check_out"`
	CreatedOn  string          `json:"created_on"`
	Details    json.RawMessage `json:"details,omitempty"`
}

// Contribution represents a giving record
type Contribution struct {
	ID             string          `json:"id"`
	PaymentID      string          `json:"payment_id"`
	PersonID       string          `json:"person_id"`
	MethodID       string          `json:"method_id"`
	Method         string          `json:"method"`
	Amount         string          `json:"amount"`
	PaidOn         string          `json:"paid_on"`
	Note           string          `json:"note"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	EnvelopeNumber string          `json:"envelope_number"`
	BatchID        string          `json:"batch_id"`
	BatchName      string          `json:"batch_name"`
	Funds          json.RawMessage `json:"funds,omitempty"`
}

// Fund represents a giving fund
type Fund struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TaxDeductible string `json:"tax_deductible"`
	IsDefault     string `json:"is_default"`
	CreatedOn     string `json:"created_on"`
	Total         string `json:"total,omitempty"`
}

// Campaign represents a pledge campaign
type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	NumberOfPledges string `json:"number_of_pledges"`
	TotalPledged    string `json:"total_pledged"`
	CreatedOn       string `json:"created_on"`
}

// Pledge represents one pledge within a campaign
type Pledge struct {
	ID           string `json:"id"`
	CampaignID   string `json:"campaign_id"`
	PersonID     string `json:"person_id"`
	Amount       string `json:"amount"`
	Frequency    string `json:"frequency"`
	FundedAmount string `json:"funded_amount"`
	StartedOn    string `json:"started_on"`
	EndsOn       string `json:"ends_on"`
}
