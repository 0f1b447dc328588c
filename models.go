package claimflow

// Identity is a validated identity reference. Only an IdentityValidator
// should produce one from caller-supplied text.
type Identity string

// String returns the string representation
func (i Identity) String() string {
	return string(i)
}

// ClaimState is the lifecycle position of the single claim slot
type ClaimState string

const (
	ClaimStateAbsent    ClaimState = "ABSENT"
	ClaimStateSubmitted ClaimState = "SUBMITTED"
	ClaimStateApproved  ClaimState = "APPROVED"
)

// IsTerminal returns true if no operation can move the claim out of this state
func (s ClaimState) IsTerminal() bool {
	return s == ClaimStateApproved
}

// String returns the string representation
func (s ClaimState) String() string {
	return string(s)
}

// Claim is the single persisted medical-insurance claim record
type Claim struct {
	Patient       Identity `json:"patient" dynamodbav:"patient"`
	MedicalRecord string   `json:"medical_record" dynamodbav:"medical_record"`
	IsApproved    bool     `json:"is_approved" dynamodbav:"is_approved"`
}

// State derives the lifecycle state of a loaded claim. A nil claim is absent.
func (c *Claim) State() ClaimState {
	switch {
	case c == nil:
		return ClaimStateAbsent
	case c.IsApproved:
		return ClaimStateApproved
	default:
		return ClaimStateSubmitted
	}
}

// MessageInfo carries the authenticated caller of a command
type MessageInfo struct {
	Sender Identity `json:"sender"`
}

// InstantiateMsg initializes the contract. It carries no fields.
type InstantiateMsg struct{}

// ExecuteMsg is a tagged union of the state-changing commands.
// Exactly one variant must be set; on the wire it encodes as
// {"submit_claim":{...}} or {"approve_claim":{...}}.
type ExecuteMsg struct {
	SubmitClaim  *SubmitClaimMsg  `json:"submit_claim,omitempty"`
	ApproveClaim *ApproveClaimMsg `json:"approve_claim,omitempty"`
}

// SubmitClaimMsg creates the claim
type SubmitClaimMsg struct {
	Patient       string `json:"patient"`
	MedicalRecord string `json:"medical_record"`
}

// ApproveClaimMsg approves the stored claim on behalf of Admin
type ApproveClaimMsg struct {
	Admin string `json:"admin"`
}

// QueryMsg is the read command category. It has no variants and every
// query is rejected.
type QueryMsg struct{}

// Attribute is a key/value pair attached to a successful response
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response acknowledges a successful command
type Response struct {
	RequestID  string      `json:"requestId"`
	Attributes []Attribute `json:"attributes"`
}
