package constants

const (
	StatusAlreadyApplied = "Application already exists"
	StatusNotPending     = "No pending application"
	StatusRoleMissing    = "Member role not found for party"
	StatusApplied        = "Application submitted"
	StatusApproveDone    = "Application approved"
	StatusRejectDone     = "Application rejected"
	StatusCancelDone     = "Application cancelled"
)

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailTaken         = "An account already exists for this email"
	MsgPartyNotFound      = "Party not found"
	MsgNotPartyOwner      = "Only the party owner can do this"
	MsgOwnerCannotApply   = "The party owner cannot apply for membership"
	MsgOwnerCannotSupport = "The party owner cannot support their own party"
)
