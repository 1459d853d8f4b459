// File: /models/status.go
package models

// Role of a user account.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// InquiryStatus is a closed set. Any valid status may follow any other;
// there is no transition table for inquiries.
type InquiryStatus string

const (
	InquiryPending    InquiryStatus = "Pending"
	InquiryInProgress InquiryStatus = "InProgress"
	InquiryResolved   InquiryStatus = "Resolved"
	InquiryClosed     InquiryStatus = "Closed"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryPending, InquiryInProgress, InquiryResolved, InquiryClosed:
		return true
	}
	return false
}

// TestDriveStatus is a closed set with the same free-transition rule as
// InquiryStatus.
type TestDriveStatus string

const (
	TestDrivePending   TestDriveStatus = "Pending"
	TestDriveConfirmed TestDriveStatus = "Confirmed"
	TestDriveCompleted TestDriveStatus = "Completed"
	TestDriveCancelled TestDriveStatus = "Cancelled"
)

func (s TestDriveStatus) Valid() bool {
	switch s {
	case TestDrivePending, TestDriveConfirmed, TestDriveCompleted, TestDriveCancelled:
		return true
	}
	return false
}
