// File: /models/status_test.go
package models

import (
	"testing"
)

func TestInquiryStatusValid(t *testing.T) {
	for _, s := range []InquiryStatus{InquiryPending, InquiryInProgress, InquiryResolved, InquiryClosed} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if InquiryStatus("Done").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
	if InquiryStatus("pending").Valid() {
		t.Fatalf("status values are case sensitive")
	}
}

func TestTestDriveStatusValid(t *testing.T) {
	for _, s := range []TestDriveStatus{TestDrivePending, TestDriveConfirmed, TestDriveCompleted, TestDriveCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if TestDriveStatus("Canceled").Valid() {
		t.Fatalf("expected misspelled status to be invalid")
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAdmin.Valid() {
		t.Fatalf("expected built-in roles to be valid")
	}
	if Role("Superuser").Valid() {
		t.Fatalf("expected unknown role to be invalid")
	}
}
