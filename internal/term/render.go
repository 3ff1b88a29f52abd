// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

import (
	"fmt"
	"io"
	"time"

	"github.com/taibuivan/hiraku/internal/platform/sec"
	"github.com/taibuivan/hiraku/internal/users/auth"
)

// RenderProfile writes the profile view: personal information, verification
// status, the optional address block, and the held tokens.
//
// Optional fields render conditionally — absent demographics and address
// lines are omitted entirely, mirroring the wire format's optionality.
func RenderProfile(out io.Writer, user *auth.User, tokens auth.TokenPair, tokenInfo *sec.TokenInfo) {
	if user == nil {
		fmt.Fprintln(out, "  (no active session)")
		return
	}

	fmt.Fprintf(out, "\n  Welcome back, %s!\n\n", user.FirstName)

	fmt.Fprintln(out, "  Personal Information")
	row(out, "Name", user.FullName())
	row(out, "Email", user.Email)
	row(out, "Role", user.Role)
	row(out, "Status", statusLabel(user.IsActive))
	if user.Phone != "" {
		row(out, "Phone", user.Phone)
	}
	if user.DateOfBirth != "" {
		row(out, "Date of Birth", user.DateOfBirth)
	}
	if user.Gender != "" {
		row(out, "Gender", user.Gender)
	}

	fmt.Fprintln(out, "\n  Verification Status")
	row(out, "Email Verified", verificationLabel(user.IsEmailVerified))
	row(out, "Phone Verified", verificationLabel(user.IsPhoneVerified))

	if user.Address != nil {
		fmt.Fprintln(out, "\n  Address Information")
		address := user.Address
		if address.Street != "" {
			row(out, "Street", address.Street)
		}
		if address.City != "" {
			row(out, "City", address.City)
		}
		if address.State != "" {
			row(out, "State", address.State)
		}
		if address.Country != "" {
			row(out, "Country", address.Country)
		}
		if address.ZipCode != "" {
			row(out, "ZIP Code", address.ZipCode)
		}
	}

	fmt.Fprintln(out, "\n  Authentication Tokens")
	row(out, "Access Token (JWT)", truncate(tokens.AccessToken, 50))
	row(out, "Refresh Token (UUID)", truncate(tokens.RefreshToken, 50))
	if tokenInfo != nil && !tokenInfo.ExpiresAt.IsZero() {
		row(out, "Access Expires In", tokenInfo.ExpiresIn(time.Now()).Round(time.Second).String())
	}
	fmt.Fprintln(out)
}

// RenderFieldErrors writes the per-field validation messages of a blocked
// submission, one line per field.
func RenderFieldErrors(out io.Writer, fields map[string]string, order []string) {
	for _, field := range order {
		if message, failed := fields[field]; failed {
			fmt.Fprintf(out, "  ! %s: %s\n", field, message)
		}
	}
}

func row(out io.Writer, label, value string) {
	fmt.Fprintf(out, "    %-22s %s\n", label+":", value)
}

func statusLabel(isActive bool) string {
	if isActive {
		return "Active"
	}
	return "Inactive"
}

func verificationLabel(isVerified bool) string {
	if isVerified {
		return "Verified"
	}
	return "Pending"
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max] + "..."
}
