// Package codegen produces the human-readable identifiers embedded with
// provenance (business, time period, sequence) that accompany the numeric
// primary keys. All functions are pure and deterministic; global uniqueness
// is enforced by unique constraints at the persistence layer, and a
// constraint violation aborts the whole creating transaction.
package codegen

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const (
	businessPrefix = "Biz"
	productPrefix  = "Prd"
	salePrefix     = "Sl"

	// FallbackSuffix is used when a business has no code prefix yet.
	// Post-registration that should never happen, but code generation must
	// not fail on a degraded row.
	FallbackSuffix = "X0000"

	// ownerStaffCode is the sentinel staff segment for sales recorded by the
	// owner or an unidentified principal.
	ownerStaffCode = "00"
)

// period renders the YYMM segment for the given instant.
func period(t time.Time) string {
	return t.Format("0601")
}

// initial returns the uppercased first letter of name, or 'X' when the name
// is blank.
func initial(name string) rune {
	for _, r := range strings.TrimSpace(name) {
		return unicode.ToUpper(r)
	}
	return 'X'
}

// BusinessCode builds the code persisted as Business.CodePrefix:
// Biz/YYMM/<FirstLetterOfName><businessID padded to 4 digits>.
// It must be called after the business row has been assigned its identity.
func BusinessCode(name string, businessID uint, registeredAt time.Time) string {
	return fmt.Sprintf("%s/%s/%c%04d", businessPrefix, period(registeredAt), initial(name), businessID)
}

// BusinessSuffix extracts the <letter><sequence> segment of a business code
// (the text after the final slash). A nil or empty prefix yields
// FallbackSuffix instead of failing.
func BusinessSuffix(codePrefix *string) string {
	if codePrefix == nil || *codePrefix == "" {
		return FallbackSuffix
	}
	code := *codePrefix
	if i := strings.LastIndexByte(code, '/'); i >= 0 {
		code = code[i+1:]
	}
	if code == "" {
		return FallbackSuffix
	}
	return code
}

// ProductCode builds Prd/YYMM/<businessSuffix>/<productID padded to 3 digits>.
// Like BusinessCode it consumes the row's own assigned identity, so it runs
// after INSERT but inside the creating transaction.
func ProductCode(codePrefix *string, productID uint, createdAt time.Time) string {
	return fmt.Sprintf("%s/%s/%s/%03d", productPrefix, period(createdAt), BusinessSuffix(codePrefix), productID)
}

// StaffCode derives the fixed-width 2-digit staff segment from the acting
// staff's numeric id (modulo 100). Owners and unidentified sellers get the
// sentinel "00".
func StaffCode(staffID *uint) string {
	if staffID == nil {
		return ownerStaffCode
	}
	return fmt.Sprintf("%02d", *staffID%100)
}

// SaleCode builds
// Sl/<businessSuffix><staffCode>/<productID %03d><quantity %02d><saleID %04d>.
// Values wider than their padding render at natural width; padding is a
// minimum, never a truncation.
func SaleCode(codePrefix *string, staffID *uint, productID uint, quantity int, saleID uint) string {
	return fmt.Sprintf("%s/%s%s/%03d%02d%04d",
		salePrefix, BusinessSuffix(codePrefix), StaffCode(staffID), productID, quantity, saleID)
}
