package utils

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"

	twilio "github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	lookupsv2 "github.com/twilio/twilio-go/rest/lookups/v2"
)

// -----------------------------------------------------------------------
// 1) PHONE NUMBER VALIDATION
// -----------------------------------------------------------------------

var e164Regex = regexp.MustCompile(`^\+?[0-9][0-9\s-]{6,17}$`)

// IsPlausiblePhone reports whether the number looks like a dialable
// phone number (optionally E.164 prefixed, digits with separators).
func IsPlausiblePhone(number string) bool { return e164Regex.MatchString(number) }

// ValidatePhoneNumber validates `number`.
//
//   - If a non-nil Twilio RestClient is provided, the function performs a
//     Twilio Lookups V2 fetch (free "basic" tier).
//   - Otherwise it only does the local plausibility check.
//
// It returns (true, nil) only when the phone number is well-formed and,
// when checked remotely, known to Twilio.
func ValidatePhoneNumber(
	ctx context.Context,
	number string,
	tw *twilio.RestClient,
) (bool, error) {
	if !IsPlausiblePhone(number) {
		return false, nil
	}

	if tw != nil {
		_, err := tw.LookupsV2.FetchPhoneNumber(number, &lookupsv2.FetchPhoneNumberParams{})
		if err == nil {
			return true, nil
		}
		if restErr, ok := err.(*twilioclient.TwilioRestError); ok {
			if restErr.Status == 404 { // unable to find that phone number
				return false, nil
			}
			return false, fmt.Errorf("twilio lookup failed: %d %s",
				restErr.Status, restErr.Error())
		}
		// Context cancel, network failure, etc.
		return false, err
	}

	return true, nil
}

// -----------------------------------------------------------------------
// 2) EMAIL VALIDATION
// -----------------------------------------------------------------------

// IsValidEmailSyntax does RFC-5322-ish syntax only (no DNS).
// mail.ParseAddress is surprisingly strict.
func IsValidEmailSyntax(e string) bool {
	_, err := mail.ParseAddress(e)
	return err == nil
}
