package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishithapentyala/Library-Management-System/app/notify"
	"github.com/rishithapentyala/Library-Management-System/testutil/fixtures"
)

func Test_LoanReturned_MentionsFineOnlyWhenLate(t *testing.T) {
	// arrange
	loan := loanDue(fixtures.FakeClock())
	loan.Returned = true

	// act
	onTime := notify.LoanReturned(loan, fixtures.FakeClock())
	loan.Fine = 3
	late := notify.LoanReturned(loan, fixtures.FakeClock())

	// assert
	assert.NotContains(t, onTime.Message, "fine")
	assert.Contains(t, late.Message, "the fine is 3")
	assert.Equal(t, 3, late.Fine)
}

func Test_Encode_UsesCamelCaseAndOmitsEmptyIDs(t *testing.T) {
	// arrange
	loan := loanDue(fixtures.FakeClock())
	request := notify.RequestDenied(
		// a denied request has no loan
		requestOf(loan),
		fixtures.FakeClock(),
	)

	// act
	payload, err := notify.Encode(request)

	// assert
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"kind":"request_denied"`)
	assert.Contains(t, string(payload), `"requestId"`)
	assert.NotContains(t, string(payload), `"loanId"`)
}
