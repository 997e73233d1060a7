package start_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
	"github.com/m04kA/CourtEase-BookingService/internal/integrations/profileservice"
	"github.com/m04kA/CourtEase-BookingService/pkg/ptr"
)

func TestValidateDateRange_ChecksInOrder(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	horizonEnd := domain.HorizonEnd(now)

	// Интервал и в прошлом, и перевёрнутый: первой должна сработать
	// проверка на прошлое
	start := now.Add(-2 * time.Hour)
	end := now.Add(-3 * time.Hour)

	err := validateDateRange(start, end, now, horizonEnd)
	require.ErrorIs(t, err, ErrPastDate)
}

func TestValidateDateRange_StartEqualsNowIsAllowed(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	horizonEnd := domain.HorizonEnd(now)

	err := validateDateRange(now, now.Add(time.Hour), now, horizonEnd)
	require.NoError(t, err)
}

func TestValidateRequest_NotesTooLong(t *testing.T) {
	longNotes := make([]byte, domain.MaxNotesLength+1)
	for i := range longNotes {
		longNotes[i] = 'a'
	}
	notes := string(longNotes)

	req := validRequest()
	req.Notes = &notes

	err := validateRequest(req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCustomerName(t *testing.T) {
	tests := []struct {
		name    string
		profile *profileservice.Profile
		email   string
		want    string
	}{
		{
			name:    "full name from profile",
			profile: &profileservice.Profile{FullName: ptr.Ptr("Budi Santoso")},
			email:   "budi@example.com",
			want:    "Budi Santoso",
		},
		{
			name:    "blank full name falls back to email local part",
			profile: &profileservice.Profile{FullName: ptr.Ptr("   ")},
			email:   "budi@example.com",
			want:    "budi",
		},
		{
			name:  "no profile uses email local part",
			email: "siti@example.com",
			want:  "siti",
		},
		{
			name: "no profile and no email falls back to default",
			want: defaultCustomerName,
		},
		{
			name:  "malformed email falls back to default",
			email: "@example.com",
			want:  defaultCustomerName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, customerName(tt.profile, tt.email))
		})
	}
}

func TestCustomerEmail(t *testing.T) {
	profile := &profileservice.Profile{Email: ptr.Ptr("profile@example.com")}

	assert.Equal(t, "profile@example.com", customerEmail(profile, "header@example.com"))
	assert.Equal(t, "header@example.com", customerEmail(nil, "header@example.com"))
	assert.Equal(t, "header@example.com", customerEmail(&profileservice.Profile{}, "header@example.com"))
}
