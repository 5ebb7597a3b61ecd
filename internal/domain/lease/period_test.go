//go:build unit

package lease_test

import (
	"testing"
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(lease.TimeLayout, s)
	require.NoError(t, err)
	return v
}

func labels(hours []lease.Hour) []string {
	out := make([]string, len(hours))
	for i, h := range hours {
		out[i] = h.String()
	}
	return out
}

func TestPeriod_Hours(t *testing.T) {
	testCases := []struct {
		name      string
		from      string
		till      string
		wantCount int
		wantFirst string
		wantLast  string
	}{
		{name: "half hour offset inside one day", from: "2017-01-01 01:30:00", till: "2017-01-01 02:01:00", wantCount: 2, wantFirst: "2017-01-01 01", wantLast: "2017-01-01 02"},
		{name: "contract ending just before the hour", from: "2017-01-01 00:00:00", till: "2017-01-01 03:59:59", wantCount: 5, wantFirst: "2017-01-01 00", wantLast: "2017-01-01 04"},
		{name: "spans midnight", from: "2017-01-01 01:30:00", till: "2017-01-02 02:01:00", wantCount: 26, wantFirst: "2017-01-01 01", wantLast: "2017-01-02 02"},
		{name: "seconds apart still yields one slot", from: "2018-01-01 10:00:10", till: "2018-01-01 10:00:50", wantCount: 1, wantFirst: "2018-01-01 10", wantLast: "2018-01-01 10"},
		{name: "exact hours", from: "2018-01-01 10:00:00", till: "2018-01-01 12:00:00", wantCount: 3, wantFirst: "2018-01-01 10", wantLast: "2018-01-01 12"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := lease.NewPeriod(at(t, tc.from), at(t, tc.till))

			hours := p.Hours()
			require.Len(t, hours, tc.wantCount)
			assert.Equal(t, tc.wantFirst, hours[0].String())
			assert.Equal(t, tc.wantLast, hours[len(hours)-1].String())
		})
	}
}

func TestPeriod_Normalization(t *testing.T) {
	p := lease.NewPeriod(at(t, "2017-01-01 01:30:45"), at(t, "2017-01-01 02:01:59"))

	assert.Equal(t, at(t, "2017-01-01 01:30:00"), p.From(), "start keeps minutes, drops seconds")
	assert.Equal(t, at(t, "2017-01-01 03:01:00"), p.Till(), "end drops seconds and moves one hour forward")

	for i, h := range p.Hours() {
		assert.Equal(t, 30, h.Time().Minute(), "slot %d keeps the start minute offset", i)
	}
}

func TestPeriod_HoursAreCached(t *testing.T) {
	p := lease.NewPeriod(at(t, "2017-01-01 00:00:00"), at(t, "2017-01-01 05:00:00"))

	first := p.Hours()
	second := p.Hours()
	require.NotEmpty(t, first)
	assert.Same(t, &first[0], &second[0])
}

func TestReconstructPeriod(t *testing.T) {
	original := lease.NewPeriod(at(t, "2017-01-01 01:30:00"), at(t, "2017-01-02 02:01:00"))

	restored := lease.ReconstructPeriod(original.From(), original.Till())

	assert.Equal(t, labels(original.Hours()), labels(restored.Hours()))
}

func TestPeriod_CheckIntersections(t *testing.T) {
	t.Run("scenario: overlap with an existing contract", func(t *testing.T) {
		existing := lease.NewPeriod(at(t, "2017-01-01 00:00:00"), at(t, "2017-01-01 03:59:59"))
		requested := lease.NewPeriod(at(t, "2017-01-01 01:30:00"), at(t, "2017-01-01 02:01:00"))

		err := requested.CheckIntersections(existing.Hours())

		require.Error(t, err)
		assert.True(t, errs.Is(err, lease.ErrHoursIntersection))

		var intersection *lease.HoursIntersectionError
		require.ErrorAs(t, err, &intersection)
		assert.Equal(t, []string{"2017-01-01 01", "2017-01-01 02"}, intersection.Hours)
		assert.Equal(t, `occupied hours: "2017-01-01 01", "2017-01-01 02"`, err.Error())
	})

	t.Run("adjacent periods do not intersect", func(t *testing.T) {
		morning := lease.NewPeriod(at(t, "2017-01-01 08:00:00"), at(t, "2017-01-01 09:59:00"))
		evening := lease.NewPeriod(at(t, "2017-01-01 11:00:00"), at(t, "2017-01-01 12:00:00"))

		assert.NoError(t, morning.CheckIntersections(evening.Hours()))
		assert.NoError(t, evening.CheckIntersections(morning.Hours()))
	})

	t.Run("minute offsets collapse into the same hour", func(t *testing.T) {
		// 10:45 and 11:45 against 10:05 and 11:05
		a := lease.NewPeriod(at(t, "2017-01-01 10:45:00"), at(t, "2017-01-01 10:50:00"))
		b := lease.NewPeriod(at(t, "2017-01-01 10:05:00"), at(t, "2017-01-01 10:10:00"))

		var intersection *lease.HoursIntersectionError
		require.ErrorAs(t, a.CheckIntersections(b.Hours()), &intersection)
		assert.Equal(t, []string{"2017-01-01 10", "2017-01-01 11"}, intersection.Hours)
	})

	t.Run("duplicates are reported once per matching own hour", func(t *testing.T) {
		p := lease.ReconstructPeriod(at(t, "2017-01-01 10:00:00"), at(t, "2017-01-01 12:00:00"))
		candidate := lease.NewHour(at(t, "2017-01-01 11:15:00"))

		var intersection *lease.HoursIntersectionError
		require.ErrorAs(t, p.CheckIntersections([]lease.Hour{candidate, candidate}), &intersection)
		assert.Equal(t, []string{"2017-01-01 11", "2017-01-01 11"}, intersection.Hours)
	})

	t.Run("empty candidate list passes", func(t *testing.T) {
		p := lease.NewPeriod(at(t, "2017-01-01 10:00:00"), at(t, "2017-01-01 12:00:00"))

		assert.NoError(t, p.CheckIntersections(nil))
	})
}

func TestPeriod_IntersectionIsSymmetric(t *testing.T) {
	instants := []string{
		"2017-01-01 00:00:00",
		"2017-01-01 01:30:00",
		"2017-01-01 02:01:00",
		"2017-01-01 03:59:59",
		"2017-01-01 23:30:00",
		"2017-01-02 02:01:00",
	}

	for i := range instants {
		for j := i + 1; j < len(instants); j++ {
			for k := range instants {
				for l := k + 1; l < len(instants); l++ {
					a := lease.NewPeriod(at(t, instants[i]), at(t, instants[j]))
					b := lease.NewPeriod(at(t, instants[k]), at(t, instants[l]))

					abErr := a.CheckIntersections(b.Hours())
					baErr := b.CheckIntersections(a.Hours())
					assert.Equal(t, abErr == nil, baErr == nil,
						"[%s, %s] vs [%s, %s]", instants[i], instants[j], instants[k], instants[l])
				}
			}
		}
	}
}

func TestHoursIntersectionError_ForResource(t *testing.T) {
	err := (&lease.HoursIntersectionError{Hours: []string{"2017-01-01 01", "2017-01-01 02"}}).ForResource(1, "Ugly Fred")

	assert.Equal(t, `resource #1 "Ugly Fred" is busy, occupied hours: "2017-01-01 01", "2017-01-01 02"`, err.Error())
	assert.True(t, errs.Is(err, lease.ErrHoursIntersection))
	assert.True(t, lease.IsBusinessError(err))
}
