package ledger

import "time"

// updateStreak recomputes the study streak from the calendar-day gap between
// the previous activity and this one. It must run before LastActivity is
// overwritten, since the comparison needs the previous value.
func updateStreak(p *Profile, now time.Time) {
	if p.LastActivity.IsZero() {
		p.StreakDays = 1
	} else {
		switch daysBetween(p.LastActivity, now) {
		case 0:
			// Same calendar day: streak unchanged.
		case 1:
			p.StreakDays++
		default:
			p.StreakDays = 1
		}
	}

	if p.StreakDays > p.LongestStreak {
		p.LongestStreak = p.StreakDays
	}
}

// daysBetween returns the whole calendar days from a to b, ignoring
// time-of-day.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
